package ipdetect

import (
	"context"
	"net"

	"github.com/pkg/errors"
)

// Dialer is satisfied by *net.Dialer.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// ipv4FromUDP associates a udp4 socket with target and reads back the source
// address the kernel picked. Connecting a datagram socket sends nothing.
func ipv4FromUDP(ctx context.Context, d Dialer, target string) (net.IP, error) {
	c, err := d.DialContext(ctx, "udp4", target)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	local := c.LocalAddr()
	u, ok := local.(*net.UDPAddr)
	if !ok {
		return nil, errors.Errorf("unexpected local addr type %T", local)
	}
	ip := u.IP.To4()
	if ip == nil {
		return nil, errors.Wrapf(ErrNoIPv4, "local addr %s", u)
	}
	return ip, nil
}
