//go:build linux

package ipdetect

import (
	"net"

	"github.com/pkg/errors"
	"github.com/vishvananda/netlink"
)

// ipv4FromRoute asks the kernel (RTM_GETROUTE) which route it would use for
// dst and returns that route's preferred source address.
func ipv4FromRoute(dst net.IP) (net.IP, string, error) {
	routes, err := netlink.RouteGet(dst)
	if err != nil {
		return nil, "", errors.Wrapf(err, "route get %s", dst)
	}
	for _, r := range routes {
		src := r.Src.To4()
		if src == nil {
			continue
		}
		var ifname string
		if link, err := netlink.LinkByIndex(r.LinkIndex); err == nil {
			ifname = link.Attrs().Name
		}
		return src, ifname, nil
	}
	return nil, "", errors.Wrapf(ErrNoIPv4, "no preferred source for %s", dst)
}
