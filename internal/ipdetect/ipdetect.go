// Package ipdetect finds the IPv4 address this machine uses for outbound
// traffic, as chosen by the OS routing table.
package ipdetect

import (
	"context"
	"net"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	DefaultTarget  = "8.8.8.8:80"
	DefaultTimeout = 2 * time.Second
)

const (
	MethodUDP   = "udp"
	MethodRoute = "route"
	MethodIface = "iface"
	MethodAuto  = "auto"
)

type Options struct {
	// Target is the remote host:port the source address is selected for.
	Target string
	// Method: "" or "udp" (default), "route", "iface", "auto"
	Method string
	Iface  string
	// WiFiSSID, when set, requires the outbound interface to be associated
	// with this SSID.
	WiFiSSID string
	Timeout  time.Duration
	Dialer   Dialer
	Logger   logrus.FieldLogger
}

type Prober struct {
	opt Options
}

func NewProber(opt Options) *Prober {
	if opt.Target == "" {
		opt.Target = DefaultTarget
	}
	if opt.Method == "" {
		opt.Method = MethodUDP
	}
	if opt.Timeout <= 0 {
		opt.Timeout = DefaultTimeout
	}
	if opt.Dialer == nil {
		opt.Dialer = &net.Dialer{Timeout: opt.Timeout}
	}
	if opt.Logger == nil {
		opt.Logger = logrus.StandardLogger()
	}
	return &Prober{opt: opt}
}

// Probe runs one detection. Every failure is folded into the returned Result.
func (p *Prober) Probe(ctx context.Context) Result {
	log := p.opt.Logger.WithFields(logrus.Fields{"target": p.opt.Target, "method": p.opt.Method})

	ip, src, err := p.DetectIPv4(ctx)
	if err == nil && p.opt.WiFiSSID != "" {
		err = p.checkWiFi(ip)
	}
	if err != nil {
		log.WithError(err).Debug("probe failed")
		return Failure(err)
	}
	log.WithField("source", src).Debugf("detected IPv4=%s", ip)
	return Address(ip, src)
}

// DetectIPv4 returns the outbound IPv4 address and a tag naming how it was found.
func (p *Prober) DetectIPv4(ctx context.Context) (net.IP, string, error) {
	switch p.opt.Method {
	case MethodUDP:
		ip, err := ipv4FromUDP(ctx, p.opt.Dialer, p.opt.Target)
		if err != nil {
			return nil, "", err
		}
		return ip, "udp", nil
	case MethodRoute:
		return p.detectRoute(ctx)
	case MethodIface:
		if p.opt.Iface == "" {
			return nil, "", errors.New("method=iface requires PROBE_IFACE")
		}
		ip, err := ipv4FromIface(p.opt.Iface)
		if err != nil {
			return nil, "", err
		}
		return ip, "iface:" + p.opt.Iface, nil
	case MethodAuto:
		ip, err := ipv4FromUDP(ctx, p.opt.Dialer, p.opt.Target)
		if err == nil {
			return ip, "udp", nil
		}
		p.opt.Logger.WithError(err).Debug("udp detection failed")
		if runtime.GOOS != "linux" {
			return nil, "", err
		}
		return p.detectRoute(ctx)
	default:
		return nil, "", errors.Errorf("unknown PROBE_METHOD: %q", p.opt.Method)
	}
}

func (p *Prober) detectRoute(ctx context.Context) (net.IP, string, error) {
	dst, err := targetIPv4(ctx, p.opt.Target)
	if err != nil {
		return nil, "", err
	}
	ip, ifname, err := ipv4FromRoute(dst)
	if err != nil {
		return nil, "", err
	}
	return ip, "route:" + ifname, nil
}

func (p *Prober) checkWiFi(ip net.IP) error {
	ifname, err := ifaceForIP(ip)
	if err != nil {
		return errors.Wrap(ErrWiFiSSIDUnavailable, err.Error())
	}
	return checkWiFiSSID(ifname, p.opt.WiFiSSID)
}

// targetIPv4 resolves the host part of a host:port target to an IPv4 address.
func targetIPv4(ctx context.Context, target string) (net.IP, error) {
	host, _, err := net.SplitHostPort(target)
	if err != nil {
		return nil, errors.Wrapf(err, "target %q", target)
	}
	host = strings.Trim(host, "[]")
	if ip := net.ParseIP(host); ip != nil {
		if v4 := ip.To4(); v4 != nil {
			return v4, nil
		}
		return nil, errors.Errorf("target %s is not IPv4", host)
	}
	ips, err := net.DefaultResolver.LookupIP(ctx, "ip4", host)
	if err != nil {
		return nil, err
	}
	if len(ips) == 0 {
		return nil, errors.Errorf("target %s has no IPv4 address", host)
	}
	return ips[0].To4(), nil
}

// Probe detects the outbound IPv4 address toward 8.8.8.8:80 and returns it as
// a dotted quad, or "Error: <message>" on any failure.
func Probe() string {
	return NewProber(Options{}).Probe(context.Background()).String()
}
