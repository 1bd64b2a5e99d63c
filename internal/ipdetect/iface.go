package ipdetect

import (
	"net"

	"github.com/pkg/errors"
)

func ipv4FromIface(ifname string) (net.IP, error) {
	iface, err := net.InterfaceByName(ifname)
	if err != nil {
		return nil, err
	}
	addrs, err := iface.Addrs()
	if err != nil {
		return nil, errors.Wrapf(err, "addrs of %s", ifname)
	}
	for _, a := range addrs {
		ip := addrToIPv4(a)
		if ip == nil {
			continue
		}
		if isUsableIPv4(ip) {
			return ip, nil
		}
	}
	return nil, errors.Wrapf(ErrNoIPv4, "iface %s", ifname)
}

// ifaceForIP returns the name of the interface holding ip.
func ifaceForIP(ip net.IP) (string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return "", err
	}
	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, a := range addrs {
			if v4 := addrToIPv4(a); v4 != nil && v4.Equal(ip) {
				return iface.Name, nil
			}
		}
	}
	return "", errors.Errorf("no interface holds %s", ip)
}

func addrToIPv4(a net.Addr) net.IP {
	switch v := a.(type) {
	case *net.IPNet:
		return v.IP.To4()
	case *net.IPAddr:
		return v.IP.To4()
	default:
		return nil
	}
}

func isUsableIPv4(ip net.IP) bool {
	if ip == nil {
		return false
	}
	if ip.IsLoopback() {
		return false
	}
	// 169.254.0.0/16
	if ip.IsLinkLocalUnicast() {
		return false
	}
	return ip.IsGlobalUnicast()
}
