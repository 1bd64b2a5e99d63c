//go:build !linux

package ipdetect

import (
	"net"
	"runtime"

	"github.com/pkg/errors"
)

func ipv4FromRoute(dst net.IP) (net.IP, string, error) {
	return nil, "", errors.Errorf("method=route requires linux (current %s)", runtime.GOOS)
}
