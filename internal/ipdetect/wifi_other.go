//go:build !linux

package ipdetect

import "github.com/pkg/errors"

func checkWiFiSSID(ifname, targetSSID string) error {
	return errors.Wrap(ErrWiFiSSIDUnavailable, "PROBE_WIFI_SSID requires linux")
}
