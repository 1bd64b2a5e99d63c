//go:build linux

package ipdetect

import (
	"strings"

	"github.com/mdlayher/wifi"
	"github.com/pkg/errors"
)

// checkWiFiSSID verifies that ifname is a WiFi interface currently associated
// with targetSSID.
func checkWiFiSSID(ifname, targetSSID string) error {
	targetSSID = strings.TrimSpace(targetSSID)
	if targetSSID == "" {
		return errors.Wrap(ErrWiFiSSIDUnavailable, "empty ssid")
	}

	c, err := wifi.New()
	if err != nil {
		return errors.Wrap(ErrWiFiSSIDUnavailable, err.Error())
	}
	defer c.Close()

	ifis, err := c.Interfaces()
	if err != nil {
		return errors.Wrap(ErrWiFiSSIDUnavailable, err.Error())
	}

	for _, ifi := range ifis {
		if ifi.Name != ifname {
			continue
		}
		bss, err := c.BSS(ifi)
		if err != nil {
			return errors.Wrapf(ErrWiFiSSIDUnavailable, "%s: %v", ifname, err)
		}
		ssid := strings.TrimSpace(string(bss.SSID))
		if ssid != targetSSID {
			return errors.Wrapf(ErrWiFiSSIDNotMatched, "%s: want %q, found %q", ifname, targetSSID, ssid)
		}
		return nil
	}
	return errors.Wrapf(ErrWiFiSSIDUnavailable, "%s is not a wifi interface", ifname)
}
