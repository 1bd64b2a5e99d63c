package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Config struct {
	// Probe
	Target   string
	Method   string
	Iface    string
	WiFiSSID string
	Timeout  time.Duration

	// Runtime
	StartDelay time.Duration
	LogLevel   logrus.Level

	// Warnings lists values that were ignored in favour of their default.
	Warnings []string
}

// FromEnv reads the optional environment configuration. With nothing set it
// yields the defaults the probe has always used.
//
// Bad runtime values (LOG_LEVEL, START_DELAY, PROBE_TIMEOUT) fall back to
// their default and are recorded in Warnings. Bad probe values (PROBE_TARGET,
// PROBE_METHOD, PROBE_IFACE) are returned as an error alongside a usable
// Config, so the caller can still report one result line.
func FromEnv() (Config, error) {
	var (
		cfg Config
		env envReader
	)

	cfg.Target = env.str("PROBE_TARGET", "8.8.8.8:80")
	cfg.Method = strings.ToLower(env.str("PROBE_METHOD", "udp")) // "udp" (default), "route", "iface", "auto"
	cfg.Iface = env.str("PROBE_IFACE", "")
	cfg.WiFiSSID = env.str("PROBE_WIFI_SSID", "")
	cfg.Timeout = env.positiveDuration("PROBE_TIMEOUT", 2*time.Second)

	cfg.StartDelay = env.duration("START_DELAY", 0)
	cfg.LogLevel = env.level("LOG_LEVEL", logrus.WarnLevel)
	cfg.Warnings = env.warnings

	if _, _, err := net.SplitHostPort(cfg.Target); err != nil {
		return cfg, errors.Wrapf(err, "PROBE_TARGET must be host:port, got %q", cfg.Target)
	}
	switch cfg.Method {
	case "udp", "route", "auto":
	case "iface":
		if cfg.Iface == "" {
			return cfg, errors.New("PROBE_IFACE is required when PROBE_METHOD=iface")
		}
	default:
		return cfg, errors.Errorf("unknown PROBE_METHOD: %q", cfg.Method)
	}

	return cfg, nil
}

// envReader reads trimmed environment values and remembers every value it
// had to replace with a default.
type envReader struct {
	warnings []string
}

func (r *envReader) str(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func (r *envReader) fallback(key, val string, def any, why string) {
	r.warnings = append(r.warnings, fmt.Sprintf("%s=%q %s, using %v", key, val, why, def))
}

// duration accepts bare seconds ("15") or a Go duration ("500ms"). Negative
// values are rejected.
func (r *envReader) duration(key string, def time.Duration) time.Duration {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	var d time.Duration
	if allDigits(v) {
		sec, err := strconv.Atoi(v)
		if err != nil {
			r.fallback(key, v, def, "is out of range")
			return def
		}
		d = time.Duration(sec) * time.Second
	} else {
		var err error
		if d, err = time.ParseDuration(v); err != nil {
			r.fallback(key, v, def, "is not a duration")
			return def
		}
	}
	if d < 0 {
		r.fallback(key, v, def, "is negative")
		return def
	}
	return d
}

func (r *envReader) positiveDuration(key string, def time.Duration) time.Duration {
	d := r.duration(key, def)
	if d == 0 {
		r.fallback(key, r.str(key, ""), def, "is zero")
		return def
	}
	return d
}

func (r *envReader) level(key string, def logrus.Level) logrus.Level {
	v := r.str(key, "")
	if v == "" {
		return def
	}
	l, err := logrus.ParseLevel(v)
	if err != nil {
		r.fallback(key, v, def, "is not a log level")
		return def
	}
	return l
}

func allDigits(s string) bool {
	return s != "" && strings.Trim(s, "0123456789") == ""
}
