package ipdetect

import "github.com/pkg/errors"

var (
	// ErrProbeFailure matches every failed probe, whatever the cause.
	ErrProbeFailure = errors.New("probe failure")

	ErrNoIPv4              = errors.New("no usable IPv4 address")
	ErrWiFiSSIDUnavailable = errors.New("wifi ssid unavailable")
	ErrWiFiSSIDNotMatched  = errors.New("wifi ssid not matched")
)

// ProbeError carries the underlying failure of a probe. Its message is the
// underlying message, unchanged.
type ProbeError struct {
	Err error
}

func (e *ProbeError) Error() string {
	if e.Err == nil {
		return ErrProbeFailure.Error()
	}
	return e.Err.Error()
}

func (e *ProbeError) Unwrap() error { return e.Err }

func (e *ProbeError) Is(target error) bool { return target == ErrProbeFailure }
