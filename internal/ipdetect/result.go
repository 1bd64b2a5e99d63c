package ipdetect

import "net"

// ErrorPrefix starts the rendered form of every failed probe.
const ErrorPrefix = "Error: "

// Result is the outcome of one probe: either an address or a failure.
type Result struct {
	IP     net.IP
	Source string
	Err    error
}

// Address is a successful result found via source.
func Address(ip net.IP, source string) Result {
	return Result{IP: ip, Source: source}
}

// Failure is a failed result. err is kept as the cause of a *ProbeError.
func Failure(err error) Result {
	if _, ok := err.(*ProbeError); !ok {
		err = &ProbeError{Err: err}
	}
	return Result{Err: err}
}

// OK reports whether an address was found.
func (r Result) OK() bool { return r.Err == nil }

// String renders the result as printed on stdout: a dotted quad, or
// "Error: " followed by the failure message.
func (r Result) String() string {
	if r.Err != nil {
		return ErrorPrefix + r.Err.Error()
	}
	return r.IP.String()
}
