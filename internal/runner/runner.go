package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/hnrobert/outbound-ip/internal/ipdetect"
)

type Prober interface {
	Probe(ctx context.Context) ipdetect.Result
}

type Options struct {
	Prober     Prober
	Out        io.Writer
	Logger     logrus.FieldLogger
	StartDelay time.Duration
	// ConfigErr, when set, is reported as the result instead of probing.
	ConfigErr error
}

type Runner struct {
	opt Options
}

func New(opt Options) *Runner {
	if opt.Out == nil {
		opt.Out = os.Stdout
	}
	if opt.Logger == nil {
		opt.Logger = logrus.StandardLogger()
	}
	return &Runner{opt: opt}
}

// Run probes once and prints the result line. A failed probe or a bad probe
// configuration is printed, not returned; only cancellation during the start
// delay or a failed write is.
func (r *Runner) Run(ctx context.Context) error {
	if r.opt.StartDelay > 0 {
		r.opt.Logger.Debugf("start delay: %s", r.opt.StartDelay)
		t := time.NewTimer(r.opt.StartDelay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}

	var res ipdetect.Result
	if r.opt.ConfigErr != nil {
		res = ipdetect.Failure(r.opt.ConfigErr)
	} else {
		res = r.opt.Prober.Probe(ctx)
	}
	if !res.OK() {
		r.opt.Logger.WithError(res.Err).Warn("outbound address probe failed")
	} else {
		r.opt.Logger.WithField("source", res.Source).Debugf("outbound IPv4=%s", res.IP)
	}

	if _, err := fmt.Fprintln(r.opt.Out, res.String()); err != nil {
		return errors.Wrap(err, "write result")
	}
	return nil
}
