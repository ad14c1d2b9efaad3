package timer

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

type Option func(t *Timer)

// WithOutput sets where report lines are written to, defaults to os.Stdout
func WithOutput(w io.Writer) Option {
	return func(t *Timer) {
		t.out = w
	}
}

// WithClock replaces time.Now. The clock should carry a monotonic reading.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) {
		t.now = now
	}
}

// WithLogger logs every measurement at debug level and logs failing writes to the output.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(t *Timer) {
		t.logger = logger
	}
}

// WithRecorder appends every reported measurement to ms
func WithRecorder(ms *Measurements) Option {
	return func(t *Timer) {
		t.recorder = ms
	}
}
