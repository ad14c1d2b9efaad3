// Package timer measures how long a function call takes and prints the duration in a single, human-sized unit.
package timer

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Default writes to stdout and uses time.Now
var Default = New()

func New(options ...Option) *Timer {
	t := &Timer{
		out: os.Stdout,
		now: time.Now,
	}

	for _, opt := range options {
		opt(t)
	}

	return t
}

type Timer struct {
	out      io.Writer
	now      func() time.Time
	logger   logrus.FieldLogger
	recorder *Measurements
}

// Report writes "<label>: <value> <unit>" for m. Durations below one nanosecond produce no output.
func (t *Timer) Report(m Measurement) {
	elapsed := m.Elapsed()

	if t.logger != nil {
		t.logger.WithFields(logrus.Fields{
			"label":      m.Label,
			"elapsed_ns": elapsed.Nanoseconds(),
		}).Debug("Measured")
	}

	formatted, ok := Format(elapsed)
	if !ok {
		return
	}

	if t.recorder != nil {
		t.recorder.Add(m)
	}

	_, err := fmt.Fprintf(t.out, "%s: %s\n", m.Label, formatted)
	if err != nil && t.logger != nil {
		t.logger.WithError(err).Warn("Unable to write measurement")
	}
}

// measure runs fn between two clock readings. A panic in fn skips the report and continues unchanged.
func measure[R any](t *Timer, name string, fn func() (R, error)) (R, error) {
	if t == nil {
		t = Default
	}

	start := t.now()
	v, err := fn()
	end := t.now()

	if err != nil {
		return v, err
	}

	t.Report(Measurement{
		Label: name,
		Start: start,
		End:   end,
	})

	return v, nil
}

// Call invokes fn once and reports its duration under name
func Call[R any](t *Timer, name string, fn func() R) R {
	v, _ := measure(t, labelFor(name, fn), func() (R, error) {
		return fn(), nil
	})

	return v
}

// Func0 returns a function that behaves like fn, reporting the duration of every call. An empty name is derived from
// fn.
func Func0[R any](t *Timer, name string, fn func() R) func() R {
	name = labelFor(name, fn)
	return func() R {
		v, _ := measure(t, name, func() (R, error) {
			return fn(), nil
		})

		return v
	}
}

func Func1[A, R any](t *Timer, name string, fn func(A) R) func(A) R {
	name = labelFor(name, fn)
	return func(a A) R {
		v, _ := measure(t, name, func() (R, error) {
			return fn(a), nil
		})

		return v
	}
}

func Func2[A, B, R any](t *Timer, name string, fn func(A, B) R) func(A, B) R {
	name = labelFor(name, fn)
	return func(a A, b B) R {
		v, _ := measure(t, name, func() (R, error) {
			return fn(a, b), nil
		})

		return v
	}
}

// Func0E is Func0 for functions that can fail. A non-nil error is returned as-is and nothing is reported.
func Func0E[R any](t *Timer, name string, fn func() (R, error)) func() (R, error) {
	name = labelFor(name, fn)
	return func() (R, error) {
		return measure(t, name, fn)
	}
}

func Func1E[A, R any](t *Timer, name string, fn func(A) (R, error)) func(A) (R, error) {
	name = labelFor(name, fn)
	return func(a A) (R, error) {
		return measure(t, name, func() (R, error) {
			return fn(a)
		})
	}
}

func Func2E[A, B, R any](t *Timer, name string, fn func(A, B) (R, error)) func(A, B) (R, error) {
	name = labelFor(name, fn)
	return func(a A, b B) (R, error) {
		return measure(t, name, func() (R, error) {
			return fn(a, b)
		})
	}
}

// Name returns the unqualified name of a function, e.g. "LoopAdd" for vector.LoopAdd. Closures get the runtime's
// generated name ("func1"). Anything that isn't a function returns "".
func Name(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}

	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}

	name := strings.TrimSuffix(f.Name(), "[...]")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}

	return strings.TrimSuffix(name, "-fm")
}

func labelFor(name string, fn any) string {
	if name != "" {
		return name
	}

	return Name(fn)
}
