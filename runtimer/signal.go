package runtimer

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

type Callback func(s os.Signal)

// New starts listening for signals, SIGINT and SIGTERM when none are given. Call Stop once the guarded work is done.
func New(signals ...os.Signal) *SignalHandler {
	if len(signals) == 0 {
		signals = []os.Signal{os.Interrupt, syscall.SIGTERM}
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, signals...)

	sh := &SignalHandler{
		c:    c,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go sh.handle()

	return sh
}

type SignalHandler struct {
	c    chan os.Signal
	stop chan struct{}
	done chan struct{}

	mu       sync.Mutex
	fns      []Callback
	stopOnce sync.Once
}

func (sh *SignalHandler) handle() {
	defer close(sh.done)

	select {
	case s := <-sh.c:
		signal.Stop(sh.c)

		sh.mu.Lock()
		fns := make([]Callback, len(sh.fns))
		copy(fns, sh.fns)
		sh.mu.Unlock()

		for _, fn := range fns {
			fn(s)
		}

	case <-sh.stop:
		signal.Stop(sh.c)
	}
}

func (sh *SignalHandler) RegisterCallback(fn Callback) {
	sh.mu.Lock()
	sh.fns = append(sh.fns, fn)
	sh.mu.Unlock()
}

// Stop stops listening without invoking any callback. Safe to call more than once, and after a signal arrived.
func (sh *SignalHandler) Stop() {
	sh.stopOnce.Do(func() {
		close(sh.stop)
	})
}

// Wait blocks until all callbacks have been called, or until Stop
func (sh *SignalHandler) Wait() {
	<-sh.done
}
