package timer

import (
	"sync"
	"time"
)

// Measurement is a single timed invocation
type Measurement struct {
	Label string
	Start time.Time
	End   time.Time
}

// Elapsed returns the duration between Start and End. Both come from time.Now, so the monotonic reading is used.
func (m Measurement) Elapsed() time.Duration {
	return m.End.Sub(m.Start)
}

// Measurements collects reported measurements, in invocation order.
type Measurements struct {
	mu   sync.Mutex
	list []Measurement
}

func (ms *Measurements) Add(m Measurement) {
	ms.mu.Lock()
	ms.list = append(ms.list, m)
	ms.mu.Unlock()
}

// List returns a copy of everything added so far
func (ms *Measurements) List() []Measurement {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	result := make([]Measurement, len(ms.list))
	copy(result, ms.list)

	return result
}

func (ms *Measurements) Len() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	return len(ms.list)
}
