// Package errors defines the error taxonomy shared by every container:
// Underflow, Empty, Full, OutOfRange and NotFound. Errors are values of
// *ContainerError and are compared with errors.Is against the package
// sentinels.
package errors

import (
	"sync"
	"time"
)

// Record is a container error observed while running a scenario.
type Record struct {
	Err       *ContainerError
	Step      string
	Timestamp time.Time
}

// Collector collects container errors that a caller chose to tolerate,
// such as the Full reported by a bounded queue in a demonstration run.
type Collector struct {
	records []Record
	other   []error
	mutex   sync.RWMutex
}

// NewCollector creates a new error collector
func NewCollector() *Collector {
	return &Collector{
		records: make([]Record, 0),
		other:   make([]error, 0),
	}
}

// Add records err under step. Non-container errors are kept separately.
func (c *Collector) Add(step string, err error) {
	if err == nil {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	var ce *ContainerError
	if As(err, &ce) {
		c.records = append(c.records, Record{Err: ce, Step: step, Timestamp: time.Now()})
		return
	}
	c.other = append(c.other, err)
}

// Records returns a copy of all container error records
func (c *Collector) Records() []Record {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	result := make([]Record, len(c.records))
	copy(result, c.records)
	return result
}

// All returns every collected error, container errors first.
func (c *Collector) All() []error {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	all := make([]error, 0, len(c.records)+len(c.other))
	for _, r := range c.records {
		all = append(all, r.Err)
	}
	all = append(all, c.other...)

	return all
}

// HasErrors returns true if there are any errors
func (c *Collector) HasErrors() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.records) > 0 || len(c.other) > 0
}

// Clear clears all errors
func (c *Collector) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.records = c.records[:0]
	c.other = c.other[:0]
}

// ByKind returns records of the given kind
func (c *Collector) ByKind(kind Kind) []Record {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	var out []Record
	for _, r := range c.records {
		if r.Err.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

// ByContainer returns records raised by the named container
func (c *Collector) ByContainer(container string) []Record {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	var out []Record
	for _, r := range c.records {
		if r.Err.Container == container {
			out = append(out, r)
		}
	}
	return out
}

// Counts returns the number of records per kind.
func (c *Collector) Counts() map[Kind]int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	counts := make(map[Kind]int)
	for _, r := range c.records {
		counts[r.Err.Kind]++
	}
	return counts
}
