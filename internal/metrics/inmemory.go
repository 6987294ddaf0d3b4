package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	ContactsCreated      uint64
	ProjectsCreated      uint64
	StoreErrors          map[string]uint64
	StoreCalls           map[string]uint64
	StoreDurationTotalNs map[string]int64
}

// InMemoryRecorder keeps counters in process memory.
type InMemoryRecorder struct {
	contactsCreated uint64
	projectsCreated uint64

	mu              sync.Mutex
	storeErrors     map[string]uint64
	storeCalls      map[string]uint64
	storeDurationNs map[string]int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{
		storeErrors:     make(map[string]uint64),
		storeCalls:      make(map[string]uint64),
		storeDurationNs: make(map[string]int64),
	}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		ContactsCreated:      atomic.LoadUint64(&m.contactsCreated),
		ProjectsCreated:      atomic.LoadUint64(&m.projectsCreated),
		StoreErrors:          make(map[string]uint64, len(m.storeErrors)),
		StoreCalls:           make(map[string]uint64, len(m.storeCalls)),
		StoreDurationTotalNs: make(map[string]int64, len(m.storeDurationNs)),
	}
	for k, v := range m.storeErrors {
		snap.StoreErrors[k] = v
	}
	for k, v := range m.storeCalls {
		snap.StoreCalls[k] = v
	}
	for k, v := range m.storeDurationNs {
		snap.StoreDurationTotalNs[k] = v
	}
	return snap
}

// IncContactCreated increments the contact created counter.
func (m *InMemoryRecorder) IncContactCreated() {
	atomic.AddUint64(&m.contactsCreated, 1)
}

// IncProjectCreated increments the project created counter.
func (m *InMemoryRecorder) IncProjectCreated() {
	atomic.AddUint64(&m.projectsCreated, 1)
}

// IncStoreError increments the error counter for op.
func (m *InMemoryRecorder) IncStoreError(op string) {
	m.mu.Lock()
	m.storeErrors[op]++
	m.mu.Unlock()
}

// ObserveStoreDuration records one call to op.
func (m *InMemoryRecorder) ObserveStoreDuration(op string, duration time.Duration) {
	m.mu.Lock()
	m.storeCalls[op]++
	m.storeDurationNs[op] += duration.Nanoseconds()
	m.mu.Unlock()
}
