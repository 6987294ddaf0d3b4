package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncContactCreated is a no-op.
func (n *NoopRecorder) IncContactCreated() {}

// IncProjectCreated is a no-op.
func (n *NoopRecorder) IncProjectCreated() {}

// IncStoreError is a no-op.
func (n *NoopRecorder) IncStoreError(op string) {}

// ObserveStoreDuration is a no-op.
func (n *NoopRecorder) ObserveStoreDuration(op string, duration time.Duration) {}
