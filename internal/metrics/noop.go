package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserRegistered is a no-op.
func (n *NoopRecorder) IncUserRegistered() {}

// IncLoginSucceeded is a no-op.
func (n *NoopRecorder) IncLoginSucceeded() {}

// IncLoginFailed is a no-op.
func (n *NoopRecorder) IncLoginFailed() {}

// IncArticleCreated is a no-op.
func (n *NoopRecorder) IncArticleCreated() {}

// IncArticleUpdated is a no-op.
func (n *NoopRecorder) IncArticleUpdated() {}

// IncArticleDeleted is a no-op.
func (n *NoopRecorder) IncArticleDeleted() {}

// IncMessageReceived is a no-op.
func (n *NoopRecorder) IncMessageReceived() {}
