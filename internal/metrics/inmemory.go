package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersRegistered  uint64 `json:"users_registered"`
	LoginsSucceeded  uint64 `json:"logins_succeeded"`
	LoginsFailed     uint64 `json:"logins_failed"`
	ArticlesCreated  uint64 `json:"articles_created"`
	ArticlesUpdated  uint64 `json:"articles_updated"`
	ArticlesDeleted  uint64 `json:"articles_deleted"`
	MessagesReceived uint64 `json:"messages_received"`
}

// InMemoryRecorder stores metrics as process-local atomic counters.
type InMemoryRecorder struct {
	usersRegistered  atomic.Uint64
	loginsSucceeded  atomic.Uint64
	loginsFailed     atomic.Uint64
	articlesCreated  atomic.Uint64
	articlesUpdated  atomic.Uint64
	articlesDeleted  atomic.Uint64
	messagesReceived atomic.Uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersRegistered:  m.usersRegistered.Load(),
		LoginsSucceeded:  m.loginsSucceeded.Load(),
		LoginsFailed:     m.loginsFailed.Load(),
		ArticlesCreated:  m.articlesCreated.Load(),
		ArticlesUpdated:  m.articlesUpdated.Load(),
		ArticlesDeleted:  m.articlesDeleted.Load(),
		MessagesReceived: m.messagesReceived.Load(),
	}
}

// IncUserRegistered increments the registration counter.
func (m *InMemoryRecorder) IncUserRegistered() { m.usersRegistered.Add(1) }

// IncLoginSucceeded increments the successful login counter.
func (m *InMemoryRecorder) IncLoginSucceeded() { m.loginsSucceeded.Add(1) }

// IncLoginFailed increments the failed login counter.
func (m *InMemoryRecorder) IncLoginFailed() { m.loginsFailed.Add(1) }

// IncArticleCreated increments the article created counter.
func (m *InMemoryRecorder) IncArticleCreated() { m.articlesCreated.Add(1) }

// IncArticleUpdated increments the article updated counter.
func (m *InMemoryRecorder) IncArticleUpdated() { m.articlesUpdated.Add(1) }

// IncArticleDeleted increments the article deleted counter.
func (m *InMemoryRecorder) IncArticleDeleted() { m.articlesDeleted.Add(1) }

// IncMessageReceived increments the contact message counter.
func (m *InMemoryRecorder) IncMessageReceived() { m.messagesReceived.Add(1) }
