package audit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/quickcommerce/crm-portal/internal/events"
)

// defaultCapacity bounds the in-memory activity feed.
const defaultCapacity = 50

// Entry is one line of the portal's recent-activity feed.
type Entry struct {
	Type       events.EventType `json:"type"`
	Actor      string           `json:"actor"`
	Subject    string           `json:"subject,omitempty"`
	OccurredAt time.Time        `json:"occurredAt"`
}

// Recorder subscribes to portal events, logs them, and keeps a bounded feed
// of recent activity for the dashboard.
type Recorder struct {
	mu      sync.RWMutex
	entries []Entry
	cap     int
	logger  *zap.Logger
}

// NewRecorder creates a recorder with the default feed capacity.
func NewRecorder(logger *zap.Logger) *Recorder {
	return &Recorder{cap: defaultCapacity, logger: logger}
}

// RegisterHandlers subscribes the recorder to every portal event type.
func (r *Recorder) RegisterHandlers(dispatcher events.Dispatcher) {
	if dispatcher == nil {
		return
	}
	for _, t := range []events.EventType{
		events.EventAdminCreated,
		events.EventPasswordReset,
		events.EventLoginSuccess,
		events.EventLoginFailure,
		events.EventLogout,
	} {
		dispatcher.Subscribe(t, r.record)
	}
}

func (r *Recorder) record(_ context.Context, event events.Event) error {
	r.logger.Info("portal event",
		zap.String("type", string(event.Type)),
		zap.String("actor", event.Actor),
		zap.String("subject", event.Subject),
	)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{
		Type:       event.Type,
		Actor:      event.Actor,
		Subject:    event.Subject,
		OccurredAt: event.OccurredAt,
	})
	if len(r.entries) > r.cap {
		r.entries = r.entries[len(r.entries)-r.cap:]
	}
	return nil
}

// Recent returns the activity feed, newest first.
func (r *Recorder) Recent(limit int) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit <= 0 || limit > len(r.entries) {
		limit = len(r.entries)
	}
	out := make([]Entry, 0, limit)
	for i := len(r.entries) - 1; i >= len(r.entries)-limit; i-- {
		out = append(out, r.entries[i])
	}
	return out
}
