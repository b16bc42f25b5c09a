package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDispatcher_DeliversInRegistrationOrder(t *testing.T) {
	dispatcher := NewInMemoryDispatcher(zap.NewNop())

	var order []string
	dispatcher.Subscribe(EventLoginSuccess, func(context.Context, Event) error {
		order = append(order, "first")
		return nil
	})
	dispatcher.Subscribe(EventLoginSuccess, func(context.Context, Event) error {
		order = append(order, "second")
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{
		Type:       EventLoginSuccess,
		Actor:      "ann@x.com",
		OccurredAt: time.Now(),
	}))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestDispatcher_FailingHandlerIsLoggedAndSkipped(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	dispatcher := NewInMemoryDispatcher(zap.New(core))

	dispatcher.Subscribe(EventAdminCreated, func(context.Context, Event) error {
		return errors.New("feed full")
	})
	delivered := false
	dispatcher.Subscribe(EventAdminCreated, func(context.Context, Event) error {
		delivered = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{
		Type:       EventAdminCreated,
		Actor:      "admin@quickcommerce.com",
		Subject:    "Ann",
		OccurredAt: time.Now(),
	}))

	assert.True(t, delivered, "later handlers must still run")
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "event handler failed", entry.Message)
	assert.Equal(t, string(EventAdminCreated), entry.ContextMap()["event_type"])
}

func TestDispatcher_NoSubscribersIsFine(t *testing.T) {
	dispatcher := NewInMemoryDispatcher(zap.NewNop())
	assert.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventLogout}))
}
