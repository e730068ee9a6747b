package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogNotifier_Notify(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	notifier := NewLogNotifier(zap.New(core).Sugar())

	notifier.Notify(context.Background(), "user-1", EventRegistrationConfirmed, map[string]interface{}{
		"registration_id": int64(7),
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "notification", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "user-1", fields["user_id"])
	assert.Equal(t, string(EventRegistrationConfirmed), fields["event"])
}
