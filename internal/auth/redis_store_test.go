package auth

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real Redis when TEST_REDIS_URL is set.
func TestRedisStores(t *testing.T) {
	redisURL := os.Getenv("TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	client, err := ConnectRedis(ctx, redisURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	sessions := NewRedisSessionStore(client)
	s := &Session{ID: uuid.NewString(), UserID: "u1", Name: "Ada"}
	require.NoError(t, sessions.Save(ctx, s, time.Minute))

	got, err := sessions.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)

	require.NoError(t, sessions.Delete(ctx, s.ID))
	got, err = sessions.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	states := NewRedisStateStore(client)
	state := uuid.NewString()
	require.NoError(t, states.Put(ctx, state, time.Minute))

	ok, err := states.Consume(ctx, state)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = states.Consume(ctx, state)
	require.NoError(t, err)
	assert.False(t, ok, "state is single use")
}
