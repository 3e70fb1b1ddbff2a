package messaging

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEvent struct {
	Kind  string `json:"kind"`
	Email string `json:"email"`
}

func newTestClient(t *testing.T) RedisClient {
	t.Helper()
	m := miniredis.RunT(t)
	client := WrapRedisClient(redis.NewClient(&redis.Options{Addr: m.Addr()}))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestPublishSubscribe(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	messages, err := client.Subscribe(ctx, "notification:email")
	require.NoError(t, err)

	require.NoError(t, client.Publish(ctx, "notification:email", testEvent{Kind: "welcome", Email: "a@x.com"}))

	select {
	case msg := <-messages:
		var got testEvent
		require.NoError(t, msg.Decode(&got))
		assert.Equal(t, "notification:email", msg.Channel)
		assert.Equal(t, testEvent{Kind: "welcome", Email: "a@x.com"}, got)
	case <-time.After(2 * time.Second):
		t.Fatal("message not delivered")
	}
}

func TestSubscribeClosesOnCancel(t *testing.T) {
	client := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())

	messages, err := client.Subscribe(ctx, "notification:email")
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-messages:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestDecodeRejectsInvalidPayload(t *testing.T) {
	var got testEvent
	assert.Error(t, Message{Payload: []byte("not-json")}.Decode(&got))
}

func TestConnectRedis(t *testing.T) {
	m := miniredis.RunT(t)

	client, err := ConnectRedis(context.Background(), Options{Addr: m.Addr()}, zap.NewNop())
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Publish(context.Background(), "ping", testEvent{Kind: "welcome"}))
}

func TestConnectRedisGivesUp(t *testing.T) {
	m := miniredis.RunT(t)
	addr := m.Addr()
	m.Close()

	_, err := ConnectRedis(context.Background(), Options{Addr: addr, ConnectTimeout: 300 * time.Millisecond}, zap.NewNop())
	assert.Error(t, err)
}
