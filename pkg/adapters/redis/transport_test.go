package redis_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/arbor/pkg/adapters/redis"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisTransport_Publish(t *testing.T) {
	// Setup miniredis
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	defer mr.Close()

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	sub := backend.NewClient(&backend.Options{Addr: mr.Addr()})

	tr := redis.NewFromClient(client, redis.WithChannel("arbor:test"))
	defer tr.Close()
	assert.Equal(t, "arbor:test", tr.Channel())

	ctx := context.Background()
	pubsub := sub.Subscribe(ctx, "arbor:test")
	defer pubsub.Close()

	// Wait for the subscription to be established before publishing.
	_, err = pubsub.Receive(ctx)
	require.NoError(t, err)

	var mu sync.Mutex
	var received []string
	go func() {
		for msg := range pubsub.Channel() {
			mu.Lock()
			received = append(received, msg.Payload)
			mu.Unlock()
		}
	}()

	require.NoError(t, tr.Send(ctx, []byte("T,   0,PASS,     1,ROOT\n")))
	require.NoError(t, tr.Send(ctx, []byte("\nDONE")))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(received) == 2
	}, 2*time.Second, 10*time.Millisecond, "expected both chunks to be delivered")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "T,   0,PASS,     1,ROOT\n", received[0])
	assert.Equal(t, "\nDONE", received[1])
}

func TestRedisTransport_DefaultChannel(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	tr := redis.NewFromClient(client)
	defer tr.Close()

	assert.Equal(t, "arbor:report", tr.Channel())

	// Publishing with no subscribers is fire-and-forget, not an error.
	assert.NoError(t, tr.Send(context.Background(), []byte("I,   0,    ,      ,hello\n")))
}
