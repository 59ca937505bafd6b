package event

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResilientPublisher_RetriesUntilDelivered(t *testing.T) {
	inner := &flakyBus{MemoryBus: NewMemoryBus(), failures: 2}
	var delivered int32
	inner.Subscribe(ItemSold, func(ctx context.Context, e Event) error {
		atomic.AddInt32(&delivered, 1)
		return nil
	})

	p := NewResilientPublisher(inner, ResilientConfig{MaxRetries: 3, RetryDelay: time.Millisecond})
	require.NoError(t, p.Publish(context.Background(), NewItemSoldEvent(1, "endo", 100)))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, p.Shutdown(ctx))
	assert.Equal(t, int32(1), atomic.LoadInt32(&delivered))
}

func TestResilientPublisher_DeadLettersAfterExhaustion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	inner := &flakyBus{MemoryBus: NewMemoryBus(), failures: 100}

	p := NewResilientPublisher(inner, ResilientConfig{MaxRetries: 2, RetryDelay: time.Millisecond, DeadLetterPath: path})
	require.NoError(t, p.Publish(context.Background(), NewItemSoldEvent(9, "foxy", 1500)))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, p.Shutdown(ctx))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	require.True(t, scanner.Scan())
	var entry DeadLetterEntry
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
	assert.Equal(t, ItemSold, entry.Event.Type)
	assert.Equal(t, 3, entry.Attempts)
	assert.Equal(t, "flaky", entry.LastError)
	assert.False(t, scanner.Scan())
}

func TestResilientPublisher_SuccessIsSynchronous(t *testing.T) {
	bus := NewMemoryBus()
	var delivered bool
	bus.Subscribe(AccountCreated, func(ctx context.Context, e Event) error {
		delivered = true
		return nil
	})
	p := NewResilientPublisher(bus, ResilientConfig{})
	require.NoError(t, p.Publish(context.Background(), NewAccountCreatedEvent(1, "@a", 500)))
	assert.True(t, delivered)
}
