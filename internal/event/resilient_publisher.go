package event

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/osse101/FNTDWorld_Go/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries     int
	RetryDelay     time.Duration
	DeadLetterPath string
}

// DeadLetterEntry is one line of the dead-letter file
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// ResilientPublisher wraps a Bus, retrying failed publishes in the background
// and appending events that never succeed to a JSON-lines dead-letter file.
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	if config.MaxRetries <= 0 {
		config.MaxRetries = DefaultRetryMaxAttempts
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = DefaultRetryDelay
	}
	return &ResilientPublisher{inner: inner, config: config}
}

// Publish delivers synchronously. On failure it returns nil and retries on a
// detached goroutine so the caller's operation is not failed by a subscriber.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	if event.RequestID == "" {
		event.RequestID = logger.GetRequestID(ctx)
	}
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"retries", p.config.MaxRetries)

	p.wg.Add(1)
	go p.retryLoop(context.WithoutCancel(ctx), event, err)
	return nil
}

func (p *ResilientPublisher) retryLoop(ctx context.Context, event Event, lastErr error) {
	defer p.wg.Done()
	log := logger.FromContext(ctx)

	for attempt := 1; attempt <= p.config.MaxRetries; attempt++ {
		time.Sleep(CalculateRetryDelay(p.config.RetryDelay, attempt))

		err := p.inner.Publish(ctx, event)
		if err == nil {
			log.Info(LogMsgEventRetrySucceeded, "event_type", event.Type, "attempt", attempt)
			return
		}
		lastErr = err
		log.Warn(LogMsgEventRetryFailed, "event_type", event.Type, "attempt", attempt, "error", err)
	}

	p.writeDeadLetter(event, lastErr)
}

func (p *ResilientPublisher) writeDeadLetter(event Event, lastErr error) {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     time.Now().UTC(),
		Event:         event,
		Attempts:      p.config.MaxRetries + 1,
	}
	if lastErr != nil {
		entry.LastError = lastErr.Error()
	}

	if p.config.DeadLetterPath == "" {
		logger.Error(LogMsgEventDeadLettered, "event_type", event.Type, "error", entry.LastError, "path", "")
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	f, err := os.OpenFile(p.config.DeadLetterPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		logger.Error(LogMsgDeadLetterFailed, "error", err, "path", p.config.DeadLetterPath)
		return
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(entry); err != nil {
		logger.Error(LogMsgDeadLetterFailed, "error", err)
		return
	}
	logger.Warn(LogMsgEventDeadLettered, "event_type", event.Type, "attempts", entry.Attempts)
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown waits for pending retries or until ctx is done
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
