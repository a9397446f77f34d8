package foodscout

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"foodscout/storage"
)

// SamplingLogger is the interface for recording sampling attempts. It exists
// for operational diagnosis only and never alters control flow.
type SamplingLogger interface {
	LogSample(sample SampleLog) error
}

// NewSamplingLogKey returns an object key based on a cleaned up model hint so
// logs produced with different model preferences are easy to tell apart.
func NewSamplingLogKey(modelHint string) string {
	return fmt.Sprintf(
		"%d.%s.json",
		time.Now().Unix(),
		strings.ReplaceAll(strings.ToLower(modelHint), ":", "_"),
	)
}

// SampleLog records a single sampling attempt.
type SampleLog struct {
	Timestamp     time.Time `json:"timestamp"`
	ModelHint     string    `json:"model_hint"`
	Temperature   float64   `json:"temperature"`
	MaxTokens     int       `json:"max_tokens"`
	PromptBytes   int       `json:"prompt_bytes"`
	ResponseBytes int       `json:"response_bytes"`
	Model         string    `json:"model,omitempty"`
	Error         string    `json:"error,omitempty"`
}

// BufferedSamplingLogger accumulates samples and flushes them as one JSON
// document through an object store at the end of a session.
type BufferedSamplingLogger struct {
	samples []SampleLog
	store   storage.ObjectStore
	key     string
}

// NewBufferedSamplingLogger creates a buffered sampling logger writing to the
// given store under the given key on Flush.
func NewBufferedSamplingLogger(store storage.ObjectStore, key string) *BufferedSamplingLogger {
	return &BufferedSamplingLogger{
		samples: make([]SampleLog, 0),
		store:   store,
		key:     key,
	}
}

// LogSample appends the sample to the buffer (does not flush immediately).
func (l *BufferedSamplingLogger) LogSample(sample SampleLog) error {
	l.samples = append(l.samples, sample)
	return nil
}

// Flush writes all accumulated samples through the store.
func (l *BufferedSamplingLogger) Flush(ctx context.Context) error {
	if l.store == nil {
		return nil
	}

	data, err := json.MarshalIndent(map[string]any{
		"sampling_session": map[string]any{
			"timestamp": time.Now(),
			"samples":   l.samples,
		},
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sampling log: %w", err)
	}

	if err := l.store.Put(ctx, l.key, data); err != nil {
		return fmt.Errorf("failed to write sampling log: %w", err)
	}

	// Clear the buffer after successful write
	l.samples = l.samples[:0]
	return nil
}

// NoOpSamplingLogger discards all samples.
type NoOpSamplingLogger struct{}

func NewNoOpSamplingLogger() *NoOpSamplingLogger { return &NoOpSamplingLogger{} }

// LogSample discards the sample (no-op).
func (l *NoOpSamplingLogger) LogSample(sample SampleLog) error { return nil }

// StdoutSamplingLogger writes each sample as a JSON line to stdout (for
// Lambda/CloudWatch).
type StdoutSamplingLogger struct{}

func NewStdoutSamplingLogger() *StdoutSamplingLogger { return &StdoutSamplingLogger{} }

// LogSample writes the sample as a JSON line to os.Stdout.
func (l *StdoutSamplingLogger) LogSample(sample SampleLog) error {
	data, err := json.Marshal(sample)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}
