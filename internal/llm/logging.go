package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RequestEvent captures one collaborator call for the event log.
type RequestEvent struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRecorder persists collaborator call records. The store package
// provides the sqlite-backed implementation.
type EventRecorder interface {
	RecordLLMRequest(ctx context.Context, ev RequestEvent) error
}

// LoggingProvider is a decorator that records every collaborator call
// as an event.
type LoggingProvider struct {
	inner    Provider
	recorder EventRecorder
	log      *zap.Logger
}

// WithLogging wraps a Provider with event logging. A nil recorder
// disables persistence; a nil logger falls back to zap.NewNop.
func WithLogging(p Provider, recorder EventRecorder, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingProvider{inner: p, recorder: recorder, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	ev := RequestEvent{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.Model = resp.Model
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}

	// Never fail the request because logging failed.
	if l.recorder != nil {
		if logErr := l.recorder.RecordLLMRequest(ctx, ev); logErr != nil {
			l.log.Warn("failed to record collaborator request event",
				zap.String("purpose", purpose), zap.Error(logErr))
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
