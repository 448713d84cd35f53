package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"skillcompass/internal/llm"
)

// EventRepo appends and queries collaborator request events. It
// implements llm.EventRecorder.
type EventRepo struct {
	db *sql.DB
}

// RecordLLMRequest appends one collaborator call record.
func (r *EventRepo) RecordLLMRequest(ctx context.Context, ev llm.RequestEvent) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_request_events
		 (provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.Provider, ev.Model, ev.Purpose,
		ev.InputTokens, ev.OutputTokens, ev.LatencyMs,
		ev.Success, ev.ErrorMessage)
	if err != nil {
		return fmt.Errorf("record collaborator event: %w", err)
	}
	return nil
}

// RequestRecord is one stored collaborator call.
type RequestRecord struct {
	ID        int64
	Provider  string
	Model     string
	Purpose   string
	Tokens    llm.Usage
	LatencyMs int64
	Success   bool
	Error     string
	CreatedAt time.Time
}

// RecentRequests returns the latest collaborator calls, newest first.
func (r *EventRepo) RecentRequests(ctx context.Context, limit int) ([]RequestRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, provider, model, purpose, input_tokens, output_tokens,
		        latency_ms, success, error_message, created_at
		 FROM llm_request_events
		 ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query collaborator events: %w", err)
	}
	defer rows.Close()

	var out []RequestRecord
	for rows.Next() {
		var rec RequestRecord
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.Provider, &rec.Model, &rec.Purpose,
			&rec.Tokens.InputTokens, &rec.Tokens.OutputTokens,
			&rec.LatencyMs, &rec.Success, &rec.Error, &createdAt); err != nil {
			return nil, fmt.Errorf("scan collaborator event: %w", err)
		}
		rec.Tokens.TotalTokens = rec.Tokens.InputTokens + rec.Tokens.OutputTokens
		if t, err := time.Parse("2006-01-02 15:04:05", createdAt); err == nil {
			rec.CreatedAt = t
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
