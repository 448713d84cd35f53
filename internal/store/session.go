package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"skillcompass/internal/engine"
)

// ErrSessionNotFound indicates no stored session has the requested id.
var ErrSessionNotFound = errors.New("session not found")

// ErrVersionConflict indicates the stored version advanced since the
// caller loaded the session. The caller must reload and retry; a
// conflicting write is never applied.
type ErrVersionConflict struct {
	SessionID string
	Expected  int64
}

func (e *ErrVersionConflict) Error() string {
	return fmt.Sprintf("session %s: version conflict (expected %d)", e.SessionID, e.Expected)
}

// SessionRepo is the read-modify-write session store. Load returns the
// state with its version stamp; Save with that stamp either advances
// the record by one version or fails with ErrVersionConflict.
// Expected version 0 creates the session.
type SessionRepo interface {
	Load(ctx context.Context, id string) (*engine.State, int64, error)
	Save(ctx context.Context, st *engine.State, expectedVersion int64) error
}

type sqliteSessionRepo struct {
	db *sql.DB
}

func (r *sqliteSessionRepo) Load(ctx context.Context, id string) (*engine.State, int64, error) {
	var raw string
	var version int64
	err := r.db.QueryRowContext(ctx,
		`SELECT state, version FROM sessions WHERE id = ?`, id,
	).Scan(&raw, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, fmt.Errorf("load session %s: %w", id, ErrSessionNotFound)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("load session %s: %w", id, err)
	}

	var st engine.State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return nil, 0, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &st, version, nil
}

func (r *sqliteSessionRepo) Save(ctx context.Context, st *engine.State, expectedVersion int64) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", st.SessionID, err)
	}

	if expectedVersion == 0 {
		res, err := r.db.ExecContext(ctx,
			`INSERT INTO sessions (id, state, version) VALUES (?, ?, 1)
			 ON CONFLICT(id) DO NOTHING`,
			st.SessionID, string(raw))
		if err != nil {
			return fmt.Errorf("create session %s: %w", st.SessionID, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("create session %s: %w", st.SessionID, err)
		}
		if affected == 0 {
			// A concurrent create of the same session id is a race the
			// loser must resolve by reloading.
			return &ErrVersionConflict{SessionID: st.SessionID, Expected: 0}
		}
		return nil
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE sessions
		 SET state = ?, version = version + 1, updated_at = datetime('now')
		 WHERE id = ? AND version = ?`,
		string(raw), st.SessionID, expectedVersion)
	if err != nil {
		return fmt.Errorf("save session %s: %w", st.SessionID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save session %s: %w", st.SessionID, err)
	}
	if affected == 0 {
		return &ErrVersionConflict{SessionID: st.SessionID, Expected: expectedVersion}
	}
	return nil
}
