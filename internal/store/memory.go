package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"skillcompass/internal/engine"
)

// MemorySessionRepo is an in-memory SessionRepo with the same
// versioning semantics as the SQLite one. For tests and the simulate
// command.
type MemorySessionRepo struct {
	mu       sync.Mutex
	sessions map[string]memoryRecord
}

type memoryRecord struct {
	state   []byte
	version int64
}

// NewMemorySessionRepo creates an empty in-memory session repo.
func NewMemorySessionRepo() *MemorySessionRepo {
	return &MemorySessionRepo{sessions: make(map[string]memoryRecord)}
}

func (r *MemorySessionRepo) Load(_ context.Context, id string) (*engine.State, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.sessions[id]
	if !ok {
		return nil, 0, fmt.Errorf("load session %s: %w", id, ErrSessionNotFound)
	}

	var st engine.State
	if err := json.Unmarshal(rec.state, &st); err != nil {
		return nil, 0, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &st, rec.version, nil
}

func (r *MemorySessionRepo) Save(_ context.Context, st *engine.State, expectedVersion int64) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", st.SessionID, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, exists := r.sessions[st.SessionID]
	switch {
	case expectedVersion == 0 && exists:
		return &ErrVersionConflict{SessionID: st.SessionID, Expected: 0}
	case expectedVersion != 0 && (!exists || rec.version != expectedVersion):
		return &ErrVersionConflict{SessionID: st.SessionID, Expected: expectedVersion}
	}

	r.sessions[st.SessionID] = memoryRecord{state: raw, version: expectedVersion + 1}
	return nil
}
