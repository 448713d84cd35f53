package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"skillcompass/internal/bank"
	"skillcompass/internal/engine"
	"skillcompass/internal/llm"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// sessionRepos runs a subtest against both SessionRepo implementations,
// which must behave identically.
func sessionRepos(t *testing.T, fn func(t *testing.T, repo SessionRepo)) {
	t.Run("sqlite", func(t *testing.T) {
		fn(t, openTestStore(t).Sessions())
	})
	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemorySessionRepo())
	})
}

func sampleState() *engine.State {
	st := engine.NewState()
	st.Stage = 2
	st.Asked = []string{"stage1_q1_preference", "scn_abc123"}
	st.Generated = map[string]bank.Question{
		"scn_abc123": {
			ID: "scn_abc123", Kind: bank.KindScenario, Stage: 2, Difficulty: 2,
			Prompt: "What would you do first?", TargetSkills: []string{"empathy"},
		},
	}
	st.ScenariosInjected = 1
	return st
}

func TestSessionRepo_RoundTrip(t *testing.T) {
	sessionRepos(t, func(t *testing.T, repo SessionRepo) {
		ctx := context.Background()
		st := sampleState()

		if err := repo.Save(ctx, st, 0); err != nil {
			t.Fatalf("create: %v", err)
		}

		loaded, version, err := repo.Load(ctx, st.SessionID)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if version != 1 {
			t.Errorf("version = %d, want 1", version)
		}
		if loaded.Stage != 2 || loaded.ScenariosInjected != 1 {
			t.Errorf("loaded = %+v", loaded)
		}
		if len(loaded.Asked) != 2 || loaded.Asked[1] != "scn_abc123" {
			t.Errorf("asked = %v", loaded.Asked)
		}
		// Generated scenarios must survive the round trip so their
		// answers can still be matched.
		gen, ok := loaded.Generated["scn_abc123"]
		if !ok || gen.Prompt != "What would you do first?" {
			t.Errorf("generated = %+v", loaded.Generated)
		}
		if len(loaded.Clusters) != len(st.Clusters) {
			t.Errorf("clusters lost in round trip")
		}
	})
}

func TestSessionRepo_VersionAdvances(t *testing.T) {
	sessionRepos(t, func(t *testing.T, repo SessionRepo) {
		ctx := context.Background()
		st := sampleState()

		if err := repo.Save(ctx, st, 0); err != nil {
			t.Fatal(err)
		}
		st.Asked = append(st.Asked, "stage2_q1_broken_system")
		if err := repo.Save(ctx, st, 1); err != nil {
			t.Fatalf("second save: %v", err)
		}

		loaded, version, err := repo.Load(ctx, st.SessionID)
		if err != nil {
			t.Fatal(err)
		}
		if version != 2 {
			t.Errorf("version = %d, want 2", version)
		}
		if len(loaded.Asked) != 3 {
			t.Errorf("asked = %v", loaded.Asked)
		}
	})
}

func TestSessionRepo_StaleWriteRejected(t *testing.T) {
	sessionRepos(t, func(t *testing.T, repo SessionRepo) {
		ctx := context.Background()
		st := sampleState()

		if err := repo.Save(ctx, st, 0); err != nil {
			t.Fatal(err)
		}
		if err := repo.Save(ctx, st, 1); err != nil {
			t.Fatal(err)
		}

		// A writer still holding version 1 must not clobber version 2.
		err := repo.Save(ctx, st, 1)
		var conflict *ErrVersionConflict
		if !errors.As(err, &conflict) {
			t.Fatalf("err = %v, want ErrVersionConflict", err)
		}
		if conflict.SessionID != st.SessionID || conflict.Expected != 1 {
			t.Errorf("conflict = %+v", conflict)
		}

		// The stored record is untouched by the rejected write.
		_, version, err := repo.Load(ctx, st.SessionID)
		if err != nil {
			t.Fatal(err)
		}
		if version != 2 {
			t.Errorf("version = %d after rejected write, want 2", version)
		}
	})
}

func TestSessionRepo_DuplicateCreateRejected(t *testing.T) {
	sessionRepos(t, func(t *testing.T, repo SessionRepo) {
		ctx := context.Background()
		st := sampleState()

		if err := repo.Save(ctx, st, 0); err != nil {
			t.Fatal(err)
		}
		err := repo.Save(ctx, st, 0)
		var conflict *ErrVersionConflict
		if !errors.As(err, &conflict) {
			t.Fatalf("err = %v, want ErrVersionConflict", err)
		}
	})
}

func TestSessionRepo_CreateFailureIsNotAConflict(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	repo := s.Sessions()
	s.Close()

	// A failed insert (closed database here, disk full in production)
	// must not masquerade as a duplicate-create race, or callers would
	// reload and retry forever.
	err = repo.Save(context.Background(), sampleState(), 0)
	if err == nil {
		t.Fatal("save on a closed store succeeded")
	}
	var conflict *ErrVersionConflict
	if errors.As(err, &conflict) {
		t.Fatalf("err = %v, want a plain wrapped failure, not ErrVersionConflict", err)
	}
}

func TestSessionRepo_LoadMissing(t *testing.T) {
	sessionRepos(t, func(t *testing.T, repo SessionRepo) {
		_, _, err := repo.Load(context.Background(), "nope")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("err = %v, want ErrSessionNotFound", err)
		}
	})
}

func TestEventRepo_RecordAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	events := s.Events()

	// EventRepo must satisfy the recorder interface the logging
	// decorator expects.
	var _ llm.EventRecorder = events

	for _, ev := range []llm.RequestEvent{
		{Provider: "anthropic", Model: "m1", Purpose: "scenario-gen",
			InputTokens: 120, OutputTokens: 300, LatencyMs: 900, Success: true},
		{Provider: "anthropic", Model: "m1", Purpose: "answer-analysis",
			LatencyMs: 50, Success: false, ErrorMessage: "rate limited"},
	} {
		if err := events.RecordLLMRequest(ctx, ev); err != nil {
			t.Fatal(err)
		}
	}

	recs, err := events.RecentRequests(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records", len(recs))
	}
	// Newest first.
	if recs[0].Purpose != "answer-analysis" || recs[0].Success {
		t.Errorf("first record = %+v", recs[0])
	}
	if recs[1].Tokens.TotalTokens != 420 {
		t.Errorf("token total = %d", recs[1].Tokens.TotalTokens)
	}
}
