package store

import (
	"context"
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleEvent(purpose, model string) LLMRequestEventData {
	return LLMRequestEventData{
		Provider:     "openai",
		Model:        model,
		Purpose:      purpose,
		InputTokens:  100,
		OutputTokens: 50,
		LatencyMs:    250,
		Success:      true,
		RequestBody:  `{"messages":[]}`,
		ResponseBody: "Ahoy, matey!",
	}
}

func TestAppendAndQuery(t *testing.T) {
	s := testStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"stimulus", "baseline", "judge"} {
		if err := repo.AppendLLMRequest(ctx, sampleEvent(purpose, "gpt-4o-mini")); err != nil {
			t.Fatalf("AppendLLMRequest: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	// Newest first.
	if events[0].Purpose != "judge" {
		t.Errorf("events[0].Purpose = %q, want judge", events[0].Purpose)
	}
	if events[0].ID <= events[2].ID {
		t.Errorf("IDs not descending: %d .. %d", events[0].ID, events[2].ID)
	}
	if events[0].Timestamp.IsZero() {
		t.Error("timestamp not populated")
	}
}

func TestQueryFilterAndLimit(t *testing.T) {
	s := testStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.AppendLLMRequest(ctx, sampleEvent("stimulus", "gpt-4o-mini")); err != nil {
			t.Fatal(err)
		}
	}
	if err := repo.AppendLLMRequest(ctx, sampleEvent("judge", "claude-haiku")); err != nil {
		t.Fatal(err)
	}

	judgeOnly, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "judge"})
	if err != nil {
		t.Fatal(err)
	}
	if len(judgeOnly) != 1 {
		t.Errorf("purpose filter returned %d events, want 1", len(judgeOnly))
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Errorf("limit returned %d events, want 2", len(limited))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := testStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := sampleEvent("judge", "claude-haiku")
	data.Success = false
	data.ErrorMessage = "rate limited"
	if err := repo.AppendLLMRequest(ctx, data); err != nil {
		t.Fatal(err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("GetLLMEvent: %v", err)
	}
	if e == nil {
		t.Fatal("GetLLMEvent returned nil for existing event")
	}
	if e.RequestBody != data.RequestBody || e.ResponseBody != data.ResponseBody {
		t.Error("bodies not round-tripped")
	}
	if e.Success || e.ErrorMessage != "rate limited" {
		t.Errorf("failure fields not round-tripped: %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("GetLLMEvent missing: %v", err)
	}
	if missing != nil {
		t.Error("GetLLMEvent returned an event for an unknown ID")
	}
}

func TestUsageAggregation(t *testing.T) {
	s := testStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, sampleEvent("stimulus", "gpt-4o-mini")); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendLLMRequest(ctx, sampleEvent("stimulus", "gpt-4o-mini")); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendLLMRequest(ctx, sampleEvent("judge", "claude-haiku")); err != nil {
		t.Fatal(err)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("LLMUsageByPurpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("got %d purpose rows, want 2", len(byPurpose))
	}
	// Rows come back in purpose order: judge, stimulus.
	if byPurpose[0].Purpose != "judge" || byPurpose[0].Calls != 1 {
		t.Errorf("byPurpose[0] = %+v", byPurpose[0])
	}
	if byPurpose[1].Purpose != "stimulus" || byPurpose[1].Calls != 2 {
		t.Errorf("byPurpose[1] = %+v", byPurpose[1])
	}
	if byPurpose[1].InputTokens != 200 || byPurpose[1].OutputTokens != 100 {
		t.Errorf("stimulus token sums = %+v", byPurpose[1])
	}
	if byPurpose[0].AvgLatencyMs != 250 {
		t.Errorf("AvgLatencyMs = %d, want 250", byPurpose[0].AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("LLMUsageByModel: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("got %d model rows, want 2", len(byModel))
	}
	if byModel[1].Model != "gpt-4o-mini" || byModel[1].Calls != 2 || byModel[1].InputTokens != 200 {
		t.Errorf("byModel[1] = %+v", byModel[1])
	}
}

func TestOpenCreatesSchemaIdempotently(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.EventRepo().AppendLLMRequest(context.Background(), sampleEvent("judge", "m")); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer s2.Close()

	events, err := s2.EventRepo().QueryLLMEvents(context.Background(), QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Errorf("got %d events after reopen, want 1", len(events))
	}
}
