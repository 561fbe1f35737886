package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestDecisionStorageRoundTrip(t *testing.T) {
	ds, err := NewDecisionStorage(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open storage: %v", err)
	}
	defer ds.Close()

	d := Decision{
		ID:        uuid.New().String(),
		RunID:     uuid.New().String(),
		Ticker:    "NVDA",
		TradeDate: "2026-08-28",
		Signal:    "BUY",
		Provider:  "mock",
		DeepModel: "o4-mini",
		QuickMod:  "gpt-4o-mini",
		CreatedAt: time.Now(),
	}
	if err := ds.SaveDecision(d); err != nil {
		t.Fatalf("failed to save decision: %v", err)
	}

	decisions, err := ds.ListDecisions("NVDA")
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(decisions) != 1 {
		t.Fatalf("expected 1 decision, got %d", len(decisions))
	}
	got := decisions[0]
	if got.Signal != "BUY" || got.Provider != "mock" || got.DeepModel != "o4-mini" {
		t.Errorf("decision = %+v", got)
	}

	// Ticker filter excludes other tickers
	if decisions, _ := ds.ListDecisions("AAPL"); len(decisions) != 0 {
		t.Errorf("expected no AAPL decisions, got %d", len(decisions))
	}

	// Empty ticker lists everything
	if decisions, _ := ds.ListDecisions(""); len(decisions) != 1 {
		t.Errorf("expected all decisions, got %d", len(decisions))
	}
}

func TestReflectionMemory(t *testing.T) {
	ds, err := NewDecisionStorage(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer ds.Close()

	base := time.Now()
	for i, lesson := range []string{"first lesson", "second lesson", "third lesson"} {
		r := Reflection{
			ID:         uuid.New().String(),
			Ticker:     "NVDA",
			TradeDate:  "2026-08-28",
			Signal:     "BUY",
			ReturnsPct: float64(i),
			Lesson:     lesson,
			CreatedAt:  base.Add(time.Duration(i) * time.Second),
		}
		if err := ds.SaveReflection(r); err != nil {
			t.Fatalf("failed to save reflection: %v", err)
		}
	}

	lessons, err := ds.RecentLessons("NVDA", 2)
	if err != nil {
		t.Fatalf("failed to load lessons: %v", err)
	}
	if len(lessons) != 2 {
		t.Fatalf("expected 2 lessons, got %d", len(lessons))
	}
	if lessons[0].Lesson != "third lesson" {
		t.Errorf("newest lesson = %q, want third", lessons[0].Lesson)
	}

	if lessons, _ := ds.RecentLessons("AAPL", 5); len(lessons) != 0 {
		t.Errorf("expected no AAPL lessons, got %d", len(lessons))
	}
}

// Reopening an existing database must run migrations without error and keep
// existing rows readable.
func TestDecisionStorageReopen(t *testing.T) {
	dir := t.TempDir()

	ds, err := NewDecisionStorage(dir)
	if err != nil {
		t.Fatal(err)
	}
	d := Decision{
		ID:        uuid.New().String(),
		RunID:     uuid.New().String(),
		Ticker:    "NVDA",
		TradeDate: "2026-08-28",
		Signal:    "HOLD",
		Provider:  "ollama",
		CreatedAt: time.Now(),
	}
	if err := ds.SaveDecision(d); err != nil {
		t.Fatal(err)
	}
	if err := ds.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := NewDecisionStorage(dir)
	if err != nil {
		t.Fatalf("failed to reopen: %v", err)
	}
	defer reopened.Close()

	decisions, err := reopened.ListDecisions("NVDA")
	if err != nil {
		t.Fatal(err)
	}
	if len(decisions) != 1 || decisions[0].Signal != "HOLD" {
		t.Errorf("decisions after reopen = %+v", decisions)
	}
}
