package history

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleAttempt() Attempt {
	return Attempt{
		GivenName:       "Ana",
		PaternalSurname: "Lopez",
		Sex:             "Female",
		ZodiacSign:      "Horse",
		Age:             34,
		Score:           6,
		Delivered:       true,
	}
}

func TestAppendAssignsID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Append(ctx, sampleAttempt()); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := s.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(got))
	}
	if got[0].ID == "" {
		t.Error("expected generated attempt ID")
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestRecentOrderAndLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		a := sampleAttempt()
		a.Score = i
		a.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := s.Append(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := s.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 attempts, got %d", len(got))
	}
	for i := 0; i < len(got)-1; i++ {
		if got[i].CreatedAt.Before(got[i+1].CreatedAt) {
			t.Errorf("attempts not in reverse chronological order: %v before %v",
				got[i].CreatedAt, got[i+1].CreatedAt)
		}
	}
	if got[0].Score != 4 {
		t.Errorf("newest attempt score = %d, want 4", got[0].Score)
	}
}

func TestFieldsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a := sampleAttempt()
	a.PaternalSurname = "Muñoz"
	a.MaternalSurname = "Peña"
	a.Delivered = false
	if err := s.Append(ctx, a); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := s.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(got))
	}
	if got[0].PaternalSurname != "Muñoz" || got[0].MaternalSurname != "Peña" {
		t.Errorf("surnames did not survive storage: %+v", got[0])
	}
	if got[0].Delivered {
		t.Error("delivered flag should be false")
	}
}

func TestCount(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	n, err := s.Count(ctx)
	if err != nil || n != 0 {
		t.Fatalf("empty count = %d, %v", n, err)
	}

	for i := 0; i < 3; i++ {
		if err := s.Append(ctx, sampleAttempt()); err != nil {
			t.Fatal(err)
		}
	}
	n, err = s.Count(ctx)
	if err != nil || n != 3 {
		t.Fatalf("count = %d, %v; want 3", n, err)
	}
}
