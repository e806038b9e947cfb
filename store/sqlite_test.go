package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/andareed/dutyfree-helper/items"
)

func newTestDB(t *testing.T) *SQLite {
	t.Helper()
	s, err := NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("new sqlite: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func boolPtr(b bool) *bool { return &b }

func TestLoadItemsEmpty(t *testing.T) {
	s := newTestDB(t)

	got, fetchedAt, err := s.LoadItems(context.Background())
	if err != nil {
		t.Fatalf("LoadItems: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no items, got %d", len(got))
	}
	if !fetchedAt.IsZero() {
		t.Errorf("expected zero fetch time, got %v", fetchedAt)
	}
}

func TestSaveAndLoadItems(t *testing.T) {
	ctx := context.Background()
	s := newTestDB(t)

	first := []items.Item{
		{ID: 560, Name: "Death rune", Members: boolPtr(false), Limit: 25000, High: 210, Low: 205, HighTime: 1700000000, LowTime: 1699999990, Margin: 3, Volume: 9000000},
		{ID: 2, Name: "Cannonball", Members: boolPtr(true), Limit: 11000, High: 190, Low: 185, Margin: 3},
		{ID: 4151, Name: "Abyssal whip", Low: 1500000},
	}
	fetched := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	if err := s.SaveItems(ctx, first, fetched); err != nil {
		t.Fatalf("SaveItems: %v", err)
	}

	got, gotTime, err := s.LoadItems(ctx)
	if err != nil {
		t.Fatalf("LoadItems: %v", err)
	}
	if diff := cmp.Diff(first, got); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	if !gotTime.Equal(fetched) {
		t.Errorf("fetch time = %v, want %v", gotTime, fetched)
	}

	second := []items.Item{{ID: 2, Name: "Cannonball", Members: boolPtr(true), High: 200}}
	later := fetched.Add(5 * time.Minute)
	if err := s.SaveItems(ctx, second, later); err != nil {
		t.Fatalf("SaveItems second: %v", err)
	}
	got, gotTime, err = s.LoadItems(ctx)
	if err != nil {
		t.Fatalf("LoadItems second: %v", err)
	}
	if diff := cmp.Diff(second, got); diff != "" {
		t.Errorf("replaced items mismatch (-want +got):\n%s", diff)
	}
	if !gotTime.Equal(later) {
		t.Errorf("fetch time = %v, want %v", gotTime, later)
	}
}

func TestSaveItemsDuplicateIDKeepsFirst(t *testing.T) {
	ctx := context.Background()
	s := newTestDB(t)

	list := []items.Item{
		{ID: 1, Name: "first"},
		{ID: 1, Name: "second"},
	}
	if err := s.SaveItems(ctx, list, time.Now()); err != nil {
		t.Fatalf("SaveItems: %v", err)
	}
	got, _, err := s.LoadItems(ctx)
	if err != nil {
		t.Fatalf("LoadItems: %v", err)
	}
	if diff := cmp.Diff([]items.Item{{ID: 1, Name: "first"}}, got); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestMarks(t *testing.T) {
	ctx := context.Background()
	s := newTestDB(t)

	steps := []struct {
		name   string
		id     int64
		colour string
		want   map[int64]string
	}{
		{name: "add red", id: 2, colour: "red", want: map[int64]string{2: "red"}},
		{name: "add green", id: 560, colour: "green", want: map[int64]string{2: "red", 560: "green"}},
		{name: "recolour", id: 2, colour: "amber", want: map[int64]string{2: "amber", 560: "green"}},
		{name: "clear", id: 560, colour: "", want: map[int64]string{2: "amber"}},
		{name: "clear missing is a no-op", id: 999, colour: "", want: map[int64]string{2: "amber"}},
	}

	for _, st := range steps {
		t.Run(st.name, func(t *testing.T) {
			if err := s.SetMark(ctx, st.id, st.colour); err != nil {
				t.Fatalf("SetMark: %v", err)
			}
			got, err := s.LoadMarks(ctx)
			if err != nil {
				t.Fatalf("LoadMarks: %v", err)
			}
			if diff := cmp.Diff(st.want, got); diff != "" {
				t.Errorf("marks mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
