package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andareed/dutyfree-helper/store"
)

func newCachedModel(t *testing.T, db *store.SQLite) *model {
	t.Helper()
	m := newTestModel(t, nil)
	m.cache = db
	return m
}

func TestMarksAndItemsSurviveRestart(t *testing.T) {
	db, err := store.NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	first := newCachedModel(t, db)
	first.client = &fakeFetcher{list: sampleItems()}
	first.Update(first.startFetch()())
	if msg := first.saveCacheCmd(sampleItems(), testNow)().(cacheSavedMsg); msg.err != nil {
		t.Fatalf("save cache: %v", msg.err)
	}

	press(first, "j")
	save := first.MarkCurrent(MarkAmber)
	if save == nil {
		t.Fatal("marking should persist through the cache")
	}
	if msg := save().(markSavedMsg); msg.err != nil {
		t.Fatalf("save mark: %v", msg.err)
	}

	second := newCachedModel(t, db)
	second.Update(second.loadCacheCmd()())

	assertIDs(t, second, 1, 2, 3, 4)
	if !second.data.fromCache {
		t.Error("rows should be flagged as cached")
	}
	if !second.data.fetchedAt.Equal(testNow) {
		t.Errorf("fetchedAt = %v, want %v", second.data.fetchedAt, testNow)
	}
	if diff := cmp.Diff(map[int64]MarkColor{2: MarkAmber}, second.data.markedRows); diff != "" {
		t.Errorf("marks mismatch (-want +got):\n%s", diff)
	}
}
