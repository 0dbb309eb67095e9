package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "cache", "cache.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	created := time.UnixMilli(1700000000000)
	e := Entry{Word: "crustacean", IPA: "krʌˈsteɪʃən", SaypYu: "krɘsteyshɘn", Source: "openai", CreatedAt: created}
	if err := s.Put(ctx, e); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	got, ok, err := s.Get(ctx, "crustacean")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !ok {
		t.Fatal("Get() did not find stored word")
	}
	if got.IPA != e.IPA || got.SaypYu != e.SaypYu || got.Source != e.Source {
		t.Errorf("Get() = %+v, want %+v", got, e)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created)
	}
}

func TestGet_Missing(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Get(context.Background(), "nothing")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if ok {
		t.Error("Get() found a word that was never stored")
	}
}

func TestGet_RecomputesStaleSpelling(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, Entry{Word: "church", IPA: "tʃɜːtʃ", SaypYu: "stale", Source: "espeak"}); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	got, _, err := s.Get(ctx, "church")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.SaypYu != "tshurtsh" {
		t.Errorf("SaypYu = %q, want %q", got.SaypYu, "tshurtsh")
	}

	entries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(entries) != 1 || entries[0].SaypYu != "tshurtsh" {
		t.Errorf("stored entry not updated: %+v", entries)
	}
}

func TestPut_Replace(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	s.Put(ctx, Entry{Word: "that", IPA: "ðat", SaypYu: "dhat", Source: "espeak"})
	s.Put(ctx, Entry{Word: "that", IPA: "ðæt", SaypYu: "dhat", Source: "openai"})

	got, _, err := s.Get(ctx, "that")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.IPA != "ðæt" || got.Source != "openai" {
		t.Errorf("Get() = %+v, want the replacement entry", got)
	}
}

func TestPut_EmptyWord(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put(context.Background(), Entry{IPA: "kæt"}); err == nil {
		t.Error("expected error for empty word")
	}
}

func TestListAndDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, w := range []string{"think", "beer", "door"} {
		if err := s.Put(ctx, Entry{Word: w, IPA: "x", SaypYu: "kh", Source: "test"}); err != nil {
			t.Fatalf("Put(%s) error: %v", w, err)
		}
	}

	entries, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	want := []string{"beer", "door", "think"}
	if len(entries) != len(want) {
		t.Fatalf("List() returned %d entries, want %d", len(entries), len(want))
	}
	for i, w := range want {
		if entries[i].Word != w {
			t.Errorf("entries[%d] = %s, want %s", i, entries[i].Word, w)
		}
	}

	if err := s.Delete(ctx, "door"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if err := s.Delete(ctx, "door"); err != nil {
		t.Errorf("second Delete() error: %v", err)
	}

	entries, _ = s.List(ctx)
	if len(entries) != 2 {
		t.Errorf("List() after delete returned %d entries, want 2", len(entries))
	}
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	s.Put(ctx, Entry{Word: "loch", IPA: "lɒx", SaypYu: "lokh", Source: "test"})
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("second Open() error: %v", err)
	}
	defer s.Close()

	if _, ok, _ := s.Get(ctx, "loch"); !ok {
		t.Error("entry did not survive reopening the cache")
	}
}
