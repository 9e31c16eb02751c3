package session

import (
	"context"
	"sync"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	s := New()

	if s.HasCountry() {
		t.Error("new session should have no country")
	}
	if s.HasSet() {
		t.Error("new session should have no set")
	}
	if s.QuizIndex != 0 {
		t.Errorf("quiz index = %d, want 0", s.QuizIndex)
	}
	if s.SetSummary != "" {
		t.Errorf("set summary = %q, want empty", s.SetSummary)
	}
}

func TestMemoryStoreReturnsDefaultForUnknownSender(t *testing.T) {
	store := NewMemoryStore()

	s, err := store.Get(context.Background(), "+15550001111")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s != New() {
		t.Fatalf("unknown sender session = %+v, want default", s)
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	s := New()
	s.CountryIndex = 1
	s.SetIndex = 0
	s.QuizIndex = 2
	s.SetSummary = "Dining, Greetings"

	if err := store.Put(ctx, "alice", s); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := store.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != s {
		t.Fatalf("got %+v, want %+v", got, s)
	}

	// Other senders are unaffected.
	other, err := store.Get(ctx, "bob")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if other != New() {
		t.Fatalf("bob's session = %+v, want default", other)
	}
}

func TestKeyedLockSerializesSameKey(t *testing.T) {
	lock := NewKeyedLock()
	store := NewMemoryStore()
	ctx := context.Background()

	// Without per-key locking the read-modify-write cycles below would
	// lose increments.
	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			unlock := lock.Lock("alice")
			defer unlock()

			s, _ := store.Get(ctx, "alice")
			s.QuizIndex++
			_ = store.Put(ctx, "alice", s)
		}()
	}
	wg.Wait()

	s, _ := store.Get(ctx, "alice")
	if s.QuizIndex != workers {
		t.Fatalf("quiz index = %d, want %d", s.QuizIndex, workers)
	}
}

func TestKeyedLockDistinctKeysDoNotBlock(t *testing.T) {
	lock := NewKeyedLock()

	unlockA := lock.Lock("a")
	done := make(chan struct{})
	go func() {
		unlockB := lock.Lock("b")
		unlockB()
		close(done)
	}()
	<-done
	unlockA()
}
