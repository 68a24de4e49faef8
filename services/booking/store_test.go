package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"docbook/models"
)

func TestMemorySessionStoreExpiry(t *testing.T) {
	now := jan20
	store := NewMemorySessionStore(10 * time.Minute)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	if err := store.Save(ctx, models.BookingSession{SessionID: "s1", UserID: "u1", Step: 2}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	now = now.Add(9 * time.Minute)
	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get before expiry: %v", err)
	}
	if got.Step != 2 {
		t.Errorf("step = %d", got.Step)
	}

	// Saving again slides the expiry.
	if err := store.Save(ctx, *got); err != nil {
		t.Fatalf("Save: %v", err)
	}
	now = now.Add(9 * time.Minute)
	if _, err := store.Get(ctx, "s1"); err != nil {
		t.Fatalf("Get after refresh: %v", err)
	}

	now = now.Add(11 * time.Minute)
	if _, err := store.Get(ctx, "s1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after expiry, got %v", err)
	}
}

func TestMemorySessionStoreReturnsCopies(t *testing.T) {
	store := NewMemorySessionStore(time.Minute)
	ctx := context.Background()
	store.Save(ctx, models.BookingSession{SessionID: "s1", Step: 1})

	got, _ := store.Get(ctx, "s1")
	got.Step = 3

	again, _ := store.Get(ctx, "s1")
	if again.Step != 1 {
		t.Errorf("stored session was modified through Get: step %d", again.Step)
	}
}

func TestMemorySessionStoreDelete(t *testing.T) {
	store := NewMemorySessionStore(time.Minute)
	ctx := context.Background()
	store.Save(ctx, models.BookingSession{SessionID: "s1"})

	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete(ctx, "missing"); err != nil {
		t.Errorf("deleting a missing session: %v", err)
	}
	if _, err := store.Get(ctx, "s1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestMemorySessionStoreTake(t *testing.T) {
	now := jan20
	store := NewMemorySessionStore(time.Minute)
	store.now = func() time.Time { return now }
	ctx := context.Background()
	store.Save(ctx, models.BookingSession{SessionID: "s1", Step: 3})
	store.Save(ctx, models.BookingSession{SessionID: "s2", Step: 3})

	got, err := store.Take(ctx, "s1")
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	if got.Step != 3 {
		t.Errorf("step = %d", got.Step)
	}
	if _, err := store.Take(ctx, "s1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second Take: expected ErrSessionNotFound, got %v", err)
	}
	if _, err := store.Get(ctx, "s1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("taken session still readable: %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := store.Take(ctx, "s2"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expired session was taken: %v", err)
	}
}
