package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"campusbooking/internal/domain"
)

func TestVenueLocksSerializeSameVenue(t *testing.T) {
	locks := NewVenueLocks(30 * time.Millisecond)

	release, err := locks.Acquire(context.Background(), 1)
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	if _, err := locks.Acquire(context.Background(), 1); !errors.Is(err, domain.ErrBusy) {
		t.Fatalf("expected busy while held, got %v", err)
	}

	other, err := locks.Acquire(context.Background(), 2)
	if err != nil {
		t.Fatalf("other venue should not wait: %v", err)
	}
	other()

	release()
	release()

	again, err := locks.Acquire(context.Background(), 1)
	if err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
	again()

	if n := locks.Len(); n != 0 {
		t.Fatalf("expected empty lock table, got %d", n)
	}
}

func TestVenueLocksCallerCancel(t *testing.T) {
	locks := NewVenueLocks(time.Second)
	release, err := locks.Acquire(context.Background(), 1)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := locks.Acquire(ctx, 1)
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if domain.IsUnavailable(err) {
			t.Fatalf("caller cancel must not read as busy: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("waiter did not return after cancel")
	}
}

func TestVenueLocksHandOff(t *testing.T) {
	locks := NewVenueLocks(time.Second)
	release, err := locks.Acquire(context.Background(), 5)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}

	got := make(chan error, 1)
	go func() {
		r, err := locks.Acquire(context.Background(), 5)
		if err == nil {
			r()
		}
		got <- err
	}()

	time.Sleep(10 * time.Millisecond)
	release()

	if err := <-got; err != nil {
		t.Fatalf("waiter should acquire after release: %v", err)
	}
	if n := locks.Len(); n != 0 {
		t.Fatalf("expected empty lock table, got %d", n)
	}
}
