package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"campusbooking/internal/domain"

	"golang.org/x/sync/semaphore"
)

// VenueLocks hands out one exclusive slot per venue id. Admissions for
// different venues never wait on each other; entries are dropped once no
// caller holds or waits on them.
type VenueLocks struct {
	mu      sync.Mutex
	entries map[int64]*venueLock
	timeout time.Duration
}

type venueLock struct {
	sem  *semaphore.Weighted
	refs int
}

// NewVenueLocks returns a lock table whose Acquire waits at most timeout.
// A non-positive timeout waits only as long as the caller's context allows.
func NewVenueLocks(timeout time.Duration) *VenueLocks {
	return &VenueLocks{entries: map[int64]*venueLock{}, timeout: timeout}
}

// Acquire blocks until the venue's slot is free. It returns a release func on
// success, the caller's context error if the caller gave up, or a Busy error
// when the wait bound expired first.
func (l *VenueLocks) Acquire(ctx context.Context, venueID int64) (func(), error) {
	entry := l.ref(venueID)

	waitCtx := ctx
	if l.timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	if err := entry.sem.Acquire(waitCtx, 1); err != nil {
		l.unref(venueID, entry)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.Busy(err)
		}
		return nil, err
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			entry.sem.Release(1)
			l.unref(venueID, entry)
		})
	}, nil
}

// Len reports how many venues currently have holders or waiters.
func (l *VenueLocks) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *VenueLocks) ref(venueID int64) *venueLock {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry, ok := l.entries[venueID]
	if !ok {
		entry = &venueLock{sem: semaphore.NewWeighted(1)}
		l.entries[venueID] = entry
	}
	entry.refs++
	return entry
}

func (l *VenueLocks) unref(venueID int64, entry *venueLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry.refs--
	if entry.refs == 0 && l.entries[venueID] == entry {
		delete(l.entries, venueID)
	}
}
