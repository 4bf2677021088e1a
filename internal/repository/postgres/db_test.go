package postgres

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"golang.org/x/sync/semaphore"
)

func TestGateBoundsConcurrentReads(t *testing.T) {
	db := &DB{sem: semaphore.NewWeighted(2)}

	var (
		mu     sync.Mutex
		active int
		peak   int
	)

	var wg sync.WaitGroup
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := db.Gate(context.Background(), func() error {
				mu.Lock()
				active++
				if active > peak {
					peak = active
				}
				mu.Unlock()

				time.Sleep(2 * time.Millisecond)

				mu.Lock()
				active--
				mu.Unlock()
				return nil
			})
			if err != nil {
				t.Errorf("unexpected gate error: %v", err)
			}
		}()
	}
	wg.Wait()

	if peak > 2 {
		t.Fatalf("gate admitted %d concurrent reads, limit is 2", peak)
	}
}

func TestGatePropagatesFnError(t *testing.T) {
	db := &DB{sem: semaphore.NewWeighted(1)}
	readErr := errors.New("read failed")

	err := db.Gate(context.Background(), func() error { return readErr })
	if !errors.Is(err, readErr) {
		t.Fatalf("expected fn error to surface, got %v", err)
	}
}

func TestGateCancelledContext(t *testing.T) {
	db := &DB{sem: semaphore.NewWeighted(1)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	err := db.Gate(ctx, func() error {
		ran = true
		return nil
	})
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if ran {
		t.Fatal("fn must not run when the slot cannot be acquired")
	}
}
