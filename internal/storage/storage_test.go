package storage

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
)

func TestNewMemoryStorageReturnsDefaultCapacity(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()

	got, err := store.GetCapacity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != DefaultCapacity() {
		t.Fatalf("expected default capacity %g, got %g", DefaultCapacity(), got)
	}
}

func TestSetCapacityUpdatesState(t *testing.T) {
	t.Parallel()

	store := NewMemoryStorage()
	if err := store.SetCapacity(42.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.GetCapacity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42.5 {
		t.Fatalf("expected 42.5, got %g", got)
	}
}

func TestSetCapacityRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	testCases := []float64{0, -1, -0.001, math.NaN(), math.Inf(1)}

	for idx, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("case_%d", idx), func(t *testing.T) {
			store := NewMemoryStorage()
			if err := store.SetCapacity(tc); !errors.Is(err, ErrInvalidCapacity) {
				t.Fatalf("expected ErrInvalidCapacity for %g, got %v", tc, err)
			}
		})
	}
}

func TestMemoryStorageConcurrentAccess(t *testing.T) {
	store := NewMemoryStorage()
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(2)

		go func(offset int) {
			defer wg.Done()
			if err := store.SetCapacity(float64(10 + offset)); err != nil {
				t.Errorf("SetCapacity failed: %v", err)
			}
		}(i)

		go func() {
			defer wg.Done()
			if _, err := store.GetCapacity(); err != nil {
				t.Errorf("GetCapacity failed: %v", err)
			}
		}()
	}

	wg.Wait()

	// final read should succeed
	if _, err := store.GetCapacity(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
