package procsync

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestMutexMutualExclusion(t *testing.T) {
	const (
		goroutines = 8
		iterations = 2000
	)
	var (
		mu      Mutex
		inside  atomic.Int32
		counter int
		wg      sync.WaitGroup
	)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				mu.Lock()
				if n := inside.Add(1); n != 1 {
					t.Errorf("mutex held by %d goroutines at once", n)
				}
				counter++
				inside.Add(-1)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if counter != goroutines*iterations {
		t.Fatalf("counter = %d, want %d", counter, goroutines*iterations)
	}
}

func TestMutexTryLock(t *testing.T) {
	var mu Mutex
	if !mu.TryLock() {
		t.Fatal("TryLock on unlocked Mutex failed")
	}
	if mu.TryLock() {
		t.Fatal("TryLock on locked Mutex succeeded")
	}
	mu.Unlock()
	mu.Close()
}
