//go:build procsyncchecks

package procsync

import "testing"

// The misuse detection below only exists under the procsyncchecks tag:
// run with `go test -tags procsyncchecks`.

func TestMutexUnbalancedUnlockPanics(t *testing.T) {
	var mu Mutex
	defer func() {
		if recover() == nil {
			t.Fatal("unbalanced Unlock did not panic")
		}
	}()
	mu.Unlock()
}

func TestMutexCloseWhileHeldPanics(t *testing.T) {
	var mu Mutex
	mu.Lock()
	defer mu.Unlock()
	defer func() {
		if recover() == nil {
			t.Fatal("Close of held Mutex did not panic")
		}
	}()
	mu.Close()
}

func TestGetFunctionUnloadedPanics(t *testing.T) {
	var lib Library
	defer func() {
		if recover() == nil {
			t.Fatal("GetFunction on unloaded Library did not panic")
		}
	}()
	_, _ = lib.GetFunction("anything")
}
