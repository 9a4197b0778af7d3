package procsync

import "sync/atomic"

// Word is a 32-bit memory location mutated only through the atomic
// operations below. The zero value is ready to use.
//
// Updates are indivisible with respect to all other atomic operations on
// the same location; every operation returns the value after the update.
// Callers must not assume ordering stronger than the acquire/release
// semantics the Go memory model assigns to sync/atomic.
type Word struct {
	v atomic.Int32
}

// Word64 is the 64-bit counterpart of Word.
type Word64 struct {
	v atomic.Int64
}

// Load returns the current value.
func (w *Word) Load() int32 { return w.v.Load() }

// Store sets the current value non-atomically with respect to
// read-modify-write sequences; intended for initialization.
func (w *Word) Store(v int32) { w.v.Store(v) }

// Increment atomically adds 1 to w and returns the new value.
func Increment(w *Word) int32 { return w.v.Add(1) }

// Decrement atomically subtracts 1 from w and returns the new value.
func Decrement(w *Word) int32 { return w.v.Add(-1) }

// Add atomically adds delta (which may be negative) to w and returns the
// new value.
func Add(w *Word, delta int32) int32 { return w.v.Add(delta) }

// Subtract atomically subtracts delta from w and returns the new value.
func Subtract(w *Word, delta int32) int32 { return w.v.Add(-delta) }

// Load returns the current value.
func (w *Word64) Load() int64 { return w.v.Load() }

// Store sets the current value; intended for initialization.
func (w *Word64) Store(v int64) { w.v.Store(v) }

// Increment64 atomically adds 1 to w and returns the new value.
func Increment64(w *Word64) int64 { return w.v.Add(1) }

// Decrement64 atomically subtracts 1 from w and returns the new value.
func Decrement64(w *Word64) int64 { return w.v.Add(-1) }

// Add64 atomically adds delta (which may be negative) to w and returns
// the new value.
func Add64(w *Word64, delta int64) int64 { return w.v.Add(delta) }

// Subtract64 atomically subtracts delta from w and returns the new value.
func Subtract64(w *Word64, delta int64) int64 { return w.v.Add(-delta) }
