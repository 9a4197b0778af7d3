//go:build linux

package procsync

import (
	"errors"
	"os"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

// skipIfNoPidfd skips tests on kernels (or sandboxes) without a usable
// pidfd_getfd; duplicating from the current process exercises the same
// code path the two-process protocol uses.
func skipIfNoPidfd(t *testing.T, err error) {
	t.Helper()
	if errors.Is(err, unix.ENOSYS) || errors.Is(err, unix.EPERM) {
		t.Skipf("pidfd_getfd not usable here: %v", err)
	}
}

func TestDupHandleFromProcessInvalid(t *testing.T) {
	if _, err := DupHandleFromProcess(os.Getpid(), NullHandle); err != ErrInvalidParameter {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
}

func TestCopySemaphoreRoundTrip(t *testing.T) {
	orig, err := NewSemaphore(0, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer orig.Close()

	dup, err := CopySemaphoreFromProcess(os.Getpid(), orig.Token())
	if err != nil {
		skipIfNoPidfd(t, err)
		t.Fatal(err)
	}
	defer dup.Close()

	// Both handles observe the same count: signal on the duplicate, wait
	// on the original, and vice versa.
	if r := dup.Signal(); r != ResultSuccess {
		t.Fatalf("Signal via duplicate = %v", r)
	}
	if r := orig.Wait(time.Second); r != ResultSuccess {
		t.Fatalf("Wait via original = %v", r)
	}
	if r := orig.Signal(); r != ResultSuccess {
		t.Fatalf("Signal via original = %v", r)
	}
	if r := dup.Wait(time.Second); r != ResultSuccess {
		t.Fatalf("Wait via duplicate = %v", r)
	}

	// maxCount is enforced across duplicated handles too.
	for i := 0; i < 4; i++ {
		if r := dup.Signal(); r != ResultSuccess {
			t.Fatalf("Signal %d = %v", i, r)
		}
	}
	if r := orig.Signal(); r != ResultError {
		t.Fatalf("Signal beyond max via original = %v, want Error", r)
	}
}

func TestCopySemaphoreSurvivesOriginalClose(t *testing.T) {
	orig, err := NewSemaphore(1, 1)
	if err != nil {
		t.Fatal(err)
	}

	dup, err := CopySemaphoreFromProcess(os.Getpid(), orig.Token())
	if err != nil {
		skipIfNoPidfd(t, err)
		t.Fatal(err)
	}
	defer dup.Close()

	// The duplicate is an independent capability: the kernel object lives
	// until every holder has closed.
	if err := orig.Close(); err != nil {
		t.Fatal(err)
	}
	if r := dup.Wait(0); r != ResultSuccess {
		t.Fatalf("Wait on duplicate after original closed = %v", r)
	}
}

func TestCopyBufferFromProcess(t *testing.T) {
	const size = 4096
	orig, err := NewSharedBuffer(size)
	if err != nil {
		t.Fatal(err)
	}
	defer orig.Close()

	view, err := orig.Map()
	if err != nil {
		t.Fatal(err)
	}
	defer orig.Unmap(view)
	copy(view, "written through the original mapping")

	dup, err := CopyBufferFromProcess(os.Getpid(), orig.Handle(), size)
	if err != nil {
		skipIfNoPidfd(t, err)
		t.Fatal(err)
	}
	defer dup.Close()

	dupView, err := dup.Map()
	if err != nil {
		t.Fatal(err)
	}
	defer dup.Unmap(dupView)

	want := "written through the original mapping"
	if got := string(dupView[:len(want)]); got != want {
		t.Fatalf("duplicate view reads %q, want %q", got, want)
	}

	// And the other direction.
	dupView[0] = 'W'
	if view[0] != 'W' {
		t.Fatal("write through duplicate view not visible in original view")
	}
}

func TestShareWithProcessUnavailableOnLinux(t *testing.T) {
	buf, err := NewSharedBuffer(4096)
	if err != nil {
		t.Fatal(err)
	}
	defer buf.Close()

	// Linux has no handle-table injection; the push direction reports
	// Unavailable and peers pull instead.
	if _, err := buf.ShareWithProcess(os.Getpid()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("ShareWithProcess err = %v, want ErrUnavailable", err)
	}
}
