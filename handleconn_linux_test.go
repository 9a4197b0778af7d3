//go:build linux

package procsync

import (
	"net"
	"os"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

// handleConnPair builds two connected HandleConns over a socketpair, the
// same shape a parent/child process pair would inherit.
func handleConnPair(t *testing.T) (*HandleConn, *HandleConn) {
	t.Helper()
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		t.Fatal(err)
	}

	toConn := func(fd int, name string) *net.UnixConn {
		f := os.NewFile(uintptr(fd), name)
		defer f.Close() // FileConn dups the fd
		c, err := net.FileConn(f)
		if err != nil {
			t.Fatal(err)
		}
		uc, ok := c.(*net.UnixConn)
		if !ok {
			t.Fatalf("FileConn returned %T, want *net.UnixConn", c)
		}
		return uc
	}

	a := NewHandleConn(toConn(fds[0], "handleconn-a"))
	b := NewHandleConn(toConn(fds[1], "handleconn-b"))
	t.Cleanup(func() {
		a.Close()
		b.Close()
	})
	return a, b
}

func TestHandleConnPeerPid(t *testing.T) {
	a, _ := handleConnPair(t)
	pid, err := a.PeerPid()
	if err != nil {
		t.Fatal(err)
	}
	if pid != os.Getpid() {
		t.Fatalf("PeerPid = %d, want %d", pid, os.Getpid())
	}
}

func TestHandleConnTransfersSharedBuffer(t *testing.T) {
	a, b := handleConnPair(t)

	const size = 4096
	buf, err := NewSharedBuffer(size)
	if err != nil {
		t.Fatal(err)
	}
	defer buf.Close()

	view, err := buf.Map()
	if err != nil {
		t.Fatal(err)
	}
	defer buf.Unmap(view)
	copy(view, "sent over scm_rights")

	if err := a.SendHandle(buf.Handle()); err != nil {
		t.Fatal(err)
	}
	received, err := b.RecvHandle()
	if err != nil {
		t.Fatal(err)
	}

	// The received handle is an independent duplicate of the same region.
	dup := &SharedBuffer{h: received, size: size}
	defer dup.Close()
	dupView, err := dup.Map()
	if err != nil {
		t.Fatal(err)
	}
	defer dup.Unmap(dupView)

	want := "sent over scm_rights"
	if got := string(dupView[:len(want)]); got != want {
		t.Fatalf("received view reads %q, want %q", got, want)
	}
}

func TestHandleConnSendInvalid(t *testing.T) {
	a, _ := handleConnPair(t)
	if err := a.SendHandle(NullHandle); err != ErrInvalidParameter {
		t.Fatalf("SendHandle(NullHandle) err = %v, want ErrInvalidParameter", err)
	}
}

func TestHandleConnRecvDeadline(t *testing.T) {
	_, b := handleConnPair(t)
	if err := b.conn.SetReadDeadline(time.Now().Add(50 * time.Millisecond)); err != nil {
		t.Fatal(err)
	}
	if _, err := b.RecvHandle(); err == nil {
		t.Fatal("RecvHandle with nothing pending succeeded")
	}
}
