//go:build linux

package procsync

import (
	"fmt"
	"net"

	"golang.org/x/sys/unix"
)

// HandleConn transfers kernel-object handles between cooperating processes
// over a connected Unix-domain socket. It is the push-direction complement
// to [DupHandleFromProcess] on Linux, where no process may write into
// another's handle table: the sender attaches the fd as SCM_RIGHTS
// ancillary data and the kernel installs an independent duplicate in the
// receiver.
//
// The socket itself is the capability: there is no global name to collide
// on, and PeerPid lets either side verify exactly which process it is
// granting handles to before sending.
type HandleConn struct {
	conn *net.UnixConn
}

// NewHandleConn wraps an established Unix-domain connection (typically a
// socketpair inherited across fork/exec, or a connected unix socket).
func NewHandleConn(conn *net.UnixConn) *HandleConn {
	return &HandleConn{conn: conn}
}

// PeerPid returns the process id of the peer, as reported by the kernel
// (SO_PEERCRED). Unlike a pid carried in a message, this cannot be forged.
func (c *HandleConn) PeerPid() (int, error) {
	raw, err := c.conn.SyscallConn()
	if err != nil {
		return 0, err
	}
	var (
		cred    *unix.Ucred
		credErr error
	)
	if err := raw.Control(func(fd uintptr) {
		cred, credErr = unix.GetsockoptUcred(int(fd), unix.SOL_SOCKET, unix.SO_PEERCRED)
	}); err != nil {
		return 0, err
	}
	if credErr != nil {
		return 0, fmt.Errorf("procsync: SO_PEERCRED: %w", credErr)
	}
	return int(cred.Pid), nil
}

// SendHandle transfers h to the peer. The local handle remains valid and
// independently closable; the peer receives its own duplicate.
func (c *HandleConn) SendHandle(h Handle) error {
	if h == NullHandle {
		return ErrInvalidParameter
	}
	rights := unix.UnixRights(int(h))
	if _, _, err := c.conn.WriteMsgUnix([]byte{0}, rights, nil); err != nil {
		logWarn("HandleConn.SendHandle", err, "sendmsg failed")
		return fmt.Errorf("procsync: send handle: %w", err)
	}
	return nil
}

// RecvHandle receives one handle from the peer. It blocks until a handle
// arrives or the connection fails; apply deadlines via the underlying
// conn's SetReadDeadline for bounded waits.
func (c *HandleConn) RecvHandle() (Handle, error) {
	buf := make([]byte, 1)
	oob := make([]byte, unix.CmsgSpace(4))
	_, oobn, _, _, err := c.conn.ReadMsgUnix(buf, oob)
	if err != nil {
		logWarn("HandleConn.RecvHandle", err, "recvmsg failed")
		return NullHandle, fmt.Errorf("procsync: receive handle: %w", err)
	}
	msgs, err := unix.ParseSocketControlMessage(oob[:oobn])
	if err != nil || len(msgs) == 0 {
		return NullHandle, fmt.Errorf("procsync: receive handle: missing control message")
	}
	fds, err := unix.ParseUnixRights(&msgs[0])
	if err != nil || len(fds) == 0 {
		return NullHandle, fmt.Errorf("procsync: receive handle: no rights attached")
	}
	// Anything beyond the first fd would leak; refuse multi-fd messages at
	// the protocol level by closing extras.
	for _, fd := range fds[1:] {
		unix.Close(fd)
	}
	return Handle(fds[0]), nil
}

// Close closes the underlying connection.
func (c *HandleConn) Close() error {
	return c.conn.Close()
}
