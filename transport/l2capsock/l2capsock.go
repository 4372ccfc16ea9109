// Package l2capsock is a Linux L2CAP socket transport for gatt.Server: it
// owns a real fixed channel 4 (ATT) connection per client, without setting
// any BT_SECURITY level, and feeds whatever it reads into Server.L2CAPInput, writing
// back whatever that returns.
//
// Uses golang.org/x/sys/unix for the raw AF_BLUETOOTH/BTPROTO_L2CAP
// socket calls rather than the syscall package directly.
package l2capsock

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/go-gatt/gattserver"
)

const (
	afBluetooth  = 31
	btprotoL2cap = 0
	solL2CAP     = 6
	l2capOptions = 0x01

	bdaddrLEPublic = 0x01
	bdaddrLERandom = 0x02

	attChannel = 4
)

// sockaddrL2 mirrors struct sockaddr_l2 from <bluetooth/l2cap.h>: family
// (2), psm (2), address (6), cid (2), address type (1).
type sockaddrL2 struct {
	family   uint16
	psm      uint16
	addr     [6]byte
	cid      uint16
	addrType uint8
}

func newSockaddrL2(psm uint16, addr gatt.Address, addrType uint8) sockaddrL2 {
	sa := sockaddrL2{family: afBluetooth, psm: psm, addrType: addrType}
	for i := range addr {
		sa.addr[i] = addr[5-i]
	}
	return sa
}

func bind(fd int, sa sockaddrL2) error {
	_, _, errno := unix.Syscall(unix.SYS_BIND, uintptr(fd), uintptr(unsafe.Pointer(&sa)), unsafe.Sizeof(sa))
	if errno != 0 {
		return errno
	}
	return nil
}

// Listener accepts L2CAP ATT channel connections on a local adapter.
type Listener struct {
	fd int
}

// Listen opens an L2CAP fixed-channel listening socket bound to local.
func Listen(local gatt.Address) (*Listener, error) {
	fd, err := unix.Socket(afBluetooth, unix.SOCK_SEQPACKET, btprotoL2cap)
	if err != nil {
		return nil, fmt.Errorf("l2capsock: socket: %w", err)
	}

	sa := newSockaddrL2(0, local, bdaddrLEPublic)
	sa.cid = attChannel
	if err := bind(fd, sa); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("l2capsock: bind: %w", err)
	}

	if err := unix.Listen(fd, 1); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("l2capsock: listen: %w", err)
	}

	return &Listener{fd: fd}, nil
}

// Accept blocks for one incoming connection and returns it as a Link.
func (l *Listener) Accept() (*Link, error) {
	connFd, _, err := unix.Accept(l.fd)
	if err != nil {
		return nil, fmt.Errorf("l2capsock: accept: %w", err)
	}
	return &Link{fd: connFd}, nil
}

// Close stops listening.
func (l *Listener) Close() error {
	return unix.Close(l.fd)
}

// Link is one accepted L2CAP connection, carrying ATT PDUs.
type Link struct {
	fd int
}

// Read receives the next ATT PDU into buf.
func (c *Link) Read(buf []byte) (int, error) {
	return unix.Read(c.fd, buf)
}

// Write sends one ATT PDU.
func (c *Link) Write(buf []byte) (int, error) {
	return unix.Write(c.fd, buf)
}

// Close drops the connection.
func (c *Link) Close() error {
	return unix.Close(c.fd)
}

// Serve runs the ATT request/response loop for one connection until Read
// fails (peer disconnected). Callers that need cancellation should close
// the Link from another goroutine to unblock the read.
func Serve(server *gatt.Server, conn *gatt.Conn, link *Link) error {
	in := make([]byte, conn.ServerMTU())
	out := make([]byte, conn.ServerMTU())

	for {
		n, err := link.Read(in)
		if err != nil {
			return err
		}
		if n == 0 {
			continue
		}

		respLen := server.L2CAPInput(in[:n], out, conn)
		if respLen == 0 {
			continue
		}
		if _, err := link.Write(out[:respLen]); err != nil {
			return err
		}
	}
}
