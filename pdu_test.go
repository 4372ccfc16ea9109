package gatt

import (
	"bytes"
	"testing"
)

func TestPutGetHandleRoundTrip(t *testing.T) {
	var buf [2]byte
	putHandle(buf[:], 0x1234)
	if buf != [2]byte{0x34, 0x12} {
		t.Fatalf("expected little-endian encoding, got % x", buf)
	}
	if getHandle(buf[:]) != 0x1234 {
		t.Errorf("round trip mismatch")
	}
}

func TestUUIDWireSizeAndPut(t *testing.T) {
	short := New16BitUUID(0x180d)
	if uuidWireSize(short) != 2 {
		t.Fatalf("expected 16-bit UUID to take 2 octets on the wire")
	}
	buf := make([]byte, 2)
	putUUID(buf, short)
	if !bytes.Equal(buf, []byte{0x0d, 0x18}) {
		t.Errorf("got % x", buf)
	}
	if getUUID(buf) != short {
		t.Errorf("getUUID did not round-trip a 16-bit UUID")
	}

	full, _ := ParseUUID("6e400001-b5a3-f393-e0a9-e50e24dcca9e")
	if uuidWireSize(full) != 16 {
		t.Fatalf("expected 128-bit UUID to take 16 octets on the wire")
	}
	buf128 := make([]byte, 16)
	putUUID(buf128, full)
	if getUUID(buf128) != full {
		t.Errorf("getUUID did not round-trip a 128-bit UUID")
	}
}

func TestWriteErrorResponse(t *testing.T) {
	out := make([]byte, 16)
	n := writeErrorResponse(out, opReadReq, 0x0007, ErrAttributeNotFound)
	want := []byte{opError, opReadReq, 0x07, 0x00, byte(ErrAttributeNotFound)}
	if !bytes.Equal(out[:n], want) {
		t.Errorf("got % x, want % x", out[:n], want)
	}
}

func TestWriteErrorResponseTooSmall(t *testing.T) {
	out := make([]byte, 4)
	n := writeErrorResponse(out, opReadReq, 0x0007, ErrAttributeNotFound)
	if n != 0 {
		t.Errorf("expected 0 when the buffer cannot hold 5 octets, got %d", n)
	}
}
