package gatt

// This file implements 16-bit and 128-bit UUIDs as defined in the Bluetooth
// specification, plus the sentinel value used to mark a Characteristic
// Value Declaration whose real UUID is 128-bit and lives in the preceding
// Characteristic Declaration (see database.go).

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// UUID is a single UUID as used in the ATT/GATT wire format. It is
// represented as a [4]uint32 instead of a [16]byte for cheap equality
// comparisons and cheap 16-bit aliasing checks.
type UUID [4]uint32

var errInvalidUUID = errors.New("gatt: failed to parse UUID")

// New16BitUUID returns the 128-bit UUID that a 16-bit (SIG-assigned) UUID
// expands to under the Bluetooth Base UUID.
//
// Only use registered UUIDs; see
// https://www.bluetooth.com/specifications/assigned-numbers/ for the list.
func New16BitUUID(shortUUID uint16) UUID {
	// https://stackoverflow.com/questions/36212020/how-can-i-convert-a-bluetooth-16-bit-service-uuid-into-a-128-bit-uuid
	var uuid UUID
	uuid[0] = 0x5F9B34FB
	uuid[1] = 0x80000080
	uuid[2] = 0x00001000
	uuid[3] = uint32(shortUUID)
	return uuid
}

// sentinel128BitUUID marks a Characteristic Value Declaration whose actual
// UUID is 128-bit and must be recovered by reading the preceding
// Characteristic Declaration. It intentionally does not alias
// the Bluetooth Base UUID, so Is16Bit/Is128BitSentinel can never both be
// true for the same value.
var sentinel128BitUUID = UUID{0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF}

// Is128BitSentinel reports whether uuid is the marker used by a Value
// Declaration attribute whose real, 128-bit UUID lives elsewhere.
func (uuid UUID) Is128BitSentinel() bool {
	return uuid == sentinel128BitUUID
}

// Is32Bit returns whether this UUID is a 16- or 32-bit BLE UUID expanded
// under the Bluetooth Base UUID.
func (uuid UUID) Is32Bit() bool {
	return uuid[0] == 0x5F9B34FB && uuid[1] == 0x80000080 && uuid[2] == 0x00001000
}

// Is16Bit returns whether this UUID is a 16-bit BLE UUID.
func (uuid UUID) Is16Bit() bool {
	return uuid.Is32Bit() && uuid[3] == uint32(uint16(uuid[3]))
}

// Get16Bit returns the 16-bit value of this UUID. The result is only
// meaningful if Is16Bit() is true.
func (uuid UUID) Get16Bit() uint16 {
	return uint16(uuid[3])
}

// Bytes returns the UUID as a little-endian 128-bit byte array, as used on
// the wire in a Find Information Response or Characteristic Declaration.
func (uuid UUID) Bytes() (out [16]byte) {
	binary.LittleEndian.PutUint32(out[0:], uuid[0])
	binary.LittleEndian.PutUint32(out[4:], uuid[1])
	binary.LittleEndian.PutUint32(out[8:], uuid[2])
	binary.LittleEndian.PutUint32(out[12:], uuid[3])
	return
}

// NewUUID returns a UUID based on a packed little-endian 128-bit value, as
// read from the wire.
func NewUUID(uuid [16]byte) UUID {
	return UUID{
		binary.LittleEndian.Uint32(uuid[0:]),
		binary.LittleEndian.Uint32(uuid[4:]),
		binary.LittleEndian.Uint32(uuid[8:]),
		binary.LittleEndian.Uint32(uuid[12:]),
	}
}

// String returns a hyphenated, lowercase hexadecimal representation of the
// UUID, as used in the Bluetooth SIG assigned-numbers documents.
func (uuid UUID) String() string {
	le := uuid.Bytes()
	var bytes [16]byte
	for i := range le {
		bytes[i] = le[15-i]
	}
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		binary.BigEndian.Uint32(bytes[0:4]),
		binary.BigEndian.Uint16(bytes[4:6]),
		binary.BigEndian.Uint16(bytes[6:8]),
		binary.BigEndian.Uint16(bytes[8:10]),
		bytes[10:16])
}

// ParseUUID parses a UUID in the usual 8-4-4-4-12 hyphenated hexadecimal
// form, or a bare 4-hex-digit short form (e.g. "180d"), which expands
// under the Bluetooth Base UUID via New16BitUUID. It returns
// errInvalidUUID if s matches neither shape.
func ParseUUID(s string) (UUID, error) {
	s = strings.ToLower(s)

	if len(s) == 4 {
		short, err := strconv.ParseUint(s, 16, 16)
		if err != nil {
			return UUID{}, errInvalidUUID
		}
		return New16BitUUID(uint16(short)), nil
	}

	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return UUID{}, errInvalidUUID
	}

	hex := s[0:8] + s[9:13] + s[14:18] + s[19:23] + s[24:36]
	if len(hex) != 32 {
		return UUID{}, errInvalidUUID
	}

	var raw [16]byte
	for i := 0; i < 16; i++ {
		b, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return UUID{}, errInvalidUUID
		}
		raw[i] = byte(b)
	}

	// raw is big-endian (as written); Bytes()/NewUUID use little-endian
	// wire order, so reverse before constructing.
	var le [16]byte
	for i := range raw {
		le[i] = raw[15-i]
	}
	return NewUUID(le), nil
}

// MustParseUUID is ParseUUID for callers that already know s is
// well-formed, such as generated code built from a validated profile
// document (see cmd/gattgen). It panics on an invalid UUID.
func MustParseUUID(s string) UUID {
	uuid, err := ParseUUID(s)
	if err != nil {
		panic(err)
	}
	return uuid
}

// isIn reports whether uuid appears in uuids.
func (uuid UUID) isIn(uuids []UUID) bool {
	for _, u := range uuids {
		if u == uuid {
			return true
		}
	}
	return false
}
