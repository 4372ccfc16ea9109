package gatt

import "encoding/binary"

// valueAttribute is a Characteristic Value Declaration bound to
// application-owned storage (CharacteristicConfig.Value).
type valueAttribute struct {
	uuid  UUID // sentinel128BitUUID if the real UUID is 128-bit
	value *[]byte
	perms CharacteristicPermissions
}

func (a *valueAttribute) UUID() UUID { return a.uuid }

func (a *valueAttribute) ReadValue(_ *Conn, out []byte, offset int) (int, AccessResult) {
	if !a.perms.Read() {
		return 0, AccessReadNotPermitted
	}
	return readFixed(*a.value, out, offset)
}

func (a *valueAttribute) WriteValue(_ *Conn, in []byte) AccessResult {
	if !a.perms.Write() {
		return AccessWriteNotPermitted
	}
	if len(in) > cap(*a.value) {
		return AccessWriteOverflow
	}
	buf := (*a.value)[:len(in):cap(*a.value)]
	copy(buf, in)
	*a.value = buf
	return AccessSuccess
}

func (a *valueAttribute) CompareValue(_ *Conn, in []byte) AccessResult {
	if len(in) == len(*a.value) && string(in) == string(*a.value) {
		return AccessValueEqual
	}
	return AccessValueNotEqual
}

// cccdAttribute is a Client Characteristic Configuration Descriptor. Its
// value lives in the connection's CCCD bitmap, not in the attribute
// itself, since it is per-connection state: each link gets its own slot
// rather than sharing one field across every connection.
type cccdAttribute struct {
	slot int
}

func (a *cccdAttribute) UUID() UUID { return New16BitUUID(uuidClientCharacteristicConfig) }

func (a *cccdAttribute) ReadValue(conn *Conn, out []byte, offset int) (int, AccessResult) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], conn.CCCD(a.slot))
	return readFixed(buf[:], out, offset)
}

func (a *cccdAttribute) WriteValue(conn *Conn, in []byte) AccessResult {
	if len(in) != 2 {
		return AccessWriteOverflow
	}
	conn.SetCCCD(a.slot, binary.LittleEndian.Uint16(in))
	return AccessSuccess
}

func (a *cccdAttribute) CompareValue(_ *Conn, _ []byte) AccessResult {
	return AccessValueNotEqual
}
