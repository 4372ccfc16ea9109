package gatt

import "encoding/binary"

// putHandle and getHandle read/write a handle (or any other little-endian
// 16-bit ATT field: an offset, an MTU, a UUID16) at a fixed buffer offset,
// matching the wire layout every PDU in this protocol uses.
func putHandle(buf []byte, h uint16) {
	binary.LittleEndian.PutUint16(buf, h)
}

func getHandle(buf []byte) uint16 {
	return binary.LittleEndian.Uint16(buf)
}

// putUUID writes uuid into buf, 2 octets if it is 16-bit, else 16 octets,
// and returns the number of octets written.
func putUUID(buf []byte, uuid UUID) int {
	if uuid.Is16Bit() {
		putHandle(buf, uuid.Get16Bit())
		return 2
	}
	b := uuid.Bytes()
	copy(buf, b[:])
	return 16
}

// uuidWireSize returns how many octets uuid occupies on the wire.
func uuidWireSize(uuid UUID) int {
	if uuid.Is16Bit() {
		return 2
	}
	return 16
}

// getUUID reads a UUID from buf, whose length determines whether it is
// parsed as 16-bit or 128-bit.
func getUUID(buf []byte) UUID {
	if len(buf) == 2 {
		return New16BitUUID(binary.LittleEndian.Uint16(buf))
	}
	var raw [16]byte
	copy(raw[:], buf)
	return NewUUID(raw)
}

// writeErrorResponse assembles a 5-octet ATT Error Response
// into out. If out cannot hold 5 octets, it returns 0; the transport is
// then expected to drop the response entirely.
func writeErrorResponse(out []byte, reqOpcode byte, handle uint16, code AttError) int {
	if len(out) < 5 {
		return 0
	}
	out[0] = opError
	out[1] = reqOpcode
	putHandle(out[2:4], handle)
	out[4] = byte(code)
	return 5
}
