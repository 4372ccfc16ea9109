package gatt

import "errors"

// Address identifies a Bluetooth device by its 6-octet MAC address, in
// little-endian byte order. Kept under the core package because
// transport/bluez and transport/l2capsock both need to name peers the
// same way.
type Address [6]byte

var errInvalidAddress = errors.New("gatt: failed to parse address")

// ParseAddress parses a colon-separated hex address such as
// "11:22:33:AA:BB:CC".
func ParseAddress(s string) (addr Address, err error) {
	index := 11
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ':' {
			continue
		}
		var nibble byte
		switch {
		case c >= '0' && c <= '9':
			nibble = c - '0'
		case c >= 'A' && c <= 'F':
			nibble = c - 'A' + 0xA
		case c >= 'a' && c <= 'f':
			nibble = c - 'a' + 0xA
		default:
			return Address{}, errInvalidAddress
		}
		if index < 0 {
			return Address{}, errInvalidAddress
		}
		if index%2 == 0 {
			addr[index/2] |= nibble
		} else {
			addr[index/2] |= nibble << 4
		}
		index--
	}
	if index != -1 {
		return Address{}, errInvalidAddress
	}
	return addr, nil
}

// String returns the colon-separated hex form, such as "11:22:33:AA:BB:CC".
func (addr Address) String() string {
	const hex = "0123456789ABCDEF"
	buf := make([]byte, 17)
	pos := 0
	for i := 5; i >= 0; i-- {
		if i != 5 {
			buf[pos] = ':'
			pos++
		}
		buf[pos] = hex[addr[i]>>4]
		buf[pos+1] = hex[addr[i]&0x0f]
		pos += 2
	}
	return string(buf)
}
