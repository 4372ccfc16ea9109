package gatt

// This file implements the attribute access contract: every attribute in
// the database, whatever kind it is, is reached through the same three
// operations, so every request handler can treat the database as a flat,
// opaque sequence of handles rather than switching on attribute kind at
// every call site.

// AccessResult is the outcome of one attribute access.
type AccessResult int

const (
	AccessSuccess AccessResult = iota
	AccessReadTruncated
	AccessInvalidOffset
	AccessWriteOverflow
	AccessWriteNotPermitted
	AccessReadNotPermitted
	AccessValueEqual
	AccessValueNotEqual
)

// Attribute is the uniform access contract every entry in a Database
// implements. Attribute *value* storage and the semantics of what a read
// or write means to the application sit behind this interface; the core
// only ever calls through it.
type Attribute interface {
	// UUID returns the attribute's type UUID. A Characteristic Value
	// Declaration whose real UUID is 128-bit returns the sentinel
	// (Is128BitSentinel); its real UUID is recoverable only by reading
	// the preceding Characteristic Declaration attribute.
	UUID() UUID

	// ReadValue copies up to len(out) octets of the attribute's current
	// value, starting at offset, into out. It returns the number of
	// octets written and AccessSuccess, or AccessReadTruncated if more
	// octets remained than fit in out, AccessInvalidOffset if offset is
	// beyond the current value length, or AccessReadNotPermitted if
	// reads are denied.
	ReadValue(conn *Conn, out []byte, offset int) (n int, result AccessResult)

	// WriteValue replaces the attribute's value with in. It returns
	// AccessSuccess, AccessWriteOverflow if in exceeds the attribute's
	// storage capacity, or AccessWriteNotPermitted if writes are denied.
	WriteValue(conn *Conn, in []byte) AccessResult

	// CompareValue reports whether the attribute's current value equals
	// in byte-for-byte (AccessValueEqual) or not (AccessValueNotEqual).
	// Used by Find By Type Value against Primary Service
	// values; other attribute kinds may implement it as an unconditional
	// AccessValueNotEqual since nothing else in this core calls it.
	CompareValue(conn *Conn, in []byte) AccessResult
}

// readFixed implements the common offset/truncation bookkeeping for a
// read against an immutable, in-memory octet string. Every read-only
// attribute kind (Primary Service Declaration, Characteristic
// Declaration) is built on it.
func readFixed(value []byte, out []byte, offset int) (int, AccessResult) {
	if offset > len(value) {
		return 0, AccessInvalidOffset
	}
	remaining := value[offset:]
	n := copy(out, remaining)
	if n < len(remaining) {
		return n, AccessReadTruncated
	}
	return n, AccessSuccess
}

// fixedAttribute is a read-only attribute whose value is fixed at
// database-build time: a Primary Service Declaration (value = the service
// UUID) or a Characteristic Declaration (value = properties, value
// handle, UUID). Grounded on rawService.Read/rawCharacteristic.Read in
// att_hci.go, generalized to one declaration kind.
type fixedAttribute struct {
	uuid  UUID
	value []byte
}

func (a *fixedAttribute) UUID() UUID { return a.uuid }

func (a *fixedAttribute) ReadValue(_ *Conn, out []byte, offset int) (int, AccessResult) {
	return readFixed(a.value, out, offset)
}

func (a *fixedAttribute) WriteValue(_ *Conn, _ []byte) AccessResult {
	return AccessWriteNotPermitted
}

func (a *fixedAttribute) CompareValue(_ *Conn, in []byte) AccessResult {
	if len(in) == len(a.value) && string(in) == string(a.value) {
		return AccessValueEqual
	}
	return AccessValueNotEqual
}
