package gatt

// Database is the build-time-assembled, immutable sequence of
// attributes: the concatenation of services, each contributing a Primary
// Service Declaration, then per characteristic a Characteristic
// Declaration immediately followed by a Value Declaration, then any
// descriptors (here: a CCCD when the characteristic is notify/indicate
// capable). Handles are dense, 1..N, assigned in declaration order; each
// service occupies a contiguous range.
//
// Built once at start-up by a pure builder that returns an immutable
// value, rather than mutated in place as services are added.
type Database struct {
	entries   []dbEntry
	cccdSlots int
}

type dbEntry struct {
	attr Attribute
	// endHandle is nonzero only for the entry at a service's start
	// handle, naming the last handle in that service's range.
	endHandle uint16
}

// BuildDatabase assigns handles to the given services, in order, and
// returns the resulting immutable Database. It never mutates services
// after returning; callers may discard the slice.
func BuildDatabase(services []ServiceConfig) *Database {
	db := &Database{}
	h := uint16(1)

	for _, svc := range services {
		svcEntryIndex := len(db.entries)
		db.entries = append(db.entries, dbEntry{}) // backfilled below
		h++

		for _, ch := range svc.Characteristics {
			h = db.appendCharacteristic(ch, h)
		}

		svcUUIDBytes := make([]byte, uuidWireSize(svc.UUID))
		putUUID(svcUUIDBytes, svc.UUID)
		db.entries[svcEntryIndex] = dbEntry{
			attr:      &fixedAttribute{uuid: New16BitUUID(uuidPrimaryService), value: svcUUIDBytes},
			endHandle: h - 1,
		}
	}

	return db
}

func (db *Database) appendCharacteristic(ch CharacteristicConfig, h uint16) uint16 {
	valueHandle := h + 1
	perms := ch.permissions()

	declValue := make([]byte, 3+uuidWireSize(ch.UUID))
	declValue[0] = perms.wireProperties()
	putHandle(declValue[1:3], valueHandle)
	putUUID(declValue[3:], ch.UUID)
	db.entries = append(db.entries, dbEntry{
		attr: &fixedAttribute{uuid: New16BitUUID(uuidCharacteristicDeclaration), value: declValue},
	})
	h++

	valueUUID := ch.UUID
	if !valueUUID.Is16Bit() {
		valueUUID = sentinel128BitUUID
	}
	value := ch.Value
	if value == nil {
		value = new([]byte)
	}
	db.entries = append(db.entries, dbEntry{
		attr: &valueAttribute{uuid: valueUUID, value: value, perms: perms},
	})
	h++

	if ch.Notify || ch.Indicate {
		slot := db.cccdSlots
		db.cccdSlots++
		db.entries = append(db.entries, dbEntry{attr: &cccdAttribute{slot: slot}})
		h++
	}

	return h
}

// Count returns N, the number of attributes in the database (the highest
// valid handle).
func (db *Database) Count() int { return len(db.entries) }

// CCCDSlots returns how many notify/indicate-capable characteristics this
// database declared; pass it to NewConn to size a connection's CCCD
// bitmap.
func (db *Database) CCCDSlots() int { return db.cccdSlots }

// At returns the attribute at handle (1-based), or nil, false if handle is
// 0 or exceeds Count().
func (db *Database) At(handle uint16) (Attribute, bool) {
	if handle == 0 || int(handle) > len(db.entries) {
		return nil, false
	}
	return db.entries[handle-1].attr, true
}

// CCCDSlotForValue returns the CCCD slot guarding handle, the handle of a
// Characteristic Value Declaration, if that characteristic declared
// Notify or Indicate. A CCCD always immediately follows its value in
// appendCharacteristic's layout.
func (db *Database) CCCDSlotForValue(handle uint16) (int, bool) {
	if handle == 0 || int(handle) >= len(db.entries) {
		return 0, false
	}
	if cccd, ok := db.entries[handle].attr.(*cccdAttribute); ok {
		return cccd.slot, true
	}
	return 0, false
}

// ServiceEndHandle returns the last handle of the service whose Primary
// Service Declaration is at handle, and true, or 0, false if handle does
// not name a Primary Service Declaration.
func (db *Database) ServiceEndHandle(handle uint16) (uint16, bool) {
	if handle == 0 || int(handle) > len(db.entries) {
		return 0, false
	}
	e := db.entries[handle-1]
	if e.endHandle == 0 {
		return 0, false
	}
	return e.endHandle, true
}
