package gatt

import "testing"

func TestValueAttributeReadNotPermitted(t *testing.T) {
	value := []byte("secret")
	attr := &valueAttribute{uuid: New16BitUUID(0x2a00), value: &value, perms: CharacteristicWritePermission}

	var out [16]byte
	_, result := attr.ReadValue(nil, out[:], 0)
	if result != AccessReadNotPermitted {
		t.Fatalf("expected AccessReadNotPermitted, got %v", result)
	}
}

func TestValueAttributeWriteNotPermitted(t *testing.T) {
	value := []byte("secret")
	attr := &valueAttribute{uuid: New16BitUUID(0x2a00), value: &value, perms: CharacteristicReadPermission}

	if attr.WriteValue(nil, []byte("x")) != AccessWriteNotPermitted {
		t.Fatalf("expected AccessWriteNotPermitted")
	}
}

func TestValueAttributeWriteWithinCapacity(t *testing.T) {
	value := make([]byte, 2, 8)
	copy(value, "hi")
	attr := &valueAttribute{uuid: New16BitUUID(0x2a00), value: &value, perms: CharacteristicReadPermission | CharacteristicWritePermission}

	if result := attr.WriteValue(nil, []byte("longer")); result != AccessSuccess {
		t.Fatalf("expected AccessSuccess within capacity, got %v", result)
	}
	if string(value) != "longer" {
		t.Errorf("expected value updated in place, got %q", value)
	}
}

func TestValueAttributeWriteOverflow(t *testing.T) {
	value := make([]byte, 2, 2)
	copy(value, "hi")
	attr := &valueAttribute{uuid: New16BitUUID(0x2a00), value: &value, perms: CharacteristicReadPermission | CharacteristicWritePermission}

	if result := attr.WriteValue(nil, []byte("too long")); result != AccessWriteOverflow {
		t.Fatalf("expected AccessWriteOverflow, got %v", result)
	}
}

func TestCCCDAttributeReadWrite(t *testing.T) {
	conn := NewConn(512, 1)
	attr := &cccdAttribute{slot: 0}

	var out [2]byte
	n, result := attr.ReadValue(conn, out[:], 0)
	if n != 2 || result != AccessSuccess || out != [2]byte{0, 0} {
		t.Fatalf("expected zeroed CCCD, got n=%d result=%v out=%v", n, result, out)
	}

	if result := attr.WriteValue(conn, []byte{0x01, 0x00}); result != AccessSuccess {
		t.Fatalf("expected AccessSuccess, got %v", result)
	}
	if !conn.NotifyEnabled(0) {
		t.Errorf("expected notify bit set after write")
	}
	if conn.IndicateEnabled(0) {
		t.Errorf("expected indicate bit unset")
	}
}

func TestCCCDAttributeRejectsWrongLength(t *testing.T) {
	conn := NewConn(512, 1)
	attr := &cccdAttribute{slot: 0}

	if result := attr.WriteValue(conn, []byte{0x01}); result != AccessWriteOverflow {
		t.Fatalf("expected AccessWriteOverflow for a 1-byte write, got %v", result)
	}
}
