package gatt

import "testing"

func TestReadFixedExactFit(t *testing.T) {
	value := []byte("hello")
	out := make([]byte, 5)
	n, result := readFixed(value, out, 0)
	if n != 5 || result != AccessSuccess {
		t.Fatalf("got n=%d result=%v", n, result)
	}
}

func TestReadFixedTruncates(t *testing.T) {
	value := []byte("hello")
	out := make([]byte, 3)
	n, result := readFixed(value, out, 0)
	if n != 3 || result != AccessReadTruncated {
		t.Fatalf("got n=%d result=%v", n, result)
	}
	if string(out) != "hel" {
		t.Errorf("got %q", out)
	}
}

func TestReadFixedOffsetPastEnd(t *testing.T) {
	value := []byte("hi")
	out := make([]byte, 4)
	_, result := readFixed(value, out, 3)
	if result != AccessInvalidOffset {
		t.Fatalf("expected AccessInvalidOffset, got %v", result)
	}
}

func TestReadFixedOffsetAtEnd(t *testing.T) {
	value := []byte("hi")
	out := make([]byte, 4)
	n, result := readFixed(value, out, 2)
	if n != 0 || result != AccessSuccess {
		t.Fatalf("reading exactly at the end should succeed with 0 bytes, got n=%d result=%v", n, result)
	}
}

func TestFixedAttributeIsReadOnly(t *testing.T) {
	attr := &fixedAttribute{uuid: New16BitUUID(0x2800), value: []byte{1, 2}}
	if attr.WriteValue(nil, []byte{9}) != AccessWriteNotPermitted {
		t.Errorf("expected declarations to reject writes")
	}
}

func TestFixedAttributeCompareValue(t *testing.T) {
	attr := &fixedAttribute{uuid: New16BitUUID(0x2800), value: []byte{0x0d, 0x18}}
	if attr.CompareValue(nil, []byte{0x0d, 0x18}) != AccessValueEqual {
		t.Errorf("expected equal values to compare equal")
	}
	if attr.CompareValue(nil, []byte{0x0f, 0x18}) != AccessValueNotEqual {
		t.Errorf("expected different values to compare unequal")
	}
}
