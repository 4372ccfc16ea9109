package gatt

import "testing"

func TestParseAddressRoundTrip(t *testing.T) {
	addr, err := ParseAddress("11:22:33:AA:BB:CC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr.String() != "11:22:33:AA:BB:CC" {
		t.Errorf("got %s", addr.String())
	}
}

func TestParseAddressInvalid(t *testing.T) {
	if _, err := ParseAddress("not-a-mac"); err == nil {
		t.Fatalf("expected an error for a malformed address")
	}
}
