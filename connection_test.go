package gatt

import "testing"

func TestNewConnDefaults(t *testing.T) {
	conn := NewConn(100, 3)
	if conn.ServerMTU() != 100 {
		t.Errorf("expected server MTU 100, got %d", conn.ServerMTU())
	}
	if conn.ClientMTU() != MinATTMTU {
		t.Errorf("expected client MTU to default to %d, got %d", MinATTMTU, conn.ClientMTU())
	}
	if conn.NegotiatedMTU() != MinATTMTU {
		t.Errorf("expected negotiated MTU to default to %d, got %d", MinATTMTU, conn.NegotiatedMTU())
	}
}

func TestNewConnClampsServerMTUToMinimum(t *testing.T) {
	conn := NewConn(5, 0)
	if conn.ServerMTU() != MinATTMTU {
		t.Errorf("expected server MTU clamped to %d, got %d", MinATTMTU, conn.ServerMTU())
	}
}

func TestNegotiatedMTUIsMinimum(t *testing.T) {
	conn := NewConn(200, 0)
	conn.setClientMTU(50)
	if conn.NegotiatedMTU() != 50 {
		t.Errorf("expected negotiated MTU 50, got %d", conn.NegotiatedMTU())
	}
	conn.setClientMTU(500)
	if conn.NegotiatedMTU() != 200 {
		t.Errorf("expected negotiated MTU 200, got %d", conn.NegotiatedMTU())
	}
}

func TestCCCDOutOfRangeSlotIsSafe(t *testing.T) {
	conn := NewConn(100, 1)
	if conn.CCCD(5) != 0 {
		t.Errorf("expected 0 for an out-of-range slot")
	}
	conn.SetCCCD(5, 0xFFFF) // must not panic
	if conn.CCCD(0) != 0 {
		t.Errorf("out-of-range write must not affect slot 0")
	}
}
