package gatt

import (
	"bytes"
	"testing"
)

// testDatabase builds one service (UUID 0x1805) with one read/write,
// notify-capable characteristic (UUID 0x2a05, initial value "hi"), so
// every handler test below works against a known, fixed handle layout:
//
//	h1: Primary Service Declaration   (0x1805)
//	h2: Characteristic Declaration
//	h3: Characteristic Value          ("hi", read/write)
//	h4: Client Characteristic Config
func testDatabase() (*Database, *[]byte) {
	value := []byte("hi")
	db := BuildDatabase([]ServiceConfig{
		{
			UUID: New16BitUUID(0x1805),
			Characteristics: []CharacteristicConfig{
				{
					UUID:   New16BitUUID(0x2a05),
					Value:  &value,
					Notify: true,
				},
			},
		},
	})
	return db, &value
}

func TestDatabaseLayout(t *testing.T) {
	db, _ := testDatabase()
	if db.Count() != 4 {
		t.Fatalf("expected 4 attributes, got %d", db.Count())
	}
	if db.CCCDSlots() != 1 {
		t.Fatalf("expected 1 CCCD slot, got %d", db.CCCDSlots())
	}
	end, ok := db.ServiceEndHandle(1)
	if !ok || end != 4 {
		t.Fatalf("expected service 1 to end at handle 4, got %d, ok=%v", end, ok)
	}
}

func TestReadInvalidHandleZero(t *testing.T) {
	db, _ := testDatabase()
	s := NewServer(db)
	conn := NewConn(512, db.CCCDSlots())

	input := []byte{opReadReq, 0x00, 0x00}
	output := make([]byte, 64)
	n := s.L2CAPInput(input, output, conn)

	want := []byte{opError, opReadReq, 0x00, 0x00, byte(ErrInvalidHandle)}
	if !bytes.Equal(output[:n], want) {
		t.Errorf("got % x, want % x", output[:n], want)
	}
}

func TestReadPastLastHandle(t *testing.T) {
	db, _ := testDatabase()
	s := NewServer(db)
	conn := NewConn(512, db.CCCDSlots())

	input := []byte{opReadReq, 0x05, 0x00} // N=4, start=5
	output := make([]byte, 64)
	n := s.L2CAPInput(input, output, conn)

	want := []byte{opError, opReadReq, 0x05, 0x00, byte(ErrAttributeNotFound)}
	if !bytes.Equal(output[:n], want) {
		t.Errorf("got % x, want % x", output[:n], want)
	}
}

func TestReadCharacteristicValue(t *testing.T) {
	db, _ := testDatabase()
	s := NewServer(db)
	conn := NewConn(512, db.CCCDSlots())

	input := []byte{opReadReq, 0x03, 0x00}
	output := make([]byte, 64)
	n := s.L2CAPInput(input, output, conn)

	want := append([]byte{opReadResponse}, "hi"...)
	if !bytes.Equal(output[:n], want) {
		t.Errorf("got % x, want % x", output[:n], want)
	}
}

func TestWriteThenReadRoundTrips(t *testing.T) {
	db, _ := testDatabase()
	s := NewServer(db)
	conn := NewConn(512, db.CCCDSlots())

	write := append([]byte{opWriteReq, 0x03, 0x00}, "ok"...)
	output := make([]byte, 64)
	n := s.L2CAPInput(write, output, conn)
	if n != 1 || output[0] != opWriteResponse {
		t.Fatalf("write response = % x", output[:n])
	}

	read := []byte{opReadReq, 0x03, 0x00}
	n = s.L2CAPInput(read, output, conn)
	want := append([]byte{opReadResponse}, "ok"...)
	if !bytes.Equal(output[:n], want) {
		t.Errorf("got % x, want % x", output[:n], want)
	}
}

func TestWriteOverflowRejected(t *testing.T) {
	db, _ := testDatabase()
	s := NewServer(db)
	conn := NewConn(512, db.CCCDSlots())

	write := append([]byte{opWriteReq, 0x03, 0x00}, "too long"...)
	output := make([]byte, 64)
	n := s.L2CAPInput(write, output, conn)

	want := []byte{opError, opWriteReq, 0x03, 0x00, byte(ErrInvalidAttributeValueLength)}
	if !bytes.Equal(output[:n], want) {
		t.Errorf("got % x, want % x", output[:n], want)
	}
}

func TestExchangeMTU(t *testing.T) {
	db, _ := testDatabase()
	s := NewServer(db)
	conn := NewConn(100, db.CCCDSlots())

	input := []byte{opExchangeMTUReq, 0x85, 0x00} // client MTU 133
	output := make([]byte, 64)
	n := s.L2CAPInput(input, output, conn)

	want := []byte{opExchangeMTUResponse, 100, 0x00}
	if !bytes.Equal(output[:n], want) {
		t.Errorf("got % x, want % x", output[:n], want)
	}
	if conn.NegotiatedMTU() != 100 {
		t.Errorf("expected negotiated MTU 100, got %d", conn.NegotiatedMTU())
	}
}

func TestExchangeMTURejectsBelowMinimum(t *testing.T) {
	db, _ := testDatabase()
	s := NewServer(db)
	conn := NewConn(100, db.CCCDSlots())

	input := []byte{opExchangeMTUReq, 0x05, 0x00} // below MinATTMTU
	output := make([]byte, 64)
	n := s.L2CAPInput(input, output, conn)

	want := []byte{opError, opExchangeMTUReq, 0x00, 0x00, byte(ErrInvalidPDU)}
	if !bytes.Equal(output[:n], want) {
		t.Errorf("got % x, want % x", output[:n], want)
	}
}

func TestReadByGroupTypeFindsService(t *testing.T) {
	db, _ := testDatabase()
	s := NewServer(db)
	conn := NewConn(512, db.CCCDSlots())

	input := []byte{opReadByGroupTypeReq, 0x01, 0x00, 0xFF, 0xFF, 0x00, 0x28}
	output := make([]byte, 64)
	n := s.L2CAPInput(input, output, conn)

	want := []byte{opReadByGroupTypeResponse, 6, 0x01, 0x00, 0x04, 0x00, 0x05, 0x18}
	if !bytes.Equal(output[:n], want) {
		t.Errorf("got % x, want % x", output[:n], want)
	}
}

func TestFindInformationReturnsDeclarations(t *testing.T) {
	db, _ := testDatabase()
	s := NewServer(db)
	conn := NewConn(512, db.CCCDSlots())

	input := []byte{opFindInfoReq, 0x01, 0x00, 0x01, 0x00}
	output := make([]byte, 64)
	n := s.L2CAPInput(input, output, conn)

	want := []byte{opFindInfoResponse, 0x01, 0x01, 0x00, 0x00, 0x28}
	if !bytes.Equal(output[:n], want) {
		t.Errorf("got % x, want % x", output[:n], want)
	}
}

func TestNotifyRespectsCCCD(t *testing.T) {
	db, _ := testDatabase()
	conn := NewConn(512, db.CCCDSlots())
	s := NewServer(db)

	sink := &collectingSink{}
	sent, err := s.Notify(conn, 3, []byte("hi"), sink)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent {
		t.Fatalf("expected no notification before CCCD is enabled")
	}

	conn.SetCCCD(0, 0x0001)
	sent, err = s.Notify(conn, 3, []byte("hi"), sink)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sent {
		t.Fatalf("expected notification once CCCD notify bit is set")
	}

	want := append([]byte{opHandleValueNotification, 0x03, 0x00}, "hi"...)
	if !bytes.Equal(sink.pdus[0], want) {
		t.Errorf("got % x, want % x", sink.pdus[0], want)
	}
}

type collectingSink struct {
	pdus [][]byte
}

func (c *collectingSink) Send(pdu []byte) error {
	c.pdus = append(c.pdus, append([]byte{}, pdu...))
	return nil
}
