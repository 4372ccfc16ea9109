package gatt

import (
	"bytes"
	"testing"
)

func TestBuildAdvertisingPayloadFlagsOnly(t *testing.T) {
	out := make([]byte, 31)
	n := BuildAdvertisingPayload(AdvertisingOptions{}, out)
	want := []byte{0x02, 0x01, AdvertisingFlagsGeneralDiscoverable | AdvertisingFlagsBREDRNotSupported}
	if !bytes.Equal(out[:n], want) {
		t.Errorf("got % x, want % x", out[:n], want)
	}
}

func TestBuildAdvertisingPayloadWithLocalName(t *testing.T) {
	out := make([]byte, 31)
	n := BuildAdvertisingPayload(AdvertisingOptions{LocalName: "foobar"}, out)
	want := append([]byte{0x02, 0x01, 0x06}, append([]byte{0x07, 0x09}, "foobar"...)...)
	if !bytes.Equal(out[:n], want) {
		t.Errorf("got % x, want % x", out[:n], want)
	}
}

func TestBuildAdvertisingPayloadWithServiceUUID(t *testing.T) {
	out := make([]byte, 31)
	n := BuildAdvertisingPayload(AdvertisingOptions{
		LocalName:    "Heart rate",
		ServiceUUIDs: []UUID{New16BitUUID(0x180d)},
	}, out)

	want := append([]byte{0x02, 0x01, 0x06},
		append([]byte{0x03, 0x03, 0x0d, 0x18},
			append([]byte{0x0b, 0x09}, "Heart rate"...)...)...)
	if !bytes.Equal(out[:n], want) {
		t.Errorf("got % x, want % x", out[:n], want)
	}
}

func TestBuildAdvertisingPayloadTruncatesLocalName(t *testing.T) {
	out := make([]byte, 6) // room only for flags (3) + one name octet
	n := BuildAdvertisingPayload(AdvertisingOptions{LocalName: "a very long name"}, out)
	if n != 6 {
		t.Fatalf("expected the assembler to fill the remaining space, got n=%d", n)
	}
	want := []byte{0x02, 0x01, 0x06, 0x02, 0x08, 'a'}
	if !bytes.Equal(out[:n], want) {
		t.Errorf("got % x, want % x", out[:n], want)
	}
}
