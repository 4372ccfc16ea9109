package gatt

// BuildAdvertisingPayload assembles GAP advertising data: a sequence of
// length-tagged AD structures, Flags first, then one Complete Service
// UUID list structure per service UUID (0x03 for 16-bit, 0x07 for
// 128-bit), then the Local Name, truncated to Shortened form
// if it does not fit. It writes as many complete AD structures as fit in
// out and returns the number of octets written; anything that would
// overflow out is simply omitted.
func BuildAdvertisingPayload(opts AdvertisingOptions, out []byte) int {
	pos := 0

	flags := opts.Flags
	if flags == 0 {
		flags = AdvertisingFlagsGeneralDiscoverable | AdvertisingFlagsBREDRNotSupported
	}
	if pos+3 <= len(out) {
		out[pos] = 2
		out[pos+1] = 0x01
		out[pos+2] = flags
		pos += 3
	}

	for _, uuid := range opts.ServiceUUIDs {
		if uuid.Is16Bit() {
			if pos+4 > len(out) {
				continue
			}
			out[pos] = 3
			out[pos+1] = 0x03 // complete list of 16-bit service UUIDs
			putHandle(out[pos+2:pos+4], uuid.Get16Bit())
			pos += 4
			continue
		}

		if pos+18 > len(out) {
			continue
		}
		out[pos] = 17
		out[pos+1] = 0x07 // complete list of 128-bit service UUIDs
		b := uuid.Bytes()
		copy(out[pos+2:pos+18], b[:])
		pos += 18
	}

	if opts.LocalName != "" {
		remaining := len(out) - pos - 2
		if remaining > 0 {
			name := []byte(opts.LocalName)
			tag := byte(0x09) // complete local name
			if len(name) > remaining {
				name = name[:remaining]
				tag = 0x08 // shortened local name
			}
			out[pos] = byte(1 + len(name))
			out[pos+1] = tag
			copy(out[pos+2:pos+2+len(name)], name)
			pos += 2 + len(name)
		}
	}

	return pos
}

// AdvertisingOptions configures BuildAdvertisingPayload.
type AdvertisingOptions struct {
	LocalName    string
	ServiceUUIDs []UUID

	// Flags overrides the default discoverable/BR-EDR-not-supported flag
	// octet. Zero selects the default.
	Flags byte
}

const (
	AdvertisingFlagsLimitedDiscoverable byte = 1 << 0
	AdvertisingFlagsGeneralDiscoverable byte = 1 << 1
	AdvertisingFlagsBREDRNotSupported   byte = 1 << 2
)
