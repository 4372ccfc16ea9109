package gatt

// Handlers in this file answer the three discovery requests: Find
// Information, Find By Type Value and Read By Group Type. Each scans the
// Database by handle and writes into a caller-supplied output slice
// sized by the negotiated MTU.

// attributeUUID returns the UUID that should appear on the wire for the
// attribute at handle, recovering a 128-bit Characteristic Value's real
// UUID from the preceding Characteristic Declaration when needed: a
// Value Declaration carrying sentinel128BitUUID always immediately
// follows its Characteristic Declaration, whose encoded bytes carry
// properties(1) + value handle(2) + UUID.
func attributeUUID(db *Database, handle uint16) UUID {
	attr, ok := db.At(handle)
	if !ok {
		return UUID{}
	}
	uuid := attr.UUID()
	if !uuid.Is128BitSentinel() {
		return uuid
	}

	decl, ok := db.At(handle - 1)
	if !ok {
		return uuid
	}
	var buf [19]byte
	n, result := decl.ReadValue(nil, buf[:], 0)
	if result != AccessSuccess && result != AccessReadTruncated {
		return uuid
	}
	if n < 3+16 {
		return uuid
	}
	return getUUID(buf[3:n])
}

// handleFindInformation answers a Find Information Request.
func (s *Server) handleFindInformation(input, output []byte, conn *Conn) int {
	if len(input) != 5 {
		return writeErrorResponse(output, opFindInfoReq, 0, ErrInvalidPDU)
	}

	start := getHandle(input[1:3])
	end := getHandle(input[3:5])
	if code, ok := s.checkRange(start, end); !ok {
		return writeErrorResponse(output, opFindInfoReq, start, code)
	}
	end = s.clampEnd(end)

	if len(output) < 2 {
		return writeErrorResponse(output, opFindInfoReq, 0, ErrInvalidPDU)
	}
	output[0] = opFindInfoResponse
	format := byte(0)
	pos := 2

	for h := start; h <= end; h++ {
		uuid := attributeUUID(s.db, h)
		width := uuidWireSize(uuid)
		entryLen := 2 + width
		wantFormat := byte(1)
		if width == 16 {
			wantFormat = 2
		}

		if format == 0 {
			format = wantFormat
		} else if format != wantFormat {
			if h == ^uint16(0) {
				break
			}
			continue
		}
		if pos+entryLen > len(output) {
			break
		}

		putHandle(output[pos:pos+2], h)
		putUUID(output[pos+2:pos+entryLen], uuid)
		pos += entryLen

		if h == ^uint16(0) {
			break
		}
	}

	if pos <= 2 {
		return writeErrorResponse(output, opFindInfoReq, start, ErrAttributeNotFound)
	}
	output[1] = format
	return pos
}

// handleFindByTypeValue locates Primary Service Declarations within
// [start, end] whose type UUID and value both match, returning the list
// of matching services' handle ranges. Built directly from the
// attribute access contract, using Attribute.CompareValue.
func (s *Server) handleFindByTypeValue(input, output []byte, conn *Conn) int {
	if len(input) < 7 {
		return writeErrorResponse(output, opFindByTypeValueReq, 0, ErrInvalidPDU)
	}

	start := getHandle(input[1:3])
	end := getHandle(input[3:5])
	typ := getUUID(input[5:7])
	value := input[7:]

	if code, ok := s.checkRange(start, end); !ok {
		return writeErrorResponse(output, opFindByTypeValueReq, start, code)
	}
	end = s.clampEnd(end)

	if typ != New16BitUUID(uuidPrimaryService) {
		return writeErrorResponse(output, opFindByTypeValueReq, start, ErrUnsupportedGroupType)
	}

	if len(output) < 1 {
		return writeErrorResponse(output, opFindByTypeValueReq, 0, ErrInvalidPDU)
	}
	output[0] = opFindByTypeValueResponse
	pos := 1

	for h := start; h <= end; h++ {
		attr, ok := s.db.At(h)
		if !ok || attr.UUID() != typ {
			if h == ^uint16(0) {
				break
			}
			continue
		}
		if attr.CompareValue(conn, value) != AccessValueEqual {
			if h == ^uint16(0) {
				break
			}
			continue
		}

		groupEnd, ok := s.db.ServiceEndHandle(h)
		if !ok {
			groupEnd = h
		}
		if pos+4 > len(output) {
			break
		}
		putHandle(output[pos:pos+2], h)
		putHandle(output[pos+2:pos+4], groupEnd)
		pos += 4

		if h == ^uint16(0) {
			break
		}
	}

	if pos <= 1 {
		return writeErrorResponse(output, opFindByTypeValueReq, start, ErrAttributeNotFound)
	}
	return pos
}

// handleReadByGroupType answers a Read By Group Type Request, restricted
// to the Primary Service grouping type (0x2800): the only attribute kind
// with service-wide scope in this database.
func (s *Server) handleReadByGroupType(input, output []byte, conn *Conn) int {
	if len(input) != 7 && len(input) != 21 {
		return writeErrorResponse(output, opReadByGroupTypeReq, 0, ErrInvalidPDU)
	}

	start := getHandle(input[1:3])
	end := getHandle(input[3:5])
	typ := getUUID(input[5:])

	if code, ok := s.checkRange(start, end); !ok {
		return writeErrorResponse(output, opReadByGroupTypeReq, start, code)
	}
	end = s.clampEnd(end)

	if typ != New16BitUUID(uuidPrimaryService) {
		return writeErrorResponse(output, opReadByGroupTypeReq, start, ErrUnsupportedGroupType)
	}

	if len(output) < 2 {
		return writeErrorResponse(output, opReadByGroupTypeReq, 0, ErrInvalidPDU)
	}
	output[0] = opReadByGroupTypeResponse
	length := byte(0)
	pos := 2

	for h := start; h <= end; h++ {
		attr, ok := s.db.At(h)
		if !ok || attr.UUID() != typ {
			if h == ^uint16(0) {
				break
			}
			continue
		}
		groupEnd, ok := s.db.ServiceEndHandle(h)
		if !ok {
			if h == ^uint16(0) {
				break
			}
			continue
		}

		var value [16]byte
		n, result := attr.ReadValue(conn, value[:], 0)
		if result != AccessSuccess {
			if h == ^uint16(0) {
				break
			}
			continue
		}
		entryLen := 4 + n

		if length == 0 {
			length = byte(entryLen)
		} else if length != byte(entryLen) {
			break
		}
		if pos+entryLen > len(output) {
			break
		}

		putHandle(output[pos:pos+2], h)
		putHandle(output[pos+2:pos+4], groupEnd)
		copy(output[pos+4:pos+entryLen], value[:n])
		pos += entryLen

		if h == ^uint16(0) {
			break
		}
	}

	if pos <= 2 {
		return writeErrorResponse(output, opReadByGroupTypeReq, start, ErrAttributeNotFound)
	}
	output[1] = length
	return pos
}
