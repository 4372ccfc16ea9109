package gatt

// Handlers in this file answer the value-access requests: Read By Type,
// Read/Read Blob, and Write. Each works through the Attribute interface
// rather than switching on a fixed set of concrete attribute kinds, and
// writes into a caller-supplied output slice.

// handleReadByType builds a Read By Type Response. An attribute is
// included iff its access succeeds without truncation, its value width
// matches the first included value's width, and the (handle, value)
// tuple still fits the response.
func (s *Server) handleReadByType(input, output []byte, conn *Conn) int {
	if len(input) != 7 && len(input) != 21 {
		return writeErrorResponse(output, opReadByTypeReq, 0, ErrInvalidPDU)
	}

	start := getHandle(input[1:3])
	end := getHandle(input[3:5])
	typ := getUUID(input[5:])
	if code, ok := s.checkRange(start, end); !ok {
		return writeErrorResponse(output, opReadByTypeReq, start, code)
	}
	end = s.clampEnd(end)

	if len(output) < 2 {
		return writeErrorResponse(output, opReadByTypeReq, 0, ErrInvalidPDU)
	}
	output[0] = opReadByTypeResponse
	length := byte(0)
	pos := 2

	var scratch [512]byte
	for h := start; h <= end; h++ {
		attr, ok := s.db.At(h)
		if !ok || attr.UUID() != typ {
			if h == ^uint16(0) {
				break
			}
			continue
		}

		n, result := attr.ReadValue(conn, scratch[:], 0)
		if result != AccessSuccess {
			if h == ^uint16(0) {
				break
			}
			continue
		}
		entryLen := 2 + n

		if length == 0 {
			length = byte(entryLen)
		} else if length != byte(entryLen) {
			if h == ^uint16(0) {
				break
			}
			continue
		}
		if pos+entryLen > len(output) {
			break
		}

		putHandle(output[pos:pos+2], h)
		copy(output[pos+2:pos+entryLen], scratch[:n])
		pos += entryLen

		if h == ^uint16(0) {
			break
		}
	}

	if pos <= 2 {
		return writeErrorResponse(output, opReadByTypeReq, start, ErrAttributeNotFound)
	}
	output[1] = length
	return pos
}

// handleRead implements both Read Request and Read Blob Request (spec
// §4.8); blob selects the 2-byte-offset form.
func (s *Server) handleRead(input, output []byte, conn *Conn, blob bool) int {
	reqOpcode := byte(opReadReq)
	respOpcode := byte(opReadResponse)
	wantLen := 3
	if blob {
		reqOpcode = opReadBlobReq
		respOpcode = opReadBlobResponse
		wantLen = 5
	}

	if len(input) != wantLen {
		return writeErrorResponse(output, reqOpcode, 0, ErrInvalidPDU)
	}

	handle := getHandle(input[1:3])
	offset := 0
	if blob {
		offset = int(getHandle(input[3:5]))
	}

	if handle == 0 {
		return writeErrorResponse(output, reqOpcode, handle, ErrInvalidHandle)
	}
	attr, ok := s.db.At(handle)
	if !ok {
		return writeErrorResponse(output, reqOpcode, handle, ErrAttributeNotFound)
	}
	if len(output) < 1 {
		return writeErrorResponse(output, reqOpcode, 0, ErrInvalidPDU)
	}

	n, result := attr.ReadValue(conn, output[1:], offset)
	switch result {
	case AccessSuccess, AccessReadTruncated:
		output[0] = respOpcode
		return 1 + n
	case AccessInvalidOffset:
		return writeErrorResponse(output, reqOpcode, handle, ErrInvalidOffset)
	default:
		return writeErrorResponse(output, reqOpcode, handle, ErrReadNotPermitted)
	}
}

// handleWrite answers a Write Request.
func (s *Server) handleWrite(input, output []byte, conn *Conn) int {
	if len(input) < 3 {
		return writeErrorResponse(output, opWriteReq, 0, ErrInvalidPDU)
	}

	handle := getHandle(input[1:3])
	value := input[3:]

	attr, ok := s.db.At(handle)
	if !ok {
		return writeErrorResponse(output, opWriteReq, handle, ErrAttributeNotFound)
	}

	switch attr.WriteValue(conn, value) {
	case AccessSuccess:
		if len(output) < 1 {
			return writeErrorResponse(output, opWriteReq, 0, ErrInvalidPDU)
		}
		output[0] = opWriteResponse
		return 1
	case AccessWriteOverflow:
		return writeErrorResponse(output, opWriteReq, handle, ErrInvalidAttributeValueLength)
	default:
		return writeErrorResponse(output, opWriteReq, handle, ErrWriteNotPermitted)
	}
}
