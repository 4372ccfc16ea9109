package gatt

// Server is the ATT request dispatcher: it owns an immutable Database and
// answers PDUs delivered by a transport through L2CAPInput. Grounded on
// the opcode switch in att.handleData (att_hci.go), rewritten from
// "mutate a fixed [64]byte and hand it to an HCI ACL channel" into
// "write into a caller-supplied buffer and return a length" per spec
// §4.2/§6: the transport, not an internal HCI link, owns delivery.
type Server struct {
	db  *Database
	log Logger
}

// NewServer returns a Server over db. db must not be mutated afterwards.
func NewServer(db *Database) *Server {
	return &Server{db: db, log: nopLogger{}}
}

// SetLogger installs a structured logger for debug-level diagnostics. The
// zero value logs nothing.
func (s *Server) SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	s.log = l
}

// Database returns the server's attribute database.
func (s *Server) Database() *Database { return s.db }

// L2CAPInput is the dispatcher entry point. input is the raw
// request PDU; output is the caller-owned response buffer, whose initial
// length is out_size_io. L2CAPInput clamps the effective response length
// to conn's negotiated MTU before running any handler, and returns the
// number of octets actually written, or 0 if even an Error Response could
// not be framed, in which case the transport must drop the exchange.
func (s *Server) L2CAPInput(input []byte, output []byte, conn *Conn) int {
	if len(input) == 0 {
		return 0
	}

	if mtu := int(conn.NegotiatedMTU()); len(output) > mtu {
		output = output[:mtu]
	}

	opcode := input[0]
	s.log.Debugf("l2cap_input: opcode=0x%02x in_size=%d out_size=%d", opcode, len(input), len(output))

	switch opcode {
	case opExchangeMTUReq:
		return s.handleExchangeMTU(input, output, conn)
	case opFindInfoReq:
		return s.handleFindInformation(input, output, conn)
	case opFindByTypeValueReq:
		return s.handleFindByTypeValue(input, output, conn)
	case opReadByTypeReq:
		return s.handleReadByType(input, output, conn)
	case opReadReq:
		return s.handleRead(input, output, conn, false)
	case opReadBlobReq:
		return s.handleRead(input, output, conn, true)
	case opReadByGroupTypeReq:
		return s.handleReadByGroupType(input, output, conn)
	case opWriteReq:
		return s.handleWrite(input, output, conn)
	default:
		return writeErrorResponse(output, opcode, 0, ErrRequestNotSupported)
	}
}

// handleExchangeMTU negotiates the ATT MTU for the connection.
func (s *Server) handleExchangeMTU(input, output []byte, conn *Conn) int {
	if len(input) != 3 {
		return writeErrorResponse(output, opExchangeMTUReq, 0, ErrInvalidPDU)
	}
	mtu := getHandle(input[1:3])
	if mtu < MinATTMTU {
		return writeErrorResponse(output, opExchangeMTUReq, 0, ErrInvalidPDU)
	}

	conn.setClientMTU(mtu)

	if len(output) < 3 {
		return writeErrorResponse(output, opExchangeMTUReq, 0, ErrInvalidPDU)
	}
	output[0] = opExchangeMTUResponse
	putHandle(output[1:3], conn.ServerMTU())
	return 3
}

// checkRange implements the shared range-validation rule:
// invalid_handle if start is 0 or start > end; attribute_not_found if
// start exceeds N. Callers clamp end to N themselves once ok is true, so
// they can enumerate [start, end] directly.
func (s *Server) checkRange(start, end uint16) (code AttError, ok bool) {
	if start == 0 || start > end {
		return ErrInvalidHandle, false
	}
	if int(start) > s.db.Count() {
		return ErrAttributeNotFound, false
	}
	return 0, true
}

// clampEnd narrows end to N, the last valid handle in the database.
func (s *Server) clampEnd(end uint16) uint16 {
	if n := uint16(s.db.Count()); end > n {
		return n
	}
	return end
}
