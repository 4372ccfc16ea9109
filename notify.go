package gatt

// NotifySink is the transport's side of notification/indication delivery:
// one PDU, already framed, ready to hand to whatever link layer owns the
// connection. A per-connection seam the caller drives, since the core
// never owns a connection list itself; connections belong to the
// transport.
type NotifySink interface {
	Send(pdu []byte) error
}

// Notify builds and sends a Handle Value Notification for the
// characteristic value at handle, if the connection has notifications
// enabled for it. It reports false, nil if the characteristic has no
// CCCD or the peer has not enabled notifications. Callers should treat
// that as a silent no-op, not an error.
func (s *Server) Notify(conn *Conn, handle uint16, value []byte, sink NotifySink) (bool, error) {
	return s.sendValueUpdate(conn, handle, value, sink, opHandleValueNotification, (*Conn).NotifyEnabled)
}

// opcode for Handle Value Indication is not in the dispatcher's demux
// table because this core never receives a confirmation in response;
// wiring a full indication/confirmation handshake is left to a future
// transport that needs it.
const opHandleValueIndication = 0x1D

// Indicate builds and sends a Handle Value Indication, following the
// same enablement rule as Notify but checking the CCCD's indicate bit.
func (s *Server) Indicate(conn *Conn, handle uint16, value []byte, sink NotifySink) (bool, error) {
	return s.sendValueUpdate(conn, handle, value, sink, opHandleValueIndication, (*Conn).IndicateEnabled)
}

func (s *Server) sendValueUpdate(conn *Conn, handle uint16, value []byte, sink NotifySink, opcode byte, enabled func(*Conn, int) bool) (bool, error) {
	slot, ok := s.db.CCCDSlotForValue(handle)
	if !ok || !enabled(conn, slot) {
		return false, nil
	}

	pdu := make([]byte, 3+len(value))
	pdu[0] = opcode
	putHandle(pdu[1:3], handle)
	copy(pdu[3:], value)

	if err := sink.Send(pdu); err != nil {
		return false, err
	}
	return true, nil
}
