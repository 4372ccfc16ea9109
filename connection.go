package gatt

// Conn is the per-link connection state: MTU negotiation and the Client
// Characteristic Configuration bitmap. It is created by the transport
// when a link forms and discarded when it drops; the core never retains
// a pointer into it across calls to Server.L2CAPInput. There is no
// central-role discovery cache here (services, characteristics,
// responded, errored...) since that state belongs to the client side of
// a connection, not a server.
type Conn struct {
	serverMTU uint16
	clientMTU uint16
	cccd      []uint16
}

// MinATTMTU is the default, minimum ATT_MTU before any Exchange MTU
// Request has been processed.
const MinATTMTU = 23

// NewConn creates connection state for a newly formed link. serverMTU must
// be at least MinATTMTU. cccdSlots is the number of notify/indicate
// capable characteristics in the Database (Database.CCCDSlots).
func NewConn(serverMTU uint16, cccdSlots int) *Conn {
	if serverMTU < MinATTMTU {
		serverMTU = MinATTMTU
	}
	return &Conn{
		serverMTU: serverMTU,
		clientMTU: MinATTMTU,
		cccd:      make([]uint16, cccdSlots),
	}
}

// ServerMTU returns the MTU fixed at construction.
func (c *Conn) ServerMTU() uint16 { return c.serverMTU }

// ClientMTU returns the MTU most recently reported by Exchange MTU
// Request, or MinATTMTU if none has been processed yet.
func (c *Conn) ClientMTU() uint16 { return c.clientMTU }

// NegotiatedMTU is min(server_mtu, client_mtu); it caps every response
// this connection's requests can produce.
func (c *Conn) NegotiatedMTU() uint16 {
	if c.serverMTU < c.clientMTU {
		return c.serverMTU
	}
	return c.clientMTU
}

func (c *Conn) setClientMTU(mtu uint16) { c.clientMTU = mtu }

// CCCD returns the current value of the Client Characteristic
// Configuration slot for a notify/indicate-capable characteristic. slot
// indices are assigned at database-build time (Database.CCCDSlots).
func (c *Conn) CCCD(slot int) uint16 {
	if slot < 0 || slot >= len(c.cccd) {
		return 0
	}
	return c.cccd[slot]
}

// SetCCCD updates a CCCD slot.
func (c *Conn) SetCCCD(slot int, value uint16) {
	if slot < 0 || slot >= len(c.cccd) {
		return
	}
	c.cccd[slot] = value
}

// NotifyEnabled reports whether the notification bit of a CCCD slot is
// set for this connection.
func (c *Conn) NotifyEnabled(slot int) bool {
	return c.CCCD(slot)&0x0001 != 0
}

// IndicateEnabled reports whether the indication bit of a CCCD slot is
// set for this connection.
func (c *Conn) IndicateEnabled(slot int) bool {
	return c.CCCD(slot)&0x0002 != 0
}
