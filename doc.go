// Package gatt implements the server (peripheral) side of the Bluetooth
// Low Energy Attribute Protocol and Generic Attribute Profile: an
// immutable, handle-addressed attribute database, a single dispatcher
// that answers ATT requests against it, and the GAP advertising and
// notification pieces a peripheral needs around it.
//
// It does not talk to a radio. Transports (transport/l2capsock for a
// real Linux L2CAP socket, transport/bluez for registering GATT services
// over BlueZ's D-Bus API) own the link and call into Server.
package gatt
