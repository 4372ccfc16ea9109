package gatt

// This file is the application-facing configuration surface: the set of
// options an application uses to declare its services and
// characteristics before the database is built once, at start-up
// (database.go does the building).

// CharacteristicPermissions is a bitmask of what a client is allowed to do
// to a characteristic value, plus whether it carries a CCCD.
type CharacteristicPermissions uint8

const (
	CharacteristicReadPermission CharacteristicPermissions = 1 << iota
	CharacteristicWritePermission
	CharacteristicNotifyPermission
	CharacteristicIndicatePermission
)

func (p CharacteristicPermissions) Read() bool     { return p&CharacteristicReadPermission != 0 }
func (p CharacteristicPermissions) Write() bool     { return p&CharacteristicWritePermission != 0 }
func (p CharacteristicPermissions) Notify() bool    { return p&CharacteristicNotifyPermission != 0 }
func (p CharacteristicPermissions) Indicate() bool  { return p&CharacteristicIndicatePermission != 0 }

// wireProperties packs the permission bits into the Characteristic
// Declaration "properties" octet.
func (p CharacteristicPermissions) wireProperties() byte {
	var props byte
	if p.Read() {
		props |= 0x02
	}
	if p.Write() {
		props |= 0x08
	}
	if p.Notify() {
		props |= 0x10
	}
	if p.Indicate() {
		props |= 0x20
	}
	return props
}

// CharacteristicConfig declares one characteristic within a ServiceConfig.
// The zero value grants both read and write access; apply NoReadAccess
// and/or NoWriteAccess to narrow it, and Notify/Indicate to add a CCCD.
type CharacteristicConfig struct {
	// UUID is the characteristic's type UUID (16- or 128-bit).
	UUID UUID

	// Value binds the characteristic's backing storage. The slice's
	// current length is the value's initial length; its capacity is the
	// value's maximum length. A Write that would grow the value past
	// cap(*Value) fails with AccessWriteOverflow. The pointer lets
	// application code read or update the value outside of ATT requests,
	// while the core only ever dereferences it under the attribute
	// access contract.
	Value *[]byte

	NoReadAccess  bool
	NoWriteAccess bool
	Notify        bool
	Indicate      bool
}

func (c CharacteristicConfig) permissions() CharacteristicPermissions {
	perms := CharacteristicPermissions(0)
	if !c.NoReadAccess {
		perms |= CharacteristicReadPermission
	}
	if !c.NoWriteAccess {
		perms |= CharacteristicWritePermission
	}
	if c.Notify {
		perms |= CharacteristicNotifyPermission
	}
	if c.Indicate {
		perms |= CharacteristicIndicatePermission
	}
	return perms
}

// ServiceConfig declares one primary service: its UUID and the
// characteristics it contains, in the order they will appear on the wire.
type ServiceConfig struct {
	UUID            UUID
	Characteristics []CharacteristicConfig
}
