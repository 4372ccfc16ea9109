// Package bluez registers a gatt.Database with BlueZ over D-Bus, so a
// gattserver process can act as a real Linux BLE peripheral without
// touching HCI directly. It registers every service and characteristic a
// gatt.Database holds, since BlueZ, not this core, owns the actual ATT
// server on Linux. CCCD descriptors are not registered, and no
// notify/indicate wiring is set up for the registered characteristics.
package bluez

import (
	"context"
	"fmt"

	"github.com/muka/go-bluetooth/api"
	gattsvc "github.com/muka/go-bluetooth/api/service"
	"github.com/muka/go-bluetooth/bluez"
	"github.com/muka/go-bluetooth/bluez/profile/adapter"
	"github.com/sirupsen/logrus"

	"github.com/go-gatt/gattserver"
)

// Adapter wraps a local BlueZ adapter and the GATT application registered
// against it.
type Adapter struct {
	adapter *adapter.Adapter1
	id      string
	app     *gattsvc.App

	ctx    context.Context
	cancel context.CancelFunc

	stateChangeHandler func(poweredOn bool)
	log                *logrus.Entry
}

// DefaultAdapter opens the first BlueZ adapter available on the system.
func DefaultAdapter(log *logrus.Logger) (*Adapter, error) {
	raw, err := api.GetDefaultAdapter()
	if err != nil {
		return nil, fmt.Errorf("bluez: get default adapter: %w", err)
	}
	id, err := raw.GetAdapterID()
	if err != nil {
		return nil, fmt.Errorf("bluez: get adapter id: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	a := &Adapter{
		adapter:            raw,
		id:                 id,
		ctx:                ctx,
		cancel:             cancel,
		stateChangeHandler: func(bool) {},
		log:                log.WithField("component", "bluez"),
	}
	if err := a.watchForStateChange(); err != nil {
		cancel()
		return nil, err
	}
	return a, nil
}

// Address returns the adapter's own Bluetooth address.
func (a *Adapter) Address() (gatt.Address, error) {
	return gatt.ParseAddress(a.adapter.Properties.Address)
}

// SetPowered turns the local radio on or off.
func (a *Adapter) SetPowered(on bool) error {
	return a.adapter.SetPowered(on)
}

// SetStateChangeHandler installs a callback invoked whenever the
// adapter's Powered property changes.
func (a *Adapter) SetStateChangeHandler(f func(poweredOn bool)) {
	a.stateChangeHandler = f
}

func (a *Adapter) watchForStateChange() error {
	var changes chan *bluez.PropertyChanged
	changes, err := a.adapter.WatchProperties()
	if err != nil {
		return fmt.Errorf("bluez: watch properties: %w", err)
	}

	go func() {
		for {
			select {
			case changed := <-changes:
				if changed == nil {
					return
				}
				if changed.Name == "Powered" {
					a.stateChangeHandler(changed.Value.(bool))
				}
			case <-a.ctx.Done():
				return
			}
		}
	}()
	return nil
}

// RegisterDatabase walks db and registers one BlueZ GATT service per
// Primary Service Declaration and one characteristic per Characteristic
// Declaration. Reads and writes against each BlueZ characteristic are
// dispatched back through the attribute access contract, so a BlueZ
// client and an L2CAP client exercise the exact same read/write
// semantics against conn and db.
func (a *Adapter) RegisterDatabase(db *gatt.Database, conn *gatt.Conn) error {
	app, err := gattsvc.NewApp(gattsvc.AppOptions{AdapterID: a.id})
	if err != nil {
		return fmt.Errorf("bluez: new app: %w", err)
	}
	a.app = app

	for handle := uint16(1); int(handle) <= db.Count(); handle++ {
		attr, ok := db.At(handle)
		if !ok || attr.UUID() != gatt.New16BitUUID(0x2800) {
			continue
		}
		end, ok := db.ServiceEndHandle(handle)
		if !ok {
			continue
		}

		svcUUID := attributeValueUUID(attr, conn)
		svc, err := app.NewService(svcUUID.String())
		if err != nil {
			return fmt.Errorf("bluez: new service %s: %w", svcUUID, err)
		}
		if err := app.AddService(svc); err != nil {
			return fmt.Errorf("bluez: add service %s: %w", svcUUID, err)
		}

		if err := registerCharacteristics(svc, db, conn, handle+1, end); err != nil {
			return err
		}
	}

	return app.Run()
}

func registerCharacteristics(svc *gattsvc.Service, db *gatt.Database, conn *gatt.Conn, start, end uint16) error {
	for h := start; h <= end; h++ {
		attr, ok := db.At(h)
		if !ok || attr.UUID() != gatt.New16BitUUID(0x2803) {
			continue
		}
		valueHandle := h + 1

		valueAttr, ok := db.At(valueHandle)
		if !ok {
			continue
		}
		chUUID := valueAttr.UUID()
		if chUUID.Is128BitSentinel() {
			// The real 128-bit UUID follows properties(1) + value handle(2)
			// in the Characteristic Declaration's value.
			var decl [19]byte
			if n, _ := attr.ReadValue(conn, decl[:], 0); n == len(decl) {
				var full [16]byte
				copy(full[:], decl[3:])
				chUUID = gatt.NewUUID(full)
			}
		}

		ch, err := svc.NewChar(chUUID.String())
		if err != nil {
			return fmt.Errorf("bluez: new characteristic %s: %w", chUUID, err)
		}

		ch.OnRead(func(c *gattsvc.Char, opts map[string]interface{}) ([]byte, error) {
			buf := make([]byte, conn.NegotiatedMTU())
			n, _ := valueAttr.ReadValue(conn, buf, 0)
			return buf[:n], nil
		})
		ch.OnWrite(func(c *gattsvc.Char, value []byte) ([]byte, error) {
			valueAttr.WriteValue(conn, value)
			return value, nil
		})

		if err := svc.AddChar(ch); err != nil {
			return fmt.Errorf("bluez: add characteristic %s: %w", chUUID, err)
		}
	}
	return nil
}

// attributeValueUUID decodes a Primary Service Declaration's value (a
// bare 16- or 128-bit UUID) back into a gatt.UUID.
func attributeValueUUID(attr gatt.Attribute, conn *gatt.Conn) gatt.UUID {
	var buf [16]byte
	n, _ := attr.ReadValue(conn, buf[:], 0)
	if n == 2 {
		return gatt.New16BitUUID(uint16(buf[0]) | uint16(buf[1])<<8)
	}
	var full [16]byte
	copy(full[:], buf[:n])
	return gatt.NewUUID(full)
}

// Close stops watching for adapter property changes.
func (a *Adapter) Close() {
	a.cancel()
}
