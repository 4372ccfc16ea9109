// Command gattserver runs a BLE peripheral from a YAML profile document,
// serving GATT requests over a real Linux L2CAP socket.
package main

import (
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/go-gatt/gattserver"
	"github.com/go-gatt/gattserver/internal/profile"
	"github.com/go-gatt/gattserver/transport/l2capsock"
)

func main() {
	profilePath := flag.String("profile", "", "path to a profile YAML document")
	localAddr := flag.String("address", "00:00:00:00:00:00", "local adapter address to bind")
	localName := flag.String("name", "gattserver", "advertised local name")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(*profilePath, *localAddr, *localName, log); err != nil {
		log.WithError(err).Fatal("gattserver: exiting")
	}
}

func run(profilePath, localAddr, localName string, log *logrus.Logger) error {
	if profilePath == "" {
		return fmt.Errorf("gattserver: -profile is required")
	}

	doc, err := profile.Load(profilePath)
	if err != nil {
		return err
	}
	services, err := profile.Build(doc)
	if err != nil {
		return err
	}

	db := gatt.BuildDatabase(services)
	server := gatt.NewServer(db)
	server.SetLogger(gatt.NewLogrusLogger(log))

	addr, err := gatt.ParseAddress(localAddr)
	if err != nil {
		return fmt.Errorf("gattserver: parse -address: %w", err)
	}

	adv := make([]byte, 31)
	advLen := gatt.BuildAdvertisingPayload(gatt.AdvertisingOptions{LocalName: localName}, adv)
	log.WithField("bytes", advLen).Debug("assembled advertising payload")

	listener, err := l2capsock.Listen(addr)
	if err != nil {
		return err
	}
	defer listener.Close()

	log.WithField("address", addr.String()).Info("gattserver: listening")

	for {
		link, err := listener.Accept()
		if err != nil {
			return err
		}

		conn := gatt.NewConn(gatt.MinATTMTU, db.CCCDSlots())
		go func() {
			if err := l2capsock.Serve(server, conn, link); err != nil {
				log.WithError(err).Debug("connection closed")
			}
		}()
	}
}
