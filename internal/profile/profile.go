// Package profile loads a gatt service/characteristic layout from YAML,
// so a deployment can declare its GATT profile as data instead of Go
// struct literals, using gopkg.in/yaml.v2 for decoding.
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/go-gatt/gattserver"
)

// Document is the top-level shape of a profile YAML file.
type Document struct {
	Services []ServiceDocument `yaml:"services"`
}

// ServiceDocument declares one primary service.
type ServiceDocument struct {
	UUID            string                   `yaml:"uuid"`
	Characteristics []CharacteristicDocument `yaml:"characteristics"`
}

// CharacteristicDocument declares one characteristic. InitialValue is
// hex-encoded; Size reserves write capacity beyond it (Size bytes total,
// zero-padded) when larger than len(InitialValue).
type CharacteristicDocument struct {
	UUID         string `yaml:"uuid"`
	InitialValue string `yaml:"initial_value"`
	Size         int    `yaml:"size"`
	Read         bool   `yaml:"read"`
	Write        bool   `yaml:"write"`
	Notify       bool   `yaml:"notify"`
	Indicate     bool   `yaml:"indicate"`
}

// Load parses a profile document from path.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: read %s: %w", path, err)
	}

	var doc Document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("profile: parse %s: %w", path, err)
	}
	return &doc, nil
}

// Build converts a parsed Document into ServiceConfig values ready for
// gatt.BuildDatabase. The []byte slices backing each CharacteristicConfig
// are owned by the returned configs; a characteristic's storage is
// reachable through the Value field of its returned CharacteristicConfig.
func Build(doc *Document) ([]gatt.ServiceConfig, error) {
	services := make([]gatt.ServiceConfig, 0, len(doc.Services))

	for _, sd := range doc.Services {
		uuid, err := gatt.ParseUUID(sd.UUID)
		if err != nil {
			return nil, fmt.Errorf("profile: service uuid %q: %w", sd.UUID, err)
		}

		chars := make([]gatt.CharacteristicConfig, 0, len(sd.Characteristics))
		for _, cd := range sd.Characteristics {
			chUUID, err := gatt.ParseUUID(cd.UUID)
			if err != nil {
				return nil, fmt.Errorf("profile: characteristic uuid %q: %w", cd.UUID, err)
			}

			value, err := decodeHex(cd.InitialValue)
			if err != nil {
				return nil, fmt.Errorf("profile: characteristic %s initial_value: %w", cd.UUID, err)
			}
			if cd.Size > len(value) {
				grown := make([]byte, len(value), cd.Size)
				copy(grown, value)
				value = grown
			}

			chars = append(chars, gatt.CharacteristicConfig{
				UUID:          chUUID,
				Value:         &value,
				NoReadAccess:  !cd.Read,
				NoWriteAccess: !cd.Write,
				Notify:        cd.Notify,
				Indicate:      cd.Indicate,
			})
		}

		services = append(services, gatt.ServiceConfig{UUID: uuid, Characteristics: chars})
	}

	return services, nil
}

func decodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("odd-length hex string %q", s)
	}
	out := make([]byte, len(s)/2)
	for i := range out {
		hi, err := hexNibble(s[i*2])
		if err != nil {
			return nil, err
		}
		lo, err := hexNibble(s[i*2+1])
		if err != nil {
			return nil, err
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

func hexNibble(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 0xA, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 0xA, nil
	default:
		return 0, fmt.Errorf("invalid hex digit %q", c)
	}
}
