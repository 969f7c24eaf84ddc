// SPDX-License-Identifier: MIT

package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for a file extension other than .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("catalog: unsupported file format")

	// ErrUnknownField is returned when a file carries keys the schema does not know.
	ErrUnknownField = errors.New("catalog: unknown field")

	// ErrInvalid wraps validation failures of a decoded file.
	ErrInvalid = errors.New("catalog: invalid")
)

// Format is an on-disk encoding.
type Format int

const (
	FormatTOML Format = iota + 1
	FormatYAML
)

// validate is the shared validator instance.
var validate = validator.New()

// FormatOf picks the format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// Load reads and validates the catalog at path.
func Load(path string) (*Catalog, error) {
	var c Catalog
	if err := loadFile(path, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

// LoadReadings reads and validates the readings at path.
func LoadReadings(path string) (*Readings, error) {
	var r Readings
	if err := loadFile(path, &r); err != nil {
		return nil, err
	}

	return &r, nil
}

// ParseCatalog decodes and validates a catalog held in memory.
func ParseCatalog(data []byte, f Format) (*Catalog, error) {
	var c Catalog
	if err := decode(data, f, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

// ParseReadings decodes and validates readings held in memory.
func ParseReadings(data []byte, f Format) (*Readings, error) {
	var r Readings
	if err := decode(data, f, &r); err != nil {
		return nil, err
	}

	return &r, nil
}

func loadFile(path string, v any) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := decode(data, f, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// decode unmarshals data in format f into v and validates the result.
func decode(data []byte, f Format, v any) error {
	switch f {
	case FormatTOML:
		meta, err := toml.Decode(string(data), v)
		if err != nil {
			return fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)

			return fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			if unknownFieldsOnly(data, v, err) {
				return fmt.Errorf("%w: %v", ErrUnknownField, err)
			}

			return fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return fmt.Errorf("format %d: %w", f, ErrUnsupportedFormat)
	}

	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// unknownFieldsOnly reports whether err is a yaml type error caused solely by
// keys the schema does not know: the same document must decode cleanly into a
// fresh value of v's type once unknown keys are tolerated.
func unknownFieldsOnly(data []byte, v any, err error) bool {
	var te *yaml.TypeError
	if !errors.As(err, &te) || len(te.Errors) == 0 {
		return false
	}
	fresh := reflect.New(reflect.TypeOf(v).Elem()).Interface()

	return yaml.Unmarshal(data, fresh) == nil
}
