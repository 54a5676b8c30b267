package templates

import (
	"errors"
	"fmt"
	"go/token"

	"gopkg.in/yaml.v3"
)

// Schema describes the stores to generate accessors for.
type Schema struct {
	Package string  `yaml:"package"`
	Stores  []Store `yaml:"stores"`
}

type Store struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`
}

type Field struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Default any    `yaml:"default"`
}

var (
	ErrNoStores       = errors.New("schema has no stores")
	ErrInvalidName    = errors.New("invalid name")
	ErrDuplicateName  = errors.New("duplicate name")
	ErrMissingType    = errors.New("field has no type")
	ErrInvalidDefault = errors.New("default must be a scalar")
)

// LoadSchema parses and validates a YAML schema.
func LoadSchema(b []byte) (*Schema, error) {
	s := &Schema{}
	if err := yaml.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Schema) Validate() error {
	if len(s.Stores) == 0 {
		return ErrNoStores
	}
	if s.Package != "" && !token.IsIdentifier(s.Package) {
		return fmt.Errorf("package %q: %w", s.Package, ErrInvalidName)
	}

	stores := map[string]bool{}
	for _, store := range s.Stores {
		if !token.IsIdentifier(store.GoName()) {
			return fmt.Errorf("store %q: %w", store.Name, ErrInvalidName)
		}
		if stores[store.GoName()] {
			return fmt.Errorf("store %q: %w", store.Name, ErrDuplicateName)
		}
		stores[store.GoName()] = true

		fields := map[string]bool{}
		for _, f := range store.Fields {
			if !token.IsIdentifier(f.GoName()) {
				return fmt.Errorf("%s.%s: %w", store.Name, f.Name, ErrInvalidName)
			}
			if fields[f.GoName()] {
				return fmt.Errorf("%s.%s: %w", store.Name, f.Name, ErrDuplicateName)
			}
			fields[f.GoName()] = true
			if f.Type == "" {
				return fmt.Errorf("%s.%s: %w", store.Name, f.Name, ErrMissingType)
			}
			switch f.Default.(type) {
			case nil, string, int, float64, bool:
			default:
				return fmt.Errorf("%s.%s: %w", store.Name, f.Name, ErrInvalidDefault)
			}
		}
	}
	return nil
}

func (s Store) GoName() string {
	return exported(s.Name)
}

func (f Field) GoName() string {
	return exported(f.Name)
}

// HasDefault reports whether the field is seeded in the store's raw map.
func (f Field) HasDefault() bool {
	return f.Default != nil
}

// DefaultLiteral is the default as a Go expression of the field's type.
func (f Field) DefaultLiteral() string {
	return fmt.Sprintf("%s(%#v)", f.Type, f.Default)
}
