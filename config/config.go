// Package config loads registry settings from TOML files or maps.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"github.com/viant/coerce"
)

// ErrNotFound is returned when settings file does not exist
var ErrNotFound = errors.New("settings file not found")

// listSeparator separates patterns given as a single string, i.e. "yyyy/MM/dd|yyyyMMdd"
const listSeparator = "|"

// Settings represents registry settings
type Settings struct {
	Zone           string   `toml:"zone,omitempty" mapstructure:"zone"`
	DatePatterns   []string `toml:"date_patterns,omitempty" mapstructure:"date_patterns"`
	NumberPatterns []string `toml:"number_patterns,omitempty" mapstructure:"number_patterns"`
}

// Load loads settings from a TOML file
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read settings file '%s': %w", path, err)
	}
	ret, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to load settings file '%s': %w", path, err)
	}
	return ret, nil
}

// Parse parses TOML settings
func Parse(text string) (*Settings, error) {
	values := make(map[string]any)
	if err := toml.Unmarshal([]byte(text), &values); err != nil {
		return nil, fmt.Errorf("failed to parse TOML settings: %w", err)
	}
	return FromMap(values)
}

// FromMap decodes settings from a map, pattern lists can be given as a single '|' separated string
func FromMap(values map[string]any) (*Settings, error) {
	ret := &Settings{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           ret,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(listSeparator),
	})
	if err != nil {
		return nil, fmt.Errorf("decoder creation failed: %w", err)
	}
	if err = decoder.Decode(values); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return ret, nil
}

// Location returns settings zone, nil when zone is not set
func (s *Settings) Location() (*time.Location, error) {
	if s.Zone == "" {
		return nil, nil
	}
	ret, err := time.LoadLocation(s.Zone)
	if err != nil {
		return nil, fmt.Errorf("invalid zone '%s': %w", s.Zone, err)
	}
	return ret, nil
}

// Options returns registry options
func (s *Settings) Options() ([]coerce.Option, error) {
	var ret []coerce.Option
	location, err := s.Location()
	if err != nil {
		return nil, err
	}
	if location != nil {
		ret = append(ret, coerce.WithLocation(location))
	}
	if len(s.DatePatterns) > 0 {
		ret = append(ret, coerce.WithDatePatterns(s.DatePatterns...))
	}
	if len(s.NumberPatterns) > 0 {
		ret = append(ret, coerce.WithNumberPatterns(s.NumberPatterns...))
	}
	return ret, nil
}

// Registry creates registry configured with settings and extra options
func (s *Settings) Registry(opts ...coerce.Option) (*coerce.Registry, error) {
	options, err := s.Options()
	if err != nil {
		return nil, err
	}
	return coerce.New(append(options, opts...)...)
}

// TOML returns settings encoded as TOML
func (s *Settings) TOML() (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return "", fmt.Errorf("failed to encode settings: %w", err)
	}
	return buf.String(), nil
}
