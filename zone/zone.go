// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zone contains a catalogue of named timezones with fixed offsets
// from UTC.
//
// Zones are identified by their full name, e.g. "Central European Summer
// Time", or by their abbreviation, e.g. "CEST". Abbreviations are not unique:
// "IST" is used for Indian, Irish and Israel Standard Time. Looking up an
// ambiguous abbreviation returns an [*AmbiguousError] listing the candidates.
//
// Offsets are given in fractional hours. Every offset in the catalogue is a
// multiple of a quarter hour and lies within [-12, +14].
package zone

import (
	_ "embed"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed zones.yaml
var catalogueYAML []byte

// A Zone is a named, fixed offset from UTC.
type Zone struct {
	Abbrev string  `yaml:"abbrev" validate:"required,max=6"`
	Name   string  `yaml:"name" validate:"required"`
	Offset float64 `yaml:"offset" validate:"gte=-12,lte=14,quarterhour"`
}

// UTC is Coordinated Universal Time. It is the zone of every value that has
// not been given another one.
var UTC = Zone{Abbrev: "UTC", Name: "Coordinated Universal Time"}

// String returns the abbreviation of z.
func (z Zone) String() string {
	if z.Abbrev == "" {
		return UTC.Abbrev
	}
	return z.Abbrev
}

// IsUTC reports whether z has no offset from UTC.
func (z Zone) IsUTC() bool {
	return z.Offset == 0
}

// ErrUnknown is returned by Lookup for names not in the catalogue.
var ErrUnknown = errors.New("unknown timezone")

// AmbiguousError is returned by Lookup for abbreviations shared by more than
// one zone.
type AmbiguousError struct {
	Abbrev     string
	Candidates []Zone
}

// Error implements the error interface.
func (e *AmbiguousError) Error() string {
	names := make([]string, len(e.Candidates))
	for i, z := range e.Candidates {
		names[i] = fmt.Sprintf("%q", z.Name)
	}
	return fmt.Sprintf("timezone %q is ambiguous, use one of %s", e.Abbrev, strings.Join(names, ", "))
}

type catalogue struct {
	Zones []Zone `yaml:"zones" validate:"required,min=1,unique=Name,dive"`
}

// load is only ever called once, the catalogue is immutable afterwards.
var load = sync.OnceValues(func() ([]Zone, error) {
	return parse(catalogueYAML)
})

// parse decodes and validates a catalogue. The returned zones are sorted by
// offset, then abbreviation.
func parse(b []byte) ([]Zone, error) {
	var c catalogue
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, errors.Wrap(err, "decoding timezone catalogue")
	}
	if err := newValidator().Struct(c); err != nil {
		return nil, errors.Wrap(err, "validating timezone catalogue")
	}
	sort.SliceStable(c.Zones, func(i, j int) bool {
		a, b := c.Zones[i], c.Zones[j]
		if a.Offset != b.Offset {
			return a.Offset < b.Offset
		}
		if a.Abbrev != b.Abbrev {
			return a.Abbrev < b.Abbrev
		}
		return a.Name < b.Name
	})
	return c.Zones, nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registering a fixed, well-formed tag can not fail.
	_ = v.RegisterValidation("quarterhour", func(fl validator.FieldLevel) bool {
		q := fl.Field().Float() * 4
		return q == math.Trunc(q)
	})
	return v
}

// All returns every zone in the catalogue, sorted by offset. The returned
// slice is a copy and may be modified by the caller.
func All() []Zone {
	zs, err := load()
	if err != nil {
		// The catalogue is embedded and covered by tests.
		panic(err)
	}
	return append([]Zone(nil), zs...)
}

// Lookup returns the zone with the given full name or abbreviation. The match
// is case-insensitive. Full names take precedence over abbreviations.
func Lookup(name string) (Zone, error) {
	zs := All()
	var candidates []Zone
	for _, z := range zs {
		if strings.EqualFold(z.Name, name) {
			return z, nil
		}
		if strings.EqualFold(z.Abbrev, name) {
			candidates = append(candidates, z)
		}
	}
	switch len(candidates) {
	case 0:
		return Zone{}, errors.Wrapf(ErrUnknown, "looking up %q", name)
	case 1:
		return candidates[0], nil
	}
	return Zone{}, &AmbiguousError{Abbrev: name, Candidates: candidates}
}

// WithOffset returns all zones with the given offset in hours.
func WithOffset(hours float64) []Zone {
	var out []Zone
	for _, z := range All() {
		if z.Offset == hours {
			out = append(out, z)
		}
	}
	return out
}
