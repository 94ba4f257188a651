package serde

import (
	"errors"
	"fmt"
	"strings"
)

// Format is a structured encoding a generated type can take part in.
type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
	TOMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"yml":  YAMLFormat,
		"toml": TOMLFormat,
	}[strings.ToLower(strings.TrimSpace(v))]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case TOMLFormat:
		return []byte("toml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// AllFormats returns all supported formats in generation order.
func AllFormats() []Format {
	return []Format{JSONFormat, YAMLFormat, TOMLFormat}
}

// Formats is a set of formats. The zero value is the empty set.
type Formats uint8

// FormatsOf returns the set holding fs.
func FormatsOf(fs ...Format) Formats {
	var res Formats
	for _, f := range fs {
		res = res.With(f)
	}
	return res
}

// All is the set of every supported format.
func All() Formats {
	return FormatsOf(AllFormats()...)
}

func (s Formats) With(f Format) Formats {
	return s | 1<<uint(f)
}

func (s Formats) Has(f Format) bool {
	return s&(1<<uint(f)) != 0
}

func (s Formats) IsEmpty() bool {
	return s == 0
}

// List returns the members of s in generation order.
func (s Formats) List() []Format {
	var res []Format
	for _, f := range AllFormats() {
		if s.Has(f) {
			res = append(res, f)
		}
	}
	return res
}

func (s Formats) String() string {
	parts := make([]string, 0, 3)
	for _, f := range s.List() {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, "+")
}

// ParseFormats parses a list of formats separated by '+' or ','.
// The empty string yields the empty set.
func ParseFormats(v string) (Formats, error) {
	var res Formats
	fields := strings.FieldsFunc(v, func(r rune) bool {
		return r == '+' || r == ','
	})
	for _, field := range fields {
		f, err := ParseFormat(field)
		if err != nil {
			return 0, err
		}
		res = res.With(f)
	}
	return res, nil
}
