package serde

import (
	"errors"
	"fmt"
)

// ErrExpectedBool is wrapped by every error reporting a non-boolean input.
var ErrExpectedBool = errors.New("expected a boolean value")

// TypeError reports structured input that does not hold a boolean.
type TypeError struct {
	Format Format
	Type   string // qualified Go type being decoded, e.g. "flags.DryRun"
	Got    string // description of the offending value
}

func (e *TypeError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("%s: cannot decode %s: %s", e.Format, e.Got, ErrExpectedBool)
	}
	return fmt.Sprintf("%s: cannot decode %s into %s: %s", e.Format, e.Got, e.Type, ErrExpectedBool)
}

func (e *TypeError) Unwrap() error {
	return ErrExpectedBool
}
