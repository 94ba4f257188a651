package enum

import (
	"fmt"
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/signadot/boolenum/serde"
)

// Spec is a request to generate one boolean enum.
type Spec struct {
	// Name is the requested type name. Its first letter is adjusted to
	// match Visibility.
	Name string

	Visibility Visibility

	// Serde requests the serialization facet.
	Serde bool

	// Formats restricts the serialization facet. Empty means all formats.
	Formats serde.Formats

	// Pos locates the request in its source for diagnostics.
	Pos string
}

// New returns a Spec serializing to every format when serdeEnabled is set.
func New(name string, vis Visibility, serdeEnabled bool) *Spec {
	return &Spec{Name: name, Visibility: vis, Serde: serdeEnabled}
}

// SerdeFormats returns the formats to generate, or the empty set when
// serialization was not requested.
func (s *Spec) SerdeFormats() serde.Formats {
	if !s.Serde {
		return 0
	}
	if s.Formats.IsEmpty() {
		return serde.All()
	}
	return s.Formats
}

// String renders s in invocation form, e.g. "pub serde DryRun".
func (s *Spec) String() string {
	var parts []string
	if s.Visibility == Public {
		parts = append(parts, "pub")
	}
	if s.Serde {
		parts = append(parts, "serde")
	}
	return strings.Join(append(parts, s.Name), " ")
}

// Names holds the package level identifiers generated for a Spec.
type Names struct {
	Type     string
	Yes      string
	No       string
	FromBool string
	Default  string
}

// Idents lists every package level identifier in n.
func (n Names) Idents() []string {
	return []string{n.Type, n.Yes, n.No, n.FromBool, n.Default}
}

// predeclared are the universe identifiers generated code refers to.
var predeclared = map[string]bool{
	"bool":   true,
	"string": true,
	"byte":   true,
	"any":    true,
	"error":  true,
	"true":   true,
	"false":  true,
	"nil":    true,
}

// Names resolves the identifiers for s, applying its visibility to the
// first letter of the name.
func (s *Spec) Names() (Names, error) {
	if !token.IsIdentifier(s.Name) || s.Name == "_" {
		return Names{}, fmt.Errorf("%w: %q is not a Go identifier", ErrInvalidName, s.Name)
	}
	typ := s.Name
	switch s.Visibility {
	case Public:
		typ = withFirst(typ, unicode.ToUpper)
		if !token.IsExported(typ) {
			return Names{}, fmt.Errorf("%w: %q", ErrNotExportable, s.Name)
		}
	default:
		typ = withFirst(typ, unicode.ToLower)
		if !token.IsIdentifier(typ) {
			return Names{}, fmt.Errorf("%w: %q is a keyword once unexported", ErrInvalidName, typ)
		}
	}
	n := Names{
		Type:     typ,
		Yes:      typ + "Yes",
		No:       typ + "No",
		FromBool: typ + "FromBool",
		Default:  typ + "Default",
	}
	if predeclared[typ] {
		return Names{}, fmt.Errorf("%w: %q shadows a predeclared identifier", ErrNameCollision, typ)
	}
	return n, nil
}

// Validate checks s against the enabled features.
func (s *Spec) Validate(f Features) error {
	if _, err := s.Names(); err != nil {
		return err
	}
	if s.Serde && !f.Serde {
		return ErrSerdeNotEnabled
	}
	if !s.Serde && !s.Formats.IsEmpty() {
		return fmt.Errorf("formats %s given without serde", s.Formats)
	}
	return nil
}

func withFirst(s string, f func(rune) rune) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(f(r)) + s[n:]
}
