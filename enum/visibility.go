package enum

import (
	"fmt"
	"strings"
)

// Visibility decides whether generated identifiers are exported.
type Visibility int

const (
	Private Visibility = iota
	Public
)

func ParseVisibility(v string) (Visibility, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "private", "priv":
		return Private, nil
	case "public", "pub":
		return Public, nil
	}
	return 0, fmt.Errorf("bad visibility %q: want public or private", v)
}

func (v Visibility) String() string {
	d, err := v.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (v Visibility) MarshalText() ([]byte, error) {
	switch v {
	case Private:
		return []byte("private"), nil
	case Public:
		return []byte("public"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a visibility>", v)
	}
}

func (v *Visibility) UnmarshalText(d []byte) error {
	pv, err := ParseVisibility(string(d))
	if err != nil {
		return err
	}
	*v = pv
	return nil
}
