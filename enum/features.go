package enum

import (
	"fmt"
	"strings"
)

// Features are generator capabilities fixed for a whole run, the way a
// build feature is fixed for a whole build.
type Features struct {
	Serde bool
}

// ParseFeatures parses feature names. Each argument may itself be a comma
// separated list.
func ParseFeatures(names ...string) (Features, error) {
	var f Features
	for _, arg := range names {
		for _, name := range strings.Split(arg, ",") {
			name = strings.TrimSpace(name)
			switch name {
			case "":
			case "serde":
				f.Serde = true
			default:
				return Features{}, fmt.Errorf("%w: %q", ErrUnknownFeature, name)
			}
		}
	}
	return f, nil
}

// Union returns the features enabled in f or o.
func (f Features) Union(o Features) Features {
	return Features{Serde: f.Serde || o.Serde}
}

func (f Features) String() string {
	if f.Serde {
		return "serde"
	}
	return ""
}
