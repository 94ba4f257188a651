package codegen

import (
	"fmt"
	"strings"
)

// ParseTag parses directive content into a map.
// It handles key-value pairs (key=value) and boolean flags (key),
// separated by commas. Values may be double quoted to hold commas
// or spaces.
func ParseTag(tag string) (map[string]string, error) {
	result := make(map[string]string)

	var key, value strings.Builder
	inKey := true
	inQuote := false
	quoted := false

	flush := func() error {
		k := strings.TrimSpace(key.String())
		v := value.String()
		if !quoted {
			v = strings.TrimSpace(v)
		}
		if k == "" {
			if inKey && v == "" {
				return nil
			}
			return fmt.Errorf("missing key before %q", v)
		}
		if _, dup := result[k]; dup {
			return fmt.Errorf("duplicate key %q", k)
		}
		result[k] = v
		return nil
	}

	tag = strings.TrimSpace(tag)
	for _, r := range tag {
		switch {
		case inQuote:
			if r == '"' {
				inQuote = false
				continue
			}
			value.WriteRune(r)
		case r == ',':
			if err := flush(); err != nil {
				return nil, err
			}
			key.Reset()
			value.Reset()
			inKey = true
			quoted = false
		case inKey && r == '=':
			inKey = false
		case inKey:
			key.WriteRune(r)
		case r == '"' && strings.TrimSpace(value.String()) == "":
			value.Reset()
			inQuote = true
			quoted = true
		default:
			value.WriteRune(r)
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote in %q", tag)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return result, nil
}
