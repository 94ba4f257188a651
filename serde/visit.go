package serde

import (
	"encoding/json"
	"fmt"
	"time"
)

// VisitBool accepts v when it is a boolean and fails otherwise.
// typeName names the generated type for the error message.
func VisitBool(f Format, typeName string, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Format: f, Type: typeName, Got: Describe(v)}
	}
	return b, nil
}

// Describe gives a short human description of a decoded value.
func Describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case bool:
		return fmt.Sprintf("boolean %t", x)
	case string:
		return fmt.Sprintf("string %q", x)
	case json.Number:
		return "number " + x.String()
	case float32, float64, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("number %v", x)
	case time.Time:
		return "datetime " + x.Format(time.RFC3339)
	case []any:
		return "sequence"
	case map[string]any, map[any]any:
		return "map"
	default:
		return fmt.Sprintf("value of type %T", v)
	}
}

func boolBytes(b bool) []byte {
	if b {
		return []byte("true")
	}
	return []byte("false")
}

// MarshalJSONBool encodes b as a JSON boolean literal.
func MarshalJSONBool(b bool) ([]byte, error) {
	return boolBytes(b), nil
}

// UnmarshalJSONBool decodes a JSON boolean literal. Strings, numbers,
// null and composites are rejected.
func UnmarshalJSONBool(typeName string, data []byte) (bool, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return false, fmt.Errorf("json: decoding %s: %w", typeName, err)
	}
	return VisitBool(JSONFormat, typeName, v)
}

// MarshalYAMLBool returns the value a YAML encoder should emit for b.
func MarshalYAMLBool(b bool) (any, error) {
	return b, nil
}

// UnmarshalYAMLBool decodes a YAML boolean through the decoder callback
// handed to UnmarshalYAML(func(any) error) error methods. YAML decoders
// do not call unmarshalers for null nodes, so a null leaves the target
// unchanged and never reaches here.
func UnmarshalYAMLBool(typeName string, unmarshal func(any) error) (bool, error) {
	var v any
	if err := unmarshal(&v); err != nil {
		return false, fmt.Errorf("yaml: decoding %s: %w", typeName, err)
	}
	return VisitBool(YAMLFormat, typeName, v)
}

// MarshalTOMLBool encodes b as a TOML boolean.
func MarshalTOMLBool(b bool) ([]byte, error) {
	return boolBytes(b), nil
}

// UnmarshalTOMLBool accepts the primitive a TOML decoder hands to
// UnmarshalTOML(any) error methods.
func UnmarshalTOMLBool(typeName string, v any) (bool, error) {
	return VisitBool(TOMLFormat, typeName, v)
}
