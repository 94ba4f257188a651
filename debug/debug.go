// Package debug toggles diagnostic logging to stderr through BOOLENUM_DEBUG_* environment variables.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Scan     bool
	Gen      bool
	Load     bool
	Manifest bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("BOOLENUM_DEBUG_SCAN")
	d.Gen = boolEnv("BOOLENUM_DEBUG_GEN")
	d.Load = boolEnv("BOOLENUM_DEBUG_LOAD")
	d.Manifest = boolEnv("BOOLENUM_DEBUG_MANIFEST")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}
func Gen() bool {
	return d.Gen
}
func Load() bool {
	return d.Load
}
func Manifest() bool {
	return d.Manifest
}

func Logf(msg string, args ...any) {
	fmtArgs := make([]any, len(args))
	for i, a := range args {
		fmtArgs[i] = logArg(a)
	}
	fmt.Fprintf(os.Stderr, msg, fmtArgs...)
}

func logArg(a any) any {
	switch x := a.(type) {
	case map[string]any, []any, json.Number:
		d, err := json.MarshalIndent(a, "   |", "  ")
		if err != nil {
			return fmt.Sprintf("%v", a)
		}
		return string(d)
	case fmt.Stringer:
		return x.String()
	}
	return a
}
