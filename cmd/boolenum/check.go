package main

import (
	"fmt"
	"io"

	"github.com/signadot/boolenum/codegen"
	"github.com/signadot/boolenum/libdiff"
)

const diffContext = 3

// reportStale prints how the output file of res differs from what would
// be generated.
func reportStale(w io.Writer, res *codegen.Result, colored bool) error {
	if res.Existing == nil {
		_, err := fmt.Fprintf(w, "%s: missing\n", res.OutputFile)
		return err
	}
	if res.Obsolete() {
		_, err := fmt.Fprintf(w, "%s: obsolete, no enums requested\n", res.OutputFile)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s: stale\n", res.OutputFile); err != nil {
		return err
	}
	var colors *libdiff.Colors
	if colored {
		colors = libdiff.NewColors()
	}
	lines := libdiff.Lines(string(res.Existing), string(res.Code))
	return libdiff.Unified(w, res.OutputFile+" (on disk)", res.OutputFile+" (generated)", lines, diffContext, colors)
}
