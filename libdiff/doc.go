// Package libdiff computes line diffs between an existing file and its
// regenerated content.
//
// # Usage
//
//	lines := libdiff.Lines(string(existing), string(generated))
//	if libdiff.Changed(lines) {
//		err := libdiff.Unified(w, "a/flags_boolenum.go", "b/flags_boolenum.go", lines, 3, libdiff.NewColors())
//	}
//
// Lines are mapped to runes and diffed with
// github.com/sergi/go-diff/diffmatchpatch, so the diff is computed over
// whole lines.
package libdiff
