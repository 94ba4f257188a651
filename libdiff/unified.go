package libdiff

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Colors render diff lines. A nil *Colors means plain output.
type Colors struct {
	Header  func(string, ...any) string
	Hunk    func(string, ...any) string
	Delete  func(string, ...any) string
	Insert  func(string, ...any) string
	Context func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Header:  color.New(color.Bold).SprintfFunc(),
		Hunk:    color.CyanString,
		Delete:  color.RedString,
		Insert:  color.GreenString,
		Context: fmt.Sprintf,
	}
}

func (c *Colors) line(op Op) func(string, ...any) string {
	if c == nil {
		return fmt.Sprintf
	}
	switch op {
	case Delete:
		return c.Delete
	case Insert:
		return c.Insert
	default:
		return c.Context
	}
}

func (c *Colors) header() func(string, ...any) string {
	if c == nil {
		return fmt.Sprintf
	}
	return c.Header
}

func (c *Colors) hunk() func(string, ...any) string {
	if c == nil {
		return fmt.Sprintf
	}
	return c.Hunk
}

type hunk struct {
	start, end int // half open range into lines
}

// hunks groups changes whose context windows touch.
func hunks(lines []Line, context int) []hunk {
	var res []hunk
	for i, l := range lines {
		if l.Op == Equal {
			continue
		}
		s, e := max(i-context, 0), min(i+context+1, len(lines))
		if n := len(res); n > 0 && s <= res[n-1].end {
			res[n-1].end = max(res[n-1].end, e)
			continue
		}
		res = append(res, hunk{start: s, end: e})
	}
	return res
}

// Unified writes lines to w in unified diff format with context lines
// of context around each change. Nothing is written when lines hold no
// change.
func Unified(w io.Writer, fromName, toName string, lines []Line, context int, colors *Colors) error {
	hs := hunks(lines, context)
	if len(hs) == 0 {
		return nil
	}
	hdr := colors.header()
	if _, err := fmt.Fprintf(w, "%s\n%s\n", hdr("--- %s", fromName), hdr("+++ %s", toName)); err != nil {
		return err
	}
	fromLine, toLine, pos := 1, 1, 0
	for _, h := range hs {
		for ; pos < h.start; pos++ {
			fromLine, toLine = advance(lines[pos].Op, fromLine, toLine)
		}
		fromCount, toCount := 0, 0
		for _, l := range lines[h.start:h.end] {
			fromCount, toCount = advance(l.Op, fromCount, toCount)
		}
		_, err := fmt.Fprintln(w, colors.hunk()("@@ -%s +%s @@",
			rangeOf(fromLine, fromCount), rangeOf(toLine, toCount)))
		if err != nil {
			return err
		}
		for ; pos < h.end; pos++ {
			l := lines[pos]
			if _, err := fmt.Fprintln(w, colors.line(l.Op)("%s%s", l.Op.prefix(), l.Text)); err != nil {
				return err
			}
			fromLine, toLine = advance(l.Op, fromLine, toLine)
		}
	}
	return nil
}

func advance(op Op, from, to int) (int, int) {
	switch op {
	case Delete:
		return from + 1, to
	case Insert:
		return from, to + 1
	default:
		return from + 1, to + 1
	}
}

func rangeOf(start, count int) string {
	if count == 0 {
		return fmt.Sprintf("%d,0", start-1)
	}
	if count == 1 {
		return fmt.Sprintf("%d", start)
	}
	return fmt.Sprintf("%d,%d", start, count)
}
