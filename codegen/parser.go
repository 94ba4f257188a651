package codegen

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"github.com/signadot/boolenum/debug"
	"github.com/signadot/boolenum/enum"
	"github.com/signadot/boolenum/serde"
)

// DirectivePrefix starts every boolenum directive comment.
const DirectivePrefix = "//boolenum:"

var ErrBadDirective = errors.New("bad boolenum directive")

// ParseFile parses a Go source file and returns its AST.
func ParseFile(filename string) (*ast.File, *token.FileSet, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse file %q: %w", filename, err)
	}
	return file, fset, nil
}

// ExtractDirectives returns the enums requested by //boolenum: comments in
// file, in source order. Generated files are skipped.
func ExtractDirectives(file *ast.File, fset *token.FileSet) ([]*enum.Spec, error) {
	if ast.IsGenerated(file) {
		return nil, nil
	}
	var specs []*enum.Spec
	for _, group := range file.Comments {
		for _, c := range group.List {
			if !strings.HasPrefix(c.Text, DirectivePrefix) {
				continue
			}
			pos := fset.Position(c.Slash).String()
			spec, err := ParseDirective(strings.TrimPrefix(c.Text, DirectivePrefix))
			if err != nil {
				return nil, fmt.Errorf("%s: %w", pos, err)
			}
			spec.Pos = pos
			if debug.Scan() {
				debug.Logf("%s: directive %s\n", pos, spec)
			}
			specs = append(specs, spec)
		}
	}
	return specs, nil
}

// ParseDirective parses directive content such as
// "gen=DryRun,pub,serde,formats=json+yaml".
func ParseDirective(content string) (*enum.Spec, error) {
	parsed, err := ParseTag(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDirective, err)
	}
	name, ok := parsed["gen"]
	if !ok {
		return nil, fmt.Errorf("%w: missing gen=<name> in %q", ErrBadDirective, content)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: gen requires a type name", ErrBadDirective)
	}
	spec := &enum.Spec{Name: name}

	_, pub := parsed["pub"]
	_, public := parsed["public"]
	_, private := parsed["private"]
	if (pub || public) && private {
		return nil, fmt.Errorf("%w: %q is both public and private", ErrBadDirective, name)
	}
	if pub || public {
		spec.Visibility = enum.Public
	}
	_, spec.Serde = parsed["serde"]
	if fv, ok := parsed["formats"]; ok {
		fs, err := serde.ParseFormats(fv)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadDirective, err)
		}
		spec.Formats = fs
	}

	for k := range parsed {
		switch k {
		case "gen", "pub", "public", "private", "serde", "formats":
		default:
			return nil, fmt.Errorf("%w: unknown key %q", ErrBadDirective, k)
		}
	}
	return spec, nil
}

// ParseInvocation parses the argument form of a request, where "pub" and
// "serde" may precede the name in either order: "pub serde DryRun".
func ParseInvocation(args []string) (*enum.Spec, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: missing name", ErrBadDirective)
	}
	spec := &enum.Spec{Name: args[len(args)-1]}
	seen := map[string]bool{}
	for _, a := range args[:len(args)-1] {
		if seen[a] {
			return nil, fmt.Errorf("%w: %q given twice", ErrBadDirective, a)
		}
		seen[a] = true
		switch a {
		case "pub":
			spec.Visibility = enum.Public
		case "serde":
			spec.Serde = true
		default:
			return nil, fmt.Errorf("%w: unexpected %q before name", ErrBadDirective, a)
		}
	}
	return spec, nil
}
