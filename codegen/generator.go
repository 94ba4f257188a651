package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/signadot/boolenum/debug"
	"github.com/signadot/boolenum/enum"
	"github.com/signadot/boolenum/serde"
)

// SerdeImportPath is imported by generated files using serialization.
const SerdeImportPath = "github.com/signadot/boolenum/serde"

// serdeAlias replaces the serde package name when a generated
// identifier would shadow it.
const serdeAlias = "boolenumserde"

type GenOption func(*genState)

type genState struct {
	features enum.Features
	pkg      string
	filename string
}

// WithFeatures enables generator capabilities.
func WithFeatures(f enum.Features) GenOption {
	return func(gs *genState) { gs.features = f }
}

// WithPackage sets the package name used to qualify type names in
// decode errors. GenerateFile sets it from its argument.
func WithPackage(name string) GenOption {
	return func(gs *genState) { gs.pkg = name }
}

// WithFilename names the output for formatting diagnostics.
func WithFilename(name string) GenOption {
	return func(gs *genState) { gs.filename = name }
}

type enumData struct {
	Names     enum.Names
	Qualified string
	Serde     string
	JSON      bool
	YAML      bool
	TOML      bool
}

type fileData struct {
	Package     string
	SerdeImport string
	SerdeAlias  string
	Enums       []*enumData
}

// GenerateEnum returns the formatted declarations for a single enum: the
// type, its variants, conversions, default, negation and, when
// spec.Serde is set, the serialization methods.
func GenerateEnum(spec *enum.Spec, features enum.Features, opts ...GenOption) (string, error) {
	gs := &genState{}
	for _, opt := range opts {
		opt(gs)
	}
	gs.features = features
	fd, err := gs.plan(gs.pkg, []*enum.Spec{spec})
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := codeTemplate.ExecuteTemplate(&buf, "enum", fd.Enums[0]); err != nil {
		return "", fmt.Errorf("failed to execute template for %q: %w", spec.Name, err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("failed to format %q: %w\n%s", spec.Name, err, buf.Bytes())
	}
	return string(out), nil
}

// GenerateFile returns a complete, formatted Go source file declaring
// every enum in specs in package pkg.
func GenerateFile(pkg string, specs []*enum.Spec, opts ...GenOption) ([]byte, error) {
	gs := &genState{}
	for _, opt := range opts {
		opt(gs)
	}
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("invalid package name %q", pkg)
	}
	fd, err := gs.plan(pkg, specs)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := codeTemplate.ExecuteTemplate(&buf, "file", fd); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	filename := gs.filename
	if filename == "" {
		filename = pkg + "_boolenum.go"
	}
	if debug.Gen() {
		debug.Logf("generated %s before formatting:\n%s\n", filename, buf.String())
	}
	out, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to format %s: %w", filename, err)
	}
	return out, nil
}

// plan validates specs and resolves everything the templates need.
func (gs *genState) plan(pkg string, specs []*enum.Spec) (*fileData, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("no enums to generate")
	}
	fd := &fileData{Package: pkg}
	declared := map[string]string{}
	needSerde := false
	for _, spec := range specs {
		if err := spec.Validate(gs.features); err != nil {
			return nil, withPos(spec, err)
		}
		names, err := spec.Names()
		if err != nil {
			return nil, withPos(spec, err)
		}
		for _, id := range names.Idents() {
			if prev, ok := declared[id]; ok {
				return nil, withPos(spec, fmt.Errorf("%w: %s already declared by %s", enum.ErrNameCollision, id, prev))
			}
			declared[id] = spec.String()
		}
		qualified := names.Type
		if pkg != "" {
			qualified = pkg + "." + names.Type
		}
		fs := spec.SerdeFormats()
		needSerde = needSerde || !fs.IsEmpty()
		fd.Enums = append(fd.Enums, &enumData{
			Names:     names,
			Qualified: qualified,
			JSON:      fs.Has(serde.JSONFormat),
			YAML:      fs.Has(serde.YAMLFormat),
			TOML:      fs.Has(serde.TOMLFormat),
		})
	}
	qual := "serde"
	if _, shadowed := declared[qual]; shadowed {
		qual = serdeAlias
		fd.SerdeAlias = serdeAlias
	}
	if needSerde {
		fd.SerdeImport = SerdeImportPath
	} else {
		fd.SerdeAlias = ""
	}
	for _, ed := range fd.Enums {
		ed.Serde = qual
	}
	return fd, nil
}

func withPos(spec *enum.Spec, err error) error {
	if spec.Pos == "" {
		return fmt.Errorf("enum %q: %w", spec.Name, err)
	}
	return fmt.Errorf("%s: enum %q: %w", spec.Pos, spec.Name, err)
}

// joinSpecs renders specs for progress output.
func joinSpecs(specs []*enum.Spec) string {
	parts := make([]string, len(specs))
	for i, s := range specs {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}
