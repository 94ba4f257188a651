package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/signadot/boolenum/debug"
	"github.com/signadot/boolenum/enum"
)

// Result is the outcome of generating code for one package.
type Result struct {
	Package    *PackageInfo
	OutputFile string
	Specs      []*enum.Spec

	// Code is the generated source.
	Code []byte

	// Existing is the current content of OutputFile, nil if absent.
	Existing []byte
}

// Obsolete reports whether OutputFile is a generated file left behind
// after every enum it declared was removed. Code is nil in that case.
func (r *Result) Obsolete() bool {
	return r.Code == nil && r.Existing != nil
}

// Stale reports whether OutputFile differs from Code.
func (r *Result) Stale() bool {
	return r.Existing == nil || !bytes.Equal(r.Existing, r.Code)
}

// Write writes Code to OutputFile, or removes an obsolete OutputFile.
func (r *Result) Write() error {
	if r.Obsolete() {
		if err := os.Remove(r.OutputFile); err != nil {
			return fmt.Errorf("failed to remove obsolete output file %q: %w", r.OutputFile, err)
		}
		return nil
	}
	if err := os.WriteFile(r.OutputFile, r.Code, 0644); err != nil {
		return fmt.Errorf("failed to write output file %q: %w", r.OutputFile, err)
	}
	return nil
}

// Summary describes r for progress output.
func (r *Result) Summary() string {
	if r.Obsolete() {
		return fmt.Sprintf("%s: no enums requested", r.OutputFile)
	}
	return fmt.Sprintf("%s: %s", r.OutputFile, joinSpecs(r.Specs))
}

// ProcessPackage collects the enums requested for config.Package from its
// directives and manifest and generates their code. When nothing is
// requested it returns nil, nil, or an obsolete Result if a previously
// generated output file is still present.
func ProcessPackage(config *CodegenConfig) (*Result, error) {
	pkg := config.Package

	var specs []*enum.Spec
	for _, filePath := range pkg.Files {
		file, fset, err := ParseFile(filePath)
		if err != nil {
			return nil, err
		}
		found, err := ExtractDirectives(file, fset)
		if err != nil {
			return nil, fmt.Errorf("failed to extract directives from %q: %w", filePath, err)
		}
		specs = append(specs, found...)
	}

	var (
		manifest *Manifest
		err      error
	)
	if config.Manifest != "" {
		manifest, err = LoadManifest(config.Manifest)
	} else {
		manifest, err = FindManifest(pkg.Dir)
	}
	if err != nil {
		return nil, err
	}

	features := config.Features
	outputFile := config.OutputFile
	if manifest != nil {
		mf, err := manifest.FeatureSet()
		if err != nil {
			return nil, err
		}
		features = features.Union(mf)
		mSpecs, err := manifest.Specs()
		if err != nil {
			return nil, err
		}
		specs = append(specs, mSpecs...)
		if outputFile == "" && manifest.Output != "" {
			outputFile = filepath.Join(pkg.Dir, manifest.Output)
		}
	}
	if outputFile == "" {
		outputFile = filepath.Join(pkg.Dir, pkg.Name+"_boolenum.go")
	}

	existing, err := os.ReadFile(outputFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %q: %w", outputFile, err)
	}

	if len(specs) == 0 {
		if debug.Scan() {
			debug.Logf("no enums requested in %s\n", pkg.Dir)
		}
		if !isGenerated(existing) {
			return nil, nil
		}
		return &Result{
			Package:    pkg,
			OutputFile: outputFile,
			Existing:   existing,
		}, nil
	}

	code, err := GenerateFile(pkg.Name, specs,
		WithFeatures(features),
		WithFilename(outputFile))
	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	return &Result{
		Package:    pkg,
		OutputFile: outputFile,
		Specs:      specs,
		Code:       code,
		Existing:   existing,
	}, nil
}

// isGenerated reports whether d starts with the boolenum header.
func isGenerated(d []byte) bool {
	return bytes.HasPrefix(d, []byte(GeneratedHeader+"\n"))
}

// Verify type checks the package of r with r.Code in place of the output
// file and confirms every generated type is in scope as a bool enum.
func (r *Result) Verify(l *PackageLoader) error {
	if r.Obsolete() {
		return nil
	}
	pkg, err := l.TypeCheck(r.Package.Dir, r.OutputFile, r.Code)
	if err != nil {
		return err
	}
	for _, spec := range r.Specs {
		names, err := spec.Names()
		if err != nil {
			return err
		}
		if _, err := l.FindBoolEnum(pkg, names.Type); err != nil {
			return fmt.Errorf("%w: %w", ErrTypeCheck, err)
		}
	}
	return nil
}
