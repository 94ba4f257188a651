package codegen

import "github.com/signadot/boolenum/enum"

// PackageInfo holds information about a Go package
type PackageInfo struct {
	// Path is the package import path (e.g., "github.com/user/project/flags")
	Path string

	// Dir is the directory containing the package
	Dir string

	// Name is the package name (e.g., "flags")
	Name string

	// Files contains paths to all .go files in the package
	Files []string
}

// CodegenConfig holds configuration for code generation
type CodegenConfig struct {
	// OutputFile is the output file for generated Go code (default: <package>_boolenum.go)
	OutputFile string

	// Dir is the directory to scan for Go files (default: current directory)
	Dir string

	// Recursive indicates whether to scan subdirectories recursively
	Recursive bool

	// Features are the enabled generator capabilities
	Features enum.Features

	// Manifest is an explicit manifest path, replacing the per package boolenum.yaml
	Manifest string

	// Package is the current package being processed
	Package *PackageInfo
}
