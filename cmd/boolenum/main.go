package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/boolenum/codegen"
	"github.com/signadot/boolenum/enum"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommand("boolenum").
		WithSynopsis("boolenum [opts] [pub] [serde] [Name]").
		WithDescription("Generate two-variant Yes/No types for boolean concepts from //boolenum: directives, a boolenum.yaml manifest, or arguments.").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

type Config struct {
	OutputFile string `cli:"name=o desc='output file for generated Go code (default: <package>_boolenum.go, stdout with a name argument)'"`
	Dir        string `cli:"name=dir desc='directory to scan for Go files (default: current directory)'"`
	Recursive  bool   `cli:"name=recursive desc='scan subdirectories recursively'"`
	Manifest   string `cli:"name=manifest desc='manifest to use instead of each package boolenum.yaml'"`
	Features   string `cli:"name=features desc='comma separated generator features to enable (serde)'"`
	Pkg        string `cli:"name=pkg desc='package clause when generating from arguments'"`
	Check      bool   `cli:"name=check desc='report stale generated files instead of writing them'"`
	TypeCheck  bool   `cli:"name=typecheck desc='type check each package with its generated file before writing'"`
	Color      bool   `cli:"name=color desc='color diffs even when not writing to a terminal'"`
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	features, err := enum.ParseFeatures(cfg.Features)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if len(args) > 0 {
		return generateArgs(cfg, features, cc.Out, args)
	}
	stale, err := generateDirs(cfg, features, cc.Out, useColor(cfg, cc.Out))
	if err != nil {
		return err
	}
	if stale > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func useColor(cfg *Config, w io.Writer) bool {
	if cfg.Color {
		color.NoColor = false
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// generateArgs handles "boolenum -pkg p [pub] [serde] Name".
func generateArgs(cfg *Config, features enum.Features, w io.Writer, args []string) error {
	if cfg.Pkg == "" {
		return fmt.Errorf("%w: -pkg is required when a name is given", cli.ErrUsage)
	}
	if cfg.Dir != "" || cfg.Recursive || cfg.Manifest != "" || cfg.Check {
		return fmt.Errorf("%w: -dir, -recursive, -manifest and -check only apply to directory mode", cli.ErrUsage)
	}
	spec, err := codegen.ParseInvocation(args)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	code, err := codegen.GenerateFile(cfg.Pkg, []*enum.Spec{spec},
		codegen.WithFeatures(features),
		codegen.WithFilename(cfg.OutputFile))
	if err != nil {
		return err
	}
	if cfg.OutputFile == "" {
		_, err = w.Write(code)
		return err
	}
	if err := os.WriteFile(cfg.OutputFile, code, 0644); err != nil {
		return fmt.Errorf("failed to write output file %q: %w", cfg.OutputFile, err)
	}
	return nil
}

// generateDirs processes every discovered package and returns the number
// of stale outputs found in check mode.
func generateDirs(cfg *Config, features enum.Features, w io.Writer, colored bool) (int, error) {
	if cfg.Manifest != "" && cfg.Recursive {
		return 0, fmt.Errorf("%w: -manifest names one package manifest and cannot be combined with -recursive", cli.ErrUsage)
	}
	dir := cfg.Dir
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return 0, fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	packages, err := codegen.DiscoverPackages(dir, cfg.Recursive)
	if err != nil {
		return 0, fmt.Errorf("failed to discover packages: %w", err)
	}
	if len(packages) == 0 {
		return 0, fmt.Errorf("no Go packages found in %q", dir)
	}
	if cfg.OutputFile != "" && len(packages) > 1 {
		return 0, fmt.Errorf("%w: -o names one file but %d packages were found", cli.ErrUsage, len(packages))
	}

	var loader *codegen.PackageLoader
	if cfg.TypeCheck {
		loader = codegen.NewPackageLoader()
	}

	stale := 0
	for _, pkg := range packages {
		fmt.Fprintf(w, "Processing package: %s\n", pkg.Name)
		res, err := codegen.ProcessPackage(&codegen.CodegenConfig{
			OutputFile: cfg.OutputFile,
			Dir:        pkg.Dir,
			Features:   features,
			Manifest:   cfg.Manifest,
			Package:    pkg,
		})
		if err != nil {
			return stale, fmt.Errorf("failed to process package %q: %w", pkg.Path, err)
		}
		if res == nil {
			continue
		}
		if loader != nil {
			if err := res.Verify(loader); err != nil {
				return stale, fmt.Errorf("package %q: %w", pkg.Path, err)
			}
		}
		if cfg.Check {
			if res.Stale() {
				stale++
				if err := reportStale(w, res, colored); err != nil {
					return stale, err
				}
			}
			continue
		}
		if !res.Stale() {
			continue
		}
		if err := res.Write(); err != nil {
			return stale, err
		}
		if res.Obsolete() {
			fmt.Fprintf(w, "removed %s\n", res.Summary())
			continue
		}
		fmt.Fprintf(w, "wrote %s\n", res.Summary())
	}
	return stale, nil
}
