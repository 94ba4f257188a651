package codegen

import (
	"errors"
	"fmt"
	"go/types"
	"path/filepath"
	"sync"

	"golang.org/x/tools/go/packages"

	"github.com/signadot/boolenum/debug"
)

var ErrTypeCheck = errors.New("type check failed")

// PackageLoader loads and caches Go packages by directory.
type PackageLoader struct {
	cache map[string]*packages.Package
	mu    sync.RWMutex
}

// NewPackageLoader creates a new PackageLoader.
func NewPackageLoader() *PackageLoader {
	return &PackageLoader{
		cache: make(map[string]*packages.Package),
	}
}

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
	packages.NeedImports | packages.NeedTypes | packages.NeedTypesSizes |
	packages.NeedSyntax | packages.NeedTypesInfo

// LoadDir loads the package in dir. Files in overlay replace (or add to)
// the files on disk; loads with an overlay are not cached.
func (l *PackageLoader) LoadDir(dir string, overlay map[string][]byte) (*packages.Package, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for %q: %w", dir, err)
	}
	if overlay == nil {
		l.mu.RLock()
		if pkg, ok := l.cache[absDir]; ok {
			l.mu.RUnlock()
			return pkg, nil
		}
		l.mu.RUnlock()
	}

	cfg := &packages.Config{
		Mode:    loadMode,
		Dir:     absDir,
		Overlay: overlay,
	}
	if debug.Load() {
		debug.Logf("loading %s (%d overlay files)\n", absDir, len(overlay))
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load package in %q: %w", dir, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no package found in %q", dir)
	}
	pkg := pkgs[0]

	if overlay == nil {
		l.mu.Lock()
		l.cache[absDir] = pkg
		l.mu.Unlock()
	}
	return pkg, nil
}

// TypeCheck loads the package in dir with src in place of file and
// reports every error the type checker finds. This is where generated
// names colliding with existing declarations surface.
func (l *PackageLoader) TypeCheck(dir, file string, src []byte) (*packages.Package, error) {
	absFile, err := filepath.Abs(file)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for %q: %w", file, err)
	}
	pkg, err := l.LoadDir(dir, map[string][]byte{absFile: src})
	if err != nil {
		return nil, err
	}
	if len(pkg.Errors) == 0 {
		return pkg, nil
	}
	errs := make([]error, 0, len(pkg.Errors))
	for _, e := range pkg.Errors {
		errs = append(errs, e)
	}
	return pkg, fmt.Errorf("%w: %w", ErrTypeCheck, errors.Join(errs...))
}

// FindType looks up a type definition in a loaded package.
func (l *PackageLoader) FindType(pkg *packages.Package, typeName string) (types.Object, error) {
	if pkg.Types == nil {
		return nil, fmt.Errorf("package %q has no type information", pkg.PkgPath)
	}

	obj := pkg.Types.Scope().Lookup(typeName)
	if obj == nil {
		return nil, fmt.Errorf("type %q not found in package %q", typeName, pkg.PkgPath)
	}

	return obj, nil
}

// FindBoolEnum finds a generated enum type, which must be a named type
// whose underlying type is bool.
func (l *PackageLoader) FindBoolEnum(pkg *packages.Package, typeName string) (*types.TypeName, error) {
	obj, err := l.FindType(pkg, typeName)
	if err != nil {
		return nil, err
	}

	typeNameObj, ok := obj.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%q is not a type name", typeName)
	}

	named, ok := typeNameObj.Type().(*types.Named)
	if !ok {
		return nil, fmt.Errorf("%q is not a named type", typeName)
	}

	basic, ok := named.Underlying().(*types.Basic)
	if !ok || basic.Kind() != types.Bool {
		return nil, fmt.Errorf("%q is not a bool type", typeName)
	}
	return typeNameObj, nil
}
