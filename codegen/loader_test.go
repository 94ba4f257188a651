package codegen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/boolenum/enum"
)

func writeModule(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestVerify(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	dir := writeModule(t, map[string]string{
		"go.mod":  "module example.com/demo\n\ngo 1.21\n",
		"demo.go": "package demo\n\n//boolenum:gen=Quiet,pub\n\nfunc Run(q Quiet) bool { return q.Not().Bool() }\n",
	})
	pkg := discoverOne(t, dir)
	res, err := ProcessPackage(&CodegenConfig{Package: pkg})
	if err != nil {
		t.Fatalf("ProcessPackage: %v", err)
	}

	l := NewPackageLoader()
	if err := res.Verify(l); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	// nothing was written; the overlay supplied the generated file
	if _, err := os.Stat(res.OutputFile); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Verify wrote %s", res.OutputFile)
	}
}

func TestVerifyCollision(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	dir := writeModule(t, map[string]string{
		"go.mod":  "module example.com/demo\n\ngo 1.21\n",
		"demo.go": "package demo\n\n//boolenum:gen=Quiet,pub\n\nconst QuietYes = 1\n",
	})
	pkg := discoverOne(t, dir)
	res, err := ProcessPackage(&CodegenConfig{Package: pkg})
	if err != nil {
		t.Fatalf("ProcessPackage: %v", err)
	}
	err = res.Verify(NewPackageLoader())
	if !errors.Is(err, ErrTypeCheck) {
		t.Fatalf("Verify = %v, want ErrTypeCheck", err)
	}
}

func TestFindBoolEnum(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	dir := writeModule(t, map[string]string{
		"go.mod":  "module example.com/demo\n\ngo 1.21\n",
		"demo.go": "package demo\n\ntype Flag bool\n\ntype Count int\n\nvar Value = true\n",
	})
	l := NewPackageLoader()
	pkg, err := l.LoadDir(dir, nil)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	again, err := l.LoadDir(dir, nil)
	if err != nil || again != pkg {
		t.Errorf("second LoadDir not served from cache")
	}
	if _, err := l.FindBoolEnum(pkg, "Flag"); err != nil {
		t.Errorf("FindBoolEnum(Flag): %v", err)
	}
	for _, name := range []string{"Count", "Value", "Missing"} {
		if _, err := l.FindBoolEnum(pkg, name); err == nil {
			t.Errorf("FindBoolEnum(%s) succeeded", name)
		}
	}
}

func TestTypeCheckGenerated(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	dir := writeModule(t, map[string]string{
		"go.mod":  "module example.com/demo\n\ngo 1.21\n",
		"demo.go": "package demo\n\nfunc Both(a First, b Second) (bool, bool) { return a.Bool(), b.Bool() }\n",
	})
	src, err := GenerateFile("demo", []*enum.Spec{
		enum.New("First", enum.Public, false),
		enum.New("Second", enum.Public, false),
	})
	if err != nil {
		t.Fatalf("GenerateFile: %v", err)
	}
	l := NewPackageLoader()
	if _, err := l.TypeCheck(dir, filepath.Join(dir, "demo_boolenum.go"), src); err != nil {
		t.Fatalf("TypeCheck: %v", err)
	}

	// transposed arguments do not compile
	swapped := "package demo\n\nfunc Both(a First, b Second) { Both(b, a) }\n"
	if err := os.WriteFile(filepath.Join(dir, "demo.go"), []byte(swapped), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := l.TypeCheck(dir, filepath.Join(dir, "demo_boolenum.go"), src); !errors.Is(err, ErrTypeCheck) {
		t.Errorf("TypeCheck of swapped arguments = %v, want ErrTypeCheck", err)
	}
}
