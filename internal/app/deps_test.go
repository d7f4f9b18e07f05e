package app

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const modulePath = "go-path-defense"

// packageImports разбирает импорты всех не тестовых файлов пакета в dir
func packageImports(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read %s: %v", dir, err)
	}
	var imports []string
	fset := token.NewFileSet()
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}
		for _, spec := range f.Imports {
			path, _ := strconv.Unquote(spec.Path.Value)
			imports = append(imports, path)
		}
	}
	return imports
}

// The simulation and the headless runner must build without a window toolkit.
func TestSimulationDoesNotImportEbiten(t *testing.T) {
	root := filepath.Join("..", "..")
	roots := []string{modulePath + "/internal/app", modulePath + "/cmd/simulate"}

	for _, start := range roots {
		t.Run(start, func(t *testing.T) {
			via := map[string]string{start: ""}
			queue := []string{start}
			for len(queue) > 0 {
				pkg := queue[0]
				queue = queue[1:]
				dir := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(pkg, modulePath+"/")))
				for _, imp := range packageImports(t, dir) {
					if strings.HasPrefix(imp, "github.com/hajimehoshi/ebiten") {
						t.Fatalf("%s imports %s (reached via %s)", pkg, imp, via[pkg])
					}
					if !strings.HasPrefix(imp, modulePath+"/") {
						continue
					}
					if _, seen := via[imp]; !seen {
						via[imp] = pkg
						queue = append(queue, imp)
					}
				}
			}
			if _, ok := via[modulePath+"/internal/system"]; !ok {
				t.Errorf("%s should reach internal/system", start)
			}
		})
	}
}
