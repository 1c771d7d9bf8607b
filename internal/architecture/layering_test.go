package architecture_test

import (
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
)

const modulePrefix = "worksync/internal/modules/"

// imports walks the Go sources under root, skipping tests, and calls fn for
// every import of a worksync package.
func imports(t *testing.T, root string, fn func(file, importPath string)) {
	t.Helper()
	fset := token.NewFileSet()
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		node, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		for _, imp := range node.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)
			if strings.HasPrefix(importPath, "worksync/") {
				fn(filepath.ToSlash(path), importPath)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
}

func TestHexagonalLayerImports(t *testing.T) {
	t.Parallel()
	imports(t, filepath.Join("..", "modules"), func(file, importPath string) {
		if !strings.HasPrefix(importPath, modulePrefix) {
			return
		}
		module, layer := locate(strings.TrimPrefix(file, "../modules/"))
		if layer == "" {
			return
		}
		if violatesLayerRule(module, layer, strings.TrimPrefix(importPath, modulePrefix)) {
			t.Errorf("forbidden import in %s (%s): %s", file, layer, importPath)
		}
	})
}

func TestPlatformDoesNotDependOnModules(t *testing.T) {
	t.Parallel()
	imports(t, filepath.Join("..", "platform"), func(file, importPath string) {
		if strings.HasPrefix(importPath, modulePrefix) || strings.HasPrefix(importPath, "worksync/internal/ui") {
			t.Errorf("platform package %s imports %s", file, importPath)
		}
	})
}

var layers = []string{"adapter/in", "adapter/out", "port/in", "port/out", "usecase", "service", "domain", "dto"}

// locate splits "task/adapter/out/x.go" or "task/adapter/out" into module
// and layer.
func locate(rel string) (module, layer string) {
	module, rest, ok := strings.Cut(rel, "/")
	if !ok {
		return module, ""
	}
	for _, l := range layers {
		if rest == l || strings.HasPrefix(rest, l+"/") {
			return module, l
		}
	}
	return module, ""
}

func violatesLayerRule(module, layer, target string) bool {
	targetModule, targetLayer := locate(target)
	if targetModule != module {
		// Other modules are reachable only through their inbound port and dtos.
		return targetLayer != "port/in" && targetLayer != "dto"
	}
	switch layer {
	case "adapter/in":
		return targetLayer != "port/in" && targetLayer != "dto"
	case "usecase":
		return targetLayer == "adapter/in" || targetLayer == "adapter/out"
	case "service":
		return targetLayer == "adapter/in" || targetLayer == "adapter/out" || targetLayer == "usecase"
	case "domain":
		return targetLayer != "domain"
	case "dto", "port/in":
		return targetLayer != "dto" && targetLayer != "domain"
	default:
		return false
	}
}

func TestLayerRules(t *testing.T) {
	t.Parallel()
	cases := []struct {
		module, layer, target string
		want                  bool
	}{
		{"task", "adapter/in", "task/port/in", false},
		{"task", "adapter/in", "task/service", true},
		{"task", "usecase", "task/adapter/out", true},
		{"task", "service", "task/domain", false},
		{"task", "service", "task/usecase", true},
		{"task", "domain", "task/dto", true},
		{"task", "adapter/out", "task/domain", false},
		{"task", "usecase", "account/service", true},
		{"task", "usecase", "account/dto", false},
	}
	for _, tc := range cases {
		if got := violatesLayerRule(tc.module, tc.layer, tc.target); got != tc.want {
			t.Errorf("%s %s -> %s: got %v, want %v", tc.module, tc.layer, tc.target, got, tc.want)
		}
	}
}
