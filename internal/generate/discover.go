package generate

import (
	"bufio"
	"bytes"
	"fmt"
	"go/build/constraint"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/mod/modfile"
)

// Discover returns template files of the directory: Go files whose build
// constraint is exactly the tag.
func Discover(dir, tag string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read package directory: %w", err)
	}

	var res []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}

		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		if IsTemplate(data, tag) {
			res = append(res, path)
		}
	}

	sort.Strings(res)
	return res, nil
}

// IsTemplate checks if the //go:build line of the source is the bare tag.
func IsTemplate(src []byte, tag string) bool {
	scanner := bufio.NewScanner(bytes.NewReader(src))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || (strings.HasPrefix(line, "//") && !constraint.IsGoBuild(line)) {
			continue
		}
		if !constraint.IsGoBuild(line) {
			return false
		}

		expr, err := constraint.Parse(line)
		if err != nil {
			return false
		}

		t, ok := expr.(*constraint.TagExpr)
		return ok && t.Tag == tag
	}

	return false
}

// ImportPath computes the import path of the package in the directory
// using the closest go.mod.
func ImportPath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("absolute path of %s: %w", dir, err)
	}

	for cur := abs; ; {
		data, err := os.ReadFile(filepath.Join(cur, "go.mod"))
		switch {
		case err == nil:
			mod := modfile.ModulePath(data)
			if mod == "" {
				return "", fmt.Errorf("no module path in %s", filepath.Join(cur, "go.mod"))
			}

			rel, err := filepath.Rel(cur, abs)
			if err != nil {
				return "", fmt.Errorf("relative path of the package: %w", err)
			}
			if rel == "." {
				return mod, nil
			}
			return mod + "/" + filepath.ToSlash(rel), nil

		case !os.IsNotExist(err):
			return "", fmt.Errorf("read go.mod: %w", err)
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", fmt.Errorf("no go.mod found for %s", dir)
		}
		cur = parent
	}
}
