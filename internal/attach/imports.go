package attach

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"path"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/sirkon/smarterr/internal/emit"
)

var versionSuffix = regexp.MustCompile(`^v[0-9]+$`)

// ImportName guesses the name of the package by its path: the last path
// element without version suffixes and a go- prefix.
func ImportName(pkgPath string) string {
	base := path.Base(pkgPath)
	if versionSuffix.MatchString(base) {
		if dir := path.Dir(pkgPath); dir != "." {
			base = path.Base(dir)
		}
	}

	if i := strings.Index(base, ".v"); i > 0 && versionSuffix.MatchString(base[i+1:]) {
		base = base[:i]
	}
	base = strings.TrimPrefix(base, "go-")
	return strings.ReplaceAll(base, "-", "_")
}

// Imports maps the names file imports are referenced with to their paths.
// Blank and dot imports are omitted.
func Imports(file *ast.File) map[string]string {
	res := map[string]string{}
	for _, imp := range file.Imports {
		p, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}

		name := ImportName(p)
		if imp.Name != nil {
			name = imp.Name.Name
		}
		if name == "_" || name == "." {
			continue
		}

		res[name] = p
	}

	return res
}

// fixImports adds imports which are referenced in the source and removes
// candidates which are not referenced anymore.
func fixImports(src []byte, add []emit.Import, candidates map[string]string) ([]byte, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse rewritten code: %w", err)
	}

	used := usedQualifiers(file)
	imported := Imports(file)
	for _, imp := range add {
		name := imp.Name
		if name == "" {
			name = ImportName(imp.Path)
		}
		if _, ok := used[name]; !ok {
			continue
		}
		if p, ok := imported[name]; ok && p == imp.Path {
			continue
		}

		astutil.AddNamedImport(fset, file, imp.Name, imp.Path)
	}

	for name, p := range candidates {
		if _, ok := used[name]; ok {
			continue
		}

		if ImportName(p) == name {
			astutil.DeleteImport(fset, file, p)
		} else {
			astutil.DeleteNamedImport(fset, file, name, p)
		}
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, file); err != nil {
		return nil, fmt.Errorf("format rewritten code: %w", err)
	}

	return buf.Bytes(), nil
}

// usedQualifiers collects names used as package qualifiers.
func usedQualifiers(file *ast.File) map[string]struct{} {
	res := map[string]struct{}{}
	ast.Inspect(file, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		// Local variables have objects, package names do not.
		if id, ok := sel.X.(*ast.Ident); ok && id.Obj == nil {
			res[id.Name] = struct{}{}
		}
		return true
	})

	return res
}
