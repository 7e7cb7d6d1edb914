package attach

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/token"
	"strconv"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"

	"github.com/sirkon/smarterr/internal/emit"
)

// TypeRef refers to a generated type, possibly placed in a module.
type TypeRef struct {
	// Package is the name of the module the type is placed in. It is empty
	// for types of the template package.
	Package string
	Name    string
}

func (r TypeRef) String() string {
	if r.Package == "" {
		return r.Name
	}

	return r.Package + "." + r.Name
}

func (r TypeRef) expr() dst.Expr {
	if r.Package == "" {
		return dst.NewIdent(r.Name)
	}

	return &dst.SelectorExpr{
		X:   dst.NewIdent(r.Package),
		Sel: dst.NewIdent(r.Name),
	}
}

// File is a template file being rewritten.
type File struct {
	fset *token.FileSet
	ast  *ast.File
	dec  *decorator.Decorator
	dst  *dst.File

	decls   []emit.Decl
	imports []emit.Import
	drop    map[string]string
}

// New decorates the parsed template.
func New(fset *token.FileSet, file *ast.File) (*File, error) {
	dec := decorator.NewDecorator(fset)
	df, err := dec.DecorateFile(file)
	if err != nil {
		return nil, fmt.Errorf("decorate file: %w", err)
	}

	return &File{
		fset: fset,
		ast:  file,
		dec:  dec,
		dst:  df,
		drop: map[string]string{},
	}, nil
}

// Result appends the union to the results of the function.
//
//	func F()                   → func F() U
//	func F() (int, string)     → func F() (int, string, U)
//	func F() (n int, s string) → func F() (n int, s string, err U)
func (f *File) Result(decl *ast.FuncDecl, union TypeRef) error {
	fn, err := f.funcDecl(decl)
	if err != nil {
		return err
	}

	res := fn.Type.Results
	if res == nil || len(res.List) == 0 {
		fn.Type.Results = &dst.FieldList{
			List: []*dst.Field{{Type: union.expr()}},
		}
		return nil
	}

	field := &dst.Field{Type: union.expr()}
	if len(res.List[0].Names) > 0 {
		field.Names = []*dst.Ident{dst.NewIdent(errName(decl))}
	}
	if len(res.List) == 1 && len(res.List[0].Names) == 0 {
		res.Opening = true
		res.Closing = true
	}
	res.List = append(res.List, field)

	return nil
}

// Replace replaces the type of the result with the union.
func (f *File) Replace(decl *ast.FuncDecl, result *ast.Field, union TypeRef) error {
	if _, err := f.funcDecl(decl); err != nil {
		return err
	}

	field, ok := f.dec.Dst.Nodes[result].(*dst.Field)
	if !ok {
		return fmt.Errorf("no decorated result of %s", decl.Name.Name)
	}
	field.Type = union.expr()

	return nil
}

// Prelude prepends statements to the body of the function.
func (f *File) Prelude(decl *ast.FuncDecl, stmts []emit.Stmt) error {
	if len(stmts) == 0 {
		return nil
	}

	fn, err := f.funcDecl(decl)
	if err != nil {
		return err
	}
	if fn.Body == nil {
		return fmt.Errorf("function %s has no body", decl.Name.Name)
	}

	src := "package p\n\nfunc _() {\n" + emit.RenderStmts(stmts, 1) + "}\n"
	parsed, err := decorator.Parse(src)
	if err != nil {
		return fmt.Errorf("parse prelude of %s: %w", decl.Name.Name, err)
	}

	prelude := parsed.Decls[0].(*dst.FuncDecl).Body.List
	prelude[len(prelude)-1].Decorations().After = dst.EmptyLine
	fn.Body.List = append(prelude, fn.Body.List...)

	return nil
}

// Append adds generated declarations to the end of the file.
func (f *File) Append(decls []emit.Decl) {
	f.decls = append(f.decls, decls...)
}

// Import adds an import to the file if the generated code uses it.
func (f *File) Import(imp emit.Import) {
	f.imports = append(f.imports, imp)
}

// Drop removes the import if nothing uses it after the rewrite.
func (f *File) Drop(name, pkgPath string) {
	f.drop[name] = pkgPath
}

// Source renders the generated file.
func (f *File) Source(header, tag string) ([]byte, error) {
	dst.Inspect(f.dst, func(n dst.Node) bool {
		if n == nil {
			return false
		}

		decs := n.Decorations()
		decs.Start = stripDirectives(decs.Start)
		decs.End = stripDirectives(decs.End)
		return true
	})
	f.dst.Decs.Start = stripConstraints(f.dst.Decs.Start)

	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString("\n\n//go:build !")
	buf.WriteString(tag)
	buf.WriteString("\n\n")
	if err := decorator.Fprint(&buf, f.dst); err != nil {
		return nil, fmt.Errorf("print rewritten template: %w", err)
	}
	if len(f.decls) > 0 {
		buf.WriteString("\n")
		buf.WriteString(emit.Render(f.decls))
	}

	return fixImports(buf.Bytes(), f.imports, f.drop)
}

func (f *File) funcDecl(decl *ast.FuncDecl) (*dst.FuncDecl, error) {
	fn, ok := f.dec.Dst.Nodes[decl].(*dst.FuncDecl)
	if !ok {
		return nil, fmt.Errorf("function %s is not a part of the file", decl.Name.Name)
	}

	return fn, nil
}

// errName picks a name for the error result which is not taken by
// parameters or results: err, err1, err2 and so on.
func errName(decl *ast.FuncDecl) string {
	taken := map[string]struct{}{}
	for _, list := range []*ast.FieldList{decl.Recv, decl.Type.Params, decl.Type.Results} {
		if list == nil {
			continue
		}

		for _, field := range list.List {
			for _, name := range field.Names {
				taken[name.Name] = struct{}{}
			}
		}
	}

	name := "err"
	for i := 1; ; i++ {
		if _, ok := taken[name]; !ok {
			return name
		}
		name = "err" + strconv.Itoa(i)
	}
}
