package grammar

import (
	"go/ast"
	"go/types"

	"github.com/sirkon/smarterr/internal/model"
)

var predeclared = map[string]struct{}{}

func init() {
	for _, name := range types.Universe.Names() {
		if _, ok := types.Universe.Lookup(name).(*types.TypeName); ok {
			predeclared[name] = struct{}{}
		}
	}
}

// IsPredeclared checks if the name is a predeclared type.
func IsPredeclared(name string) bool {
	_, ok := predeclared[name]
	return ok
}

// TypeOf describes a type expression of a template.
func TypeOf(expr ast.Expr) *model.Type {
	t := &model.Type{
		Span: model.Span{Pos: expr.Pos(), End: expr.End()},
		Text: types.ExprString(expr),
	}

	ast.Inspect(expr, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.SelectorExpr:
			if x, ok := n.X.(*ast.Ident); ok {
				addUnique(&t.Qualifiers, x.Name)
			}
			return false
		case *ast.Ident:
			if !IsPredeclared(n.Name) {
				addUnique(&t.Locals, n.Name)
			}
		}
		return true
	})

	return t
}
