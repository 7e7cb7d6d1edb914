package grammar

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/sirkon/smarterr/internal/model"
	"github.com/sirkon/smarterr/internal/rules"
)

// ErrorsetShape is the result list of an errorset function.
type ErrorsetShape struct {
	// Field is the result holding the error union. It is nil when the
	// signature has no union and stays as is.
	Field *ast.Field

	// Elements of the union, deduplicated by the last identifier.
	Elements []*model.UnionElement
}

// Changed checks if the signature is to be rewritten.
func (s *ErrorsetShape) Changed() bool {
	return s.Field != nil
}

// ErrorsetShape extracts the error union of the errorset function.
func (p *Parser) ErrorsetShape(decl *ast.FuncDecl) (*ErrorsetShape, bool) {
	results := decl.Type.Results
	if results == nil || len(results.List) == 0 {
		p.rp.Errorf(
			rules.SER011MissingResults,
			decl.Name.Pos(),
			decl.Name.End(),
			"errorset function %s must return a value and an error union",
			decl.Name.Name,
		)
		return nil, false
	}

	var count int
	for _, f := range results.List {
		count += max(1, len(f.Names))
	}

	last := results.List[len(results.List)-1]
	iface, isUnion := last.Type.(*ast.InterfaceType)
	if count != 2 {
		if isUnion {
			p.rp.Errorf(
				rules.SER012ErrorsetArity,
				results.Pos(),
				results.End(),
				"errorset function %s must return exactly a value and an error union, got %d results",
				decl.Name.Name,
				count,
			)
			return nil, false
		}

		return &ErrorsetShape{}, true
	}

	if !isUnion {
		switch last.Type.(type) {
		case *ast.Ident, *ast.SelectorExpr, *ast.IndexExpr, *ast.IndexListExpr, *ast.StarExpr, *ast.ParenExpr:
			return &ErrorsetShape{}, true
		}

		p.shapeError(last.Type, "the error result must be a union of error types, got %s", types.ExprString(last.Type))
		return nil, false
	}

	if len(last.Names) > 1 {
		p.shapeError(last.Type, "the error union must be a result of its own")
		return nil, false
	}

	if len(iface.Methods.List) != 1 || len(iface.Methods.List[0].Names) != 0 {
		p.shapeError(iface, "the error union must be an interface with a single type union, like interface{ *E1 | E2 }")
		return nil, false
	}

	res := &ErrorsetShape{Field: last}
	seen := map[string]struct{}{}
	ok := true
	for _, term := range unionTerms(iface.Methods.List[0].Type) {
		name := termName(term)
		if name == "" {
			p.shapeError(term, "union element %s must be a named type", types.ExprString(term))
			ok = false
			continue
		}

		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		res.Elements = append(res.Elements, &model.UnionElement{
			Span: model.Span{Pos: term.Pos(), End: term.End()},
			Name: name,
			Type: TypeOf(term),
		})
	}
	if !ok {
		return nil, false
	}

	return res, true
}

func (p *Parser) shapeError(node ast.Node, format string, a ...any) {
	p.rp.Errorf(rules.SER013ErrorsetShape, node.Pos(), node.End(), format, a...)
}

func unionTerms(expr ast.Expr) []ast.Expr {
	if bin, ok := expr.(*ast.BinaryExpr); ok && bin.Op == token.OR {
		return append(unionTerms(bin.X), unionTerms(bin.Y)...)
	}

	return []ast.Expr{expr}
}

// termName returns the last identifier of a union term or an empty string
// for terms without a name.
func termName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.ParenExpr:
		return termName(e.X)
	case *ast.StarExpr:
		return termName(e.X)
	case *ast.IndexExpr:
		return termName(e.X)
	case *ast.IndexListExpr:
		return termName(e.X)
	case *ast.SelectorExpr:
		return e.Sel.Name
	case *ast.Ident:
		return e.Name
	default:
		return ""
	}
}
