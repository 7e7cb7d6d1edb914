package diag

import (
	"go/ast"
	"go/token"

	"github.com/sirkon/rbtree"
)

// NewScopes creates an empty span index.
func NewScopes() *Scopes {
	return &Scopes{tree: rbtree.New[*scopeSpan]()}
}

// Scopes indexes nested declaration spans of a file. Spans may nest but
// never partially overlap, which is always the case for syntax nodes.
type Scopes struct {
	tree *rbtree.Tree[*scopeSpan]
}

// GetByPos returns the innermost node covering pos.
func (s *Scopes) GetByPos(pos token.Pos) ast.Node {
	res := lookup(s.tree, pos)
	if res == nil {
		return nil
	}
	return descendSearch(res, pos)
}

// Add registers a node with its [start,end] span.
func (s *Scopes) Add(node ast.Node, start, end token.Pos) {
	attachInto(s.tree, &scopeSpan{start: start, end: end, node: node})
}

// AddNode registers a node with the span it occupies in the source.
func (s *Scopes) AddNode(node ast.Node) {
	s.Add(node, node.Pos(), node.End()-1)
}

// FileScopes builds an index of function bodies, function literals and
// parenthesized declaration groups of the file.
func FileScopes(file *ast.File) *Scopes {
	s := NewScopes()
	ast.Inspect(file, func(n ast.Node) bool {
		switch v := n.(type) {
		case *ast.FuncDecl:
			if v.Body != nil {
				s.AddNode(v.Body)
			}
		case *ast.FuncLit:
			s.AddNode(v.Body)
		case *ast.GenDecl:
			if v.Lparen.IsValid() {
				s.Add(v, v.Lparen, v.Rparen)
			}
		case *ast.StructType:
			s.Add(v, v.Fields.Opening, v.Fields.Closing)
		case *ast.InterfaceType:
			s.Add(v, v.Methods.Opening, v.Methods.Closing)
		}
		return true
	})

	return s
}
