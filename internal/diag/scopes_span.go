package diag

import (
	"go/ast"
	"go/token"

	"github.com/sirkon/rbtree"
)

// scopeSpan stores a [start,end] span of a node and a nested tree for child
// spans fully contained in it.
type scopeSpan struct {
	start token.Pos
	end   token.Pos

	node     ast.Node
	children *rbtree.Tree[*scopeSpan]
}

// Cmp orders spans of one level as disjoint ranges. Overlapping spans
// compare equal, the tree hands the overlapping one back on insertion and
// the containment is resolved by attachInto.
func (n *scopeSpan) Cmp(other *scopeSpan) int {
	if n.end < other.start {
		return -1
	}
	if n.start > other.end {
		return 1
	}
	return 0
}

func contains(a, b *scopeSpan) bool {
	return a.start <= b.start && a.end >= b.end
}

// attachInto inserts s into t:
//   - s lands at this level when it overlaps nothing;
//   - s goes down into the children of an existing span covering it;
//   - spans of this level covered by s go down into the children of s.
func attachInto(t *rbtree.Tree[*scopeSpan], s *scopeSpan) {
	r := t.InsertReturn(s)
	if r == s {
		return
	}

	switch {
	case contains(r, s):
		if r.children == nil {
			r.children = rbtree.New[*scopeSpan]()
		}
		attachInto(r.children, s)

	case contains(s, r):
		var covered []*scopeSpan
		for c := range t.Iter() {
			if c.Cmp(s) != 0 {
				continue
			}
			if !contains(s, c) {
				panic("attachInto: partial-overlap spans are not supported")
			}
			covered = append(covered, c)
		}

		if s.children == nil {
			s.children = rbtree.New[*scopeSpan]()
		}
		for _, c := range covered {
			t.Delete(c)
			attachInto(s.children, c)
		}
		t.Insert(s)

	default:
		panic("attachInto: partial-overlap spans are not supported")
	}
}

// lookup finds the span of the level covering pos. Spans of a level are
// disjoint, so the walk stops at the first one starting after pos.
func lookup(t *rbtree.Tree[*scopeSpan], pos token.Pos) *scopeSpan {
	for sp := range t.Iter() {
		if sp.start > pos {
			break
		}
		if sp.end >= pos {
			return sp
		}
	}

	return nil
}

func descendSearch(n *scopeSpan, pos token.Pos) ast.Node {
	if n.children == nil {
		return n.node
	}
	child := lookup(n.children, pos)
	if child == nil {
		return n.node
	}
	return descendSearch(child, pos)
}
