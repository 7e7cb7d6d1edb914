package model

import "go/token"

// Node is implemented by all declaration nodes.
type Node interface {
	Bounds() Span
}

// ErrorDef is a top-level definition of a function error set: either an own
// variant or an inherited block.
type ErrorDef interface {
	Node
	isErrorDef()
}

// InheritedItem is an entry of an inherited block: either a pass-through
// redeclaration or a handled list.
type InheritedItem interface {
	Node
	isInheritedItem()
}

// Span is a range of a declaration within the template file.
type Span struct {
	Pos token.Pos
	End token.Pos
}

// Bounds returns the span itself.
func (s Span) Bounds() Span { return s }

// IsValid checks if the span points somewhere.
func (s Span) IsValid() bool { return s.Pos.IsValid() }

// Name is an identifier together with its location.
type Name struct {
	Span
	Value string
}

func (n Name) String() string { return n.Value }
