package model

// ErrorsetUnion is an errorset union extracted from a function signature:
//
//	func F() (T, interface{ *E1 | pkg.E2 })
type ErrorsetUnion struct {
	Name     string
	Package  string
	Elements []*UnionElement
}

// UnionElement is a deduplicated member of an errorset union.
type UnionElement struct {
	Span

	// Name is the last identifier of the type, E1 for *E1.
	Name string
	Type *Type
}

// CaseName returns the name of the case type of the element.
func (u *ErrorsetUnion) CaseName(e *UnionElement) string {
	return u.Name + Export(e.Name)
}
