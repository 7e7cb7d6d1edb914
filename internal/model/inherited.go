package model

// Inherited is a from block:
//
//	from SourceSet { item, ... }
type Inherited struct {
	Span
	SourceSet Name
	Items     []InheritedItem
}

// Unhandled is a redeclaration of a source set variant. Such variants
// pass through into the target set unchanged.
type Unhandled struct {
	*Variant
}

// Handled lists source variants intercepted by the caller.
type Handled struct {
	Span
	Names []Name
}

func (*Inherited) isErrorDef()     {}
func (Unhandled) isInheritedItem() {}
func (*Handled) isInheritedItem()  {}

// Bounds returns the span of the redeclaration.
func (u Unhandled) Bounds() Span { return u.Variant.Span }
