package model

// ResolvedSet is an error set ready for emission.
type ResolvedSet struct {
	// Name of the union type.
	Name string

	// Package is the key of the output package: empty for the package of
	// the template and the module path for hoisted sets.
	Package string

	// Variants are deduplicated variants in emission order: own ones first,
	// then the ones passed through from inherited blocks.
	Variants []*ResolvedVariant

	Blocks []*ResolvedBlock

	// Fallback is the visibility applied to names without explicit one.
	Fallback Visibility
}

// ResolvedVariant is a variant of a resolved set.
type ResolvedVariant struct {
	*Variant

	// GoName is the name of the wrapper type.
	GoName string

	// From is the set the variant passes through from. It is empty for
	// variants declared by the set itself.
	From string
}

// ResolvedBlock is what an inherited block turned into.
type ResolvedBlock struct {
	Span
	SourceSet string

	// PassThrough lists wrapper names going to the target set unchanged.
	PassThrough []string

	// Handled lists wrapper names the caller must intercept.
	Handled []string
}

// Local checks if the variant is declared by the set itself.
func (v *ResolvedVariant) Local() bool {
	return v.From == ""
}

// CtxName returns the name of the variant context type.
func (v *ResolvedVariant) CtxName() string {
	return v.GoName + "Ctx"
}

// Lookup finds a variant by its wrapper name.
func (s *ResolvedSet) Lookup(name string) (*ResolvedVariant, bool) {
	for _, v := range s.Variants {
		if v.GoName == name {
			return v, true
		}
	}

	return nil, false
}

// Local returns variants declared by the set itself.
func (s *ResolvedSet) Local() []*ResolvedVariant {
	var res []*ResolvedVariant
	for _, v := range s.Variants {
		if v.Local() {
			res = append(res, v)
		}
	}

	return res
}

// Inherited returns variants passed through from other sets.
func (s *ResolvedSet) Inherited() []*ResolvedVariant {
	var res []*ResolvedVariant
	for _, v := range s.Variants {
		if !v.Local() {
			res = append(res, v)
		}
	}

	return res
}

// HandleName is the name of the dispatch closure of a block with handled
// variants. Its handler parameters stand for the Handled union.
func (b *ResolvedBlock) HandleName() string {
	return "handle" + Export(b.SourceSet)
}

// FromName is the name of the conversion closure of a pass-through only block.
func (b *ResolvedBlock) FromName() string {
	return "from" + Export(b.SourceSet)
}

// PreludeName returns the name of the closure the block contributes.
func (b *ResolvedBlock) PreludeName() string {
	if b.HasHandled() {
		return b.HandleName()
	}

	return b.FromName()
}

// HasHandled checks if the caller must intercept anything.
func (b *ResolvedBlock) HasHandled() bool {
	return len(b.Handled) > 0
}
