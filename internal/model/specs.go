package model

// SmartErrorSpec is the payload of smarterr:errors put on a function.
type SmartErrorSpec struct {
	Span
	Defs []ErrorDef
}

// FledgedSpec is the payload of smarterr:set: a standalone error set.
type FledgedSpec struct {
	Span
	Name       Name
	Visibility Visibility
	Variants   []*Variant
}

// ModuleSpec is the payload of smarterr:mod and of errorset mod: the
// package generated declarations are moved into.
type ModuleSpec struct {
	Span
	Name Name

	// Visibility priv puts the package under internal/.
	Visibility Visibility
}

// ErrorsetArgs is the payload of an errorset directive.
type ErrorsetArgs struct {
	Span
	Visibility Visibility
	Module     *ModuleSpec
}

// Own returns own variants of the spec in declaration order.
func (s *SmartErrorSpec) Own() []*Variant {
	var res []*Variant
	for _, d := range s.Defs {
		if v, ok := d.(*Variant); ok {
			res = append(res, v)
		}
	}

	return res
}

// Inherited returns inherited blocks of the spec in declaration order.
func (s *SmartErrorSpec) Inherited() []*Inherited {
	var res []*Inherited
	for _, d := range s.Defs {
		if b, ok := d.(*Inherited); ok {
			res = append(res, b)
		}
	}

	return res
}

// Path returns the import path suffix of the module relative to the
// package of the template.
func (m *ModuleSpec) Path() string {
	if m.Visibility == VisibilityUnexported {
		return "internal/" + m.Name.Value
	}

	return m.Name.Value
}
