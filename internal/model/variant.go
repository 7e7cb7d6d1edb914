package model

// Variant is a declaration of an error variant:
//
//	[pub|priv] Name [<Type>|<<Type>>|<>|<<>>] [{ field: Type, ... }] [-> "message"]
type Variant struct {
	Span
	Name       Name
	Visibility Visibility
	Source     SourceKind
	SourceType *Type

	// Fields is nil when no field list was given at all.
	Fields  *FieldList
	Message string
}

// FieldList is a braced list of context fields.
type FieldList struct {
	Span
	Fields []*Field
}

// Field of a variant context.
type Field struct {
	Span
	Name       Name
	Visibility Visibility
	Type       *Type
}

func (*Variant) isErrorDef() {}

// ContextFields returns fields of the variant context, nil-safe.
func (v *Variant) ContextFields() []*Field {
	if v.Fields == nil {
		return nil
	}

	return v.Fields.Fields
}

// GoName returns the name of the variant wrapper type.
func (v *Variant) GoName(fallback Visibility) string {
	return v.Visibility.Or(fallback).Apply(v.Name.Value)
}

// GoName returns the name of the field in the generated context struct.
func (f *Field) GoName(fallback Visibility) string {
	return f.Visibility.Or(fallback).Apply(f.Name.Value)
}

// Types lists all type expressions the variant refers to.
func (v *Variant) Types() []*Type {
	var res []*Type
	if v.SourceType != nil {
		res = append(res, v.SourceType)
	}
	for _, f := range v.ContextFields() {
		res = append(res, f.Type)
	}

	return res
}
