package emit

import (
	"fmt"

	"github.com/sirkon/smarterr/internal/model"
)

// Set emits declarations of a resolved set: the union, wrappers and
// contexts of its own variants and markers of variants passed through.
func (e *Emitter) Set(set *model.ResolvedSet) []Decl {
	res := []Decl{
		&TypeDecl{
			Doc:  fmt.Sprintf("%s is a generated error set.", set.Name),
			Name: set.Name,
			Type: &InterfaceType{
				Embeds: []string{"error"},
				Methods: []Signature{
					{Name: "Unwrap", Results: []string{"error"}},
					{Name: "DefaultMessage", Results: []string{"string"}},
					{Name: markerName(set.Name)},
				},
			},
		},
	}

	for _, v := range set.Variants {
		if v.Local() {
			res = append(res, e.variant(set, v)...)
			continue
		}

		res = append(res, marker(set, v.GoName))
	}

	return res
}

func marker(set *model.ResolvedSet, variant string) Decl {
	return &FuncDecl{
		Recv: &Field{Type: "*" + variant},
		Signature: Signature{
			Name: markerName(set.Name),
		},
	}
}

func (e *Emitter) variant(set *model.ResolvedSet, v *model.ResolvedVariant) []Decl {
	storage := e.storage(v.Variant)

	var fields []Field
	if storage != "" {
		fields = append(fields, Field{Name: "Src", Type: storage})
	}
	fields = append(fields, Field{Name: "Ctx", Type: v.CtxName()})

	text := []string{"e.DefaultMessage() + " + e.rt("Describe") + "(e.Ctx)"}
	if v.Source.HasCause() {
		text[0] += " + " + e.rt("CausedBy") + "(e.Src)"
	}

	unwrap := "nil"
	if v.Source.Exposed() {
		unwrap = "e.Src"
	}

	recv := &Field{Name: "e", Type: "*" + v.GoName}
	return []Decl{
		&TypeDecl{
			Doc:  fmt.Sprintf("%s is a variant of %s.", v.GoName, set.Name),
			Name: v.GoName,
			Type: &StructType{Fields: fields},
		},
		&FuncDecl{
			Recv:      recv,
			Signature: Signature{Name: "Error", Results: []string{"string"}},
			Body:      []Stmt{&Return{Values: text}},
		},
		&FuncDecl{
			Recv:      recv,
			Signature: Signature{Name: "Unwrap", Results: []string{"error"}},
			Body:      []Stmt{&Return{Values: []string{unwrap}}},
		},
		&FuncDecl{
			Recv:      recv,
			Signature: Signature{Name: "DefaultMessage", Results: []string{"string"}},
			Body:      []Stmt{&Return{Values: []string{quote(v.Message)}}},
		},
		marker(set, v.GoName),
		e.context(set, v),
		e.goString(set, v),
		e.intoError(set, v),
	}
}

// storage returns the type of the cause field, an empty string for
// variants without a cause.
func (e *Emitter) storage(v *model.Variant) string {
	switch v.Source {
	case model.SourceTyped:
		return v.SourceType.Text
	case model.SourceDynError:
		return "error"
	case model.SourceBoxedDebug:
		return e.rt("RawError") + "[" + v.SourceType.Text + "]"
	case model.SourceDynDebug:
		return e.rt("RawError") + "[any]"
	default:
		return ""
	}
}

// param returns the cause parameter type of IntoError.
func (e *Emitter) param(v *model.Variant) string {
	switch v.Source {
	case model.SourceTyped, model.SourceBoxedDebug:
		return v.SourceType.Text
	case model.SourceDynError:
		return "error"
	default:
		return "any"
	}
}

func (e *Emitter) context(set *model.ResolvedSet, v *model.ResolvedVariant) Decl {
	var fields []Field
	for _, f := range v.ContextFields() {
		fields = append(fields, Field{Name: f.GoName(set.Fallback), Type: f.Type.Text})
	}

	return &TypeDecl{
		Doc:  fmt.Sprintf("%s is the context of %s.", v.CtxName(), v.GoName),
		Name: v.CtxName(),
		Type: &StructType{Fields: fields},
	}
}

func (e *Emitter) goString(set *model.ResolvedSet, v *model.ResolvedVariant) Decl {
	args := quote(v.CtxName())
	for _, f := range v.ContextFields() {
		args += ", " + quote(f.Name.Value) + ", c." + f.GoName(set.Fallback)
	}

	return &FuncDecl{
		Recv:      &Field{Name: "c", Type: v.CtxName()},
		Signature: Signature{Name: "GoString", Results: []string{"string"}},
		Body: []Stmt{
			&Return{Values: []string{e.rt("DebugStruct") + "(" + args + ")"}},
		},
	}
}

func (e *Emitter) intoError(set *model.ResolvedSet, v *model.ResolvedVariant) Decl {
	param := Field{Name: "src", Type: e.param(v.Variant)}
	value := "&" + v.GoName + "{Src: src, Ctx: c}"
	switch {
	case !v.Source.HasCause():
		param.Name = ""
		value = "&" + v.GoName + "{Ctx: c}"
	case v.Source == model.SourceBoxedDebug || v.Source == model.SourceDynDebug:
		value = "&" + v.GoName + "{Src: " + e.rt("NewRawError") + "(src), Ctx: c}"
	}

	return &FuncDecl{
		Recv: &Field{Name: "c", Type: v.CtxName()},
		Signature: Signature{
			Name:    "IntoError",
			Params:  []Field{param},
			Results: []string{set.Name},
		},
		Body: []Stmt{&Return{Values: []string{value}}},
	}
}
