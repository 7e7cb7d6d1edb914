package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/sirkon/smarterr/internal/diag"
	"github.com/sirkon/smarterr/internal/model"
	"github.com/sirkon/smarterr/internal/rules"
)

// converter turns grammar nodes of a single directive into the model.
type converter struct {
	d      *Directive
	rp     *diag.ReporterPhase
	failed bool
}

func (p *Parser) converter(d *Directive) *converter {
	return &converter{d: d, rp: p.rp}
}

func (c *converter) span(pos, end lexer.Position) model.Span {
	return model.Span{
		Pos: c.d.At(pos.Offset),
		End: c.d.At(end.Offset),
	}
}

func (c *converter) name(n *identNode) model.Name {
	return model.Name{
		Span:  c.span(n.Pos, n.EndPos),
		Value: n.Value,
	}
}

func (c *converter) own(n *ownNode) *model.Variant {
	v := &model.Variant{
		Span:       c.span(n.Pos, n.EndPos),
		Name:       c.name(n.Name),
		Visibility: visibility(n.Vis),
		Source:     model.SourceNone,
	}

	if src := n.Source; src != nil {
		switch {
		case src.Debug != nil && src.Debug.Type != nil:
			v.Source = model.SourceBoxedDebug
			v.SourceType = c.typ(src.Debug.Type)
		case src.Debug != nil:
			v.Source = model.SourceDynDebug
		case src.Plain != nil && src.Plain.Type != nil:
			v.Source = model.SourceTyped
			v.SourceType = c.typ(src.Plain.Type)
		case src.Plain != nil:
			v.Source = model.SourceDynError
		}
	}

	if n.Fields != nil {
		v.Fields = &model.FieldList{
			Span: c.span(n.Fields.Pos, n.Fields.EndPos),
		}
		seen := map[string]struct{}{}
		for _, f := range n.Fields.Fields {
			field := &model.Field{
				Span:       c.span(f.Pos, f.EndPos),
				Name:       c.name(f.Name),
				Visibility: visibility(f.Vis),
				Type:       c.typ(f.Type),
			}
			if _, ok := seen[field.Name.Value]; ok {
				c.errorf(rules.SER001Syntax, field.Name.Span, "duplicate field %s of %s", field.Name, v.Name)
				continue
			}
			seen[field.Name.Value] = struct{}{}
			v.Fields.Fields = append(v.Fields.Fields, field)
		}
	}

	if n.Message != nil {
		v.Message = *n.Message
	}

	return v
}

func (c *converter) inherited(n *inheritedNode) *model.Inherited {
	res := &model.Inherited{
		Span:      c.span(n.Pos, n.EndPos),
		SourceSet: c.name(n.Source),
	}

	for _, item := range n.Items {
		switch {
		case item.Handled != nil:
			h := &model.Handled{
				Span: c.span(item.Handled.Pos, item.Handled.EndPos),
			}
			for _, name := range item.Handled.Names {
				h.Names = append(h.Names, c.name(name))
			}
			res.Items = append(res.Items, h)

		case item.Own != nil:
			v := c.own(item.Own)
			if v.Fields != nil {
				c.errorf(
					rules.SER002InheritedFields,
					v.Fields.Span,
					"inherited variant %s cannot declare context fields, they come from %s",
					v.Name,
					res.SourceSet,
				)
				continue
			}
			res.Items = append(res.Items, model.Unhandled{Variant: v})
		}
	}

	return res
}

func (c *converter) typ(n *typeNode) *model.Type {
	t := &model.Type{
		Span: c.span(n.Pos, n.EndPos),
	}

	var b strings.Builder
	renderType(&b, n, t)
	t.Text = b.String()
	return t
}

func (c *converter) errorf(rule rules.Rule, span model.Span, format string, a ...any) {
	c.failed = true
	c.rp.Errorf(rule, span.Pos, span.End, format, a...)
}

func renderType(b *strings.Builder, n *typeNode, t *model.Type) {
	switch {
	case n.Pointer != nil:
		b.WriteByte('*')
		renderType(b, n.Pointer, t)
	case n.Slice != nil:
		b.WriteString("[" + n.Slice.Len + "]")
		renderType(b, n.Slice.Elem, t)
	case n.Map != nil:
		b.WriteString("map[")
		renderType(b, n.Map.Key, t)
		b.WriteByte(']')
		renderType(b, n.Map.Elem, t)
	case n.Chan != nil:
		b.WriteString("chan ")
		renderType(b, n.Chan, t)
	case n.Empty != "":
		b.WriteString(n.Empty + "{}")
	case n.Named != nil:
		parts := n.Named.Parts
		if len(parts) == 2 {
			addUnique(&t.Qualifiers, parts[0])
		} else if !IsPredeclared(parts[0]) {
			addUnique(&t.Locals, parts[0])
		}
		b.WriteString(strings.Join(parts, "."))

		if len(n.Named.Args) > 0 {
			b.WriteByte('[')
			for i, arg := range n.Named.Args {
				if i > 0 {
					b.WriteString(", ")
				}
				renderType(b, arg, t)
			}
			b.WriteByte(']')
		}
	}
}

func visibility(v string) model.Visibility {
	switch v {
	case "pub":
		return model.VisibilityExported
	case "priv":
		return model.VisibilityUnexported
	default:
		return model.VisibilityAsIs
	}
}

func addUnique(dst *[]string, v string) {
	for _, s := range *dst {
		if s == v {
			return
		}
	}

	*dst = append(*dst, v)
}
