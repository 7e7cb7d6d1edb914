package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
)

type printer struct {
	buf    bytes.Buffer
	indent int
}

func (p *printer) line(format string, a ...any) {
	p.buf.WriteString(strings.Repeat("\t", p.indent))
	fmt.Fprintf(&p.buf, format, a...)
	p.buf.WriteByte('\n')
}

func (p *printer) doc(text string) {
	if text == "" {
		return
	}

	for _, l := range strings.Split(text, "\n") {
		p.line("// %s", l)
	}
}

func (p *printer) block(stmts []Stmt) {
	p.indent++
	for _, s := range stmts {
		s.print(p)
	}
	p.indent--
}

// Render prints declarations separated with empty lines. The text is not
// formatted.
func Render(decls []Decl) string {
	var p printer
	for i, d := range decls {
		if i > 0 {
			p.buf.WriteByte('\n')
		}
		d.print(&p)
	}

	return p.buf.String()
}

// RenderStmts prints statements at the given indentation level.
func RenderStmts(stmts []Stmt, indent int) string {
	p := printer{indent: indent}
	for _, s := range stmts {
		s.print(&p)
	}

	return p.buf.String()
}

// Import of a generated file.
type Import struct {
	Name string
	Path string
}

// Source renders a complete formatted file.
func Source(header, pkg string, imports []Import, decls []Decl) ([]byte, error) {
	var b strings.Builder
	if header != "" {
		b.WriteString(header)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "package %s\n\n", pkg)

	if len(imports) > 0 {
		b.WriteString("import (\n")
		for _, imp := range imports {
			if imp.Name != "" {
				fmt.Fprintf(&b, "\t%s %s\n", imp.Name, strconv.Quote(imp.Path))
			} else {
				fmt.Fprintf(&b, "\t%s\n", strconv.Quote(imp.Path))
			}
		}
		b.WriteString(")\n\n")
	}
	b.WriteString(Render(decls))

	res, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}

	return res, nil
}

func (d *TypeDecl) print(p *printer) {
	p.doc(d.Doc)
	switch t := d.Type.(type) {
	case *StructType:
		if len(t.Fields) == 0 {
			p.line("type %s struct{}", d.Name)
			return
		}
	case *InterfaceType:
		if len(t.Embeds)+len(t.Methods) == 0 {
			p.line("type %s interface{}", d.Name)
			return
		}
	}

	p.line("type %s %s", d.Name, typeHead(d.Type))
	p.indent++
	d.Type.print(p)
	p.indent--
	p.line("}")
}

func typeHead(t TypeExpr) string {
	if _, ok := t.(*InterfaceType); ok {
		return "interface {"
	}

	return "struct {"
}

func (t *StructType) print(p *printer) {
	for _, f := range t.Fields {
		p.line("%s", joinNonEmpty(f.Name, f.Type))
	}
}

func (t *InterfaceType) print(p *printer) {
	for _, e := range t.Embeds {
		p.line("%s", e)
	}
	for _, m := range t.Methods {
		p.line("%s", m.String())
	}
}

func (s Signature) String() string {
	return s.Name + "(" + params(s.Params) + ")" + results(s.Results)
}

func (d *FuncDecl) print(p *printer) {
	p.doc(d.Doc)

	var recv string
	if d.Recv != nil {
		recv = "(" + joinNonEmpty(d.Recv.Name, d.Recv.Type) + ") "
	}

	if len(d.Body) == 0 {
		p.line("func %s%s {}", recv, d.Signature.String())
		return
	}

	p.line("func %s%s {", recv, d.Signature.String())
	p.block(d.Body)
	p.line("}")
}

func (s *Return) print(p *printer) {
	if len(s.Values) == 0 {
		p.line("return")
		return
	}

	p.line("return %s", strings.Join(s.Values, ", "))
}

func (s *Define) print(p *printer) {
	lit := s.Value
	p.line("%s := func(%s)%s {", s.Name, params(lit.Params), results(lit.Results))
	p.block(lit.Body)
	p.line("}")
}

func (s *TypeSwitch) print(p *printer) {
	p.line("switch %s := %s.(type) {", s.Bind, s.X)
	for _, c := range s.Cases {
		if len(c.Types) == 0 {
			p.line("default:")
		} else {
			p.line("case %s:", strings.Join(c.Types, ", "))
		}
		p.block(c.Body)
	}
	p.line("}")
}

func (s *Panic) print(p *printer) {
	p.line("panic(%s)", s.Value)
}

func (s *Discard) print(p *printer) {
	p.line("_ = %s", s.Name)
}

func params(fields []Field) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, joinNonEmpty(f.Name, f.Type))
	}

	return strings.Join(parts, ", ")
}

func results(types []string) string {
	switch len(types) {
	case 0:
		return ""
	case 1:
		return " " + types[0]
	default:
		return " (" + strings.Join(types, ", ") + ")"
	}
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}
