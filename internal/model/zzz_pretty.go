package model

import (
	"fmt"
	"strings"
)

// Pretty renders resolved sets in a compact human-readable form.
func Pretty(sets []*ResolvedSet) string {
	var b strings.Builder
	for _, set := range sets {
		set.pretty(&b)
	}

	return b.String()
}

func (s *ResolvedSet) pretty(b *strings.Builder) {
	if s.Package != "" {
		fmt.Fprintf(b, "Set %s.%s {\n", s.Package, s.Name)
	} else {
		fmt.Fprintf(b, "Set %s {\n", s.Name)
	}

	for _, v := range s.Variants {
		b.WriteString("  ")
		b.WriteString(v.GoName)
		if v.Local() {
			b.WriteString(v.Source.Syntax(v.SourceType))
			if fields := v.ContextFields(); len(fields) > 0 {
				parts := make([]string, 0, len(fields))
				for _, f := range fields {
					parts = append(parts, f.GoName(s.Fallback)+": "+f.Type.Text)
				}
				fmt.Fprintf(b, " { %s }", strings.Join(parts, ", "))
			}
			if v.Message != "" {
				fmt.Fprintf(b, " -> %q", v.Message)
			}
		} else {
			fmt.Fprintf(b, " (from %s)", v.From)
		}
		b.WriteByte('\n')
	}

	for _, blk := range s.Blocks {
		fmt.Fprintf(b, "  From %s {\n", blk.SourceSet)
		if len(blk.PassThrough) > 0 {
			fmt.Fprintf(b, "    pass %s\n", strings.Join(blk.PassThrough, ", "))
		}
		if blk.HasHandled() {
			fmt.Fprintf(b, "    handled %s\n", strings.Join(blk.Handled, ", "))
		}
		b.WriteString("  }\n")
	}
	b.WriteString("}\n")
}
