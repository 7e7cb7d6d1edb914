package grammar

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sirkon/smarterr/internal/rules"
)

func TestErrorsetShape(t *testing.T) {
	_, file := parseSource(t, `package p

func Union() (int, interface{ *AError | io.EOFError | *AError | pkg.BError[int] }) {}
func Named() (v int, err interface{ *AError }) {}
func Plain() (int, error) {}
func Single() error {}
func NoResults() {}
func Arity() (int, string, interface{ *AError }) {}
func Shape() (int, []error) {}
func Methods() (int, interface{ Error() string }) {}
func Tilde() (int, interface{ ~int | *AError }) {}
`)

	funcs := map[string]*ast.FuncDecl{}
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			funcs[fn.Name.Name] = fn
		}
	}

	t.Run("union", func(t *testing.T) {
		p, r := newParser()
		shape, ok := p.ErrorsetShape(funcs["Union"])
		require.True(t, ok, r.Reports())
		require.True(t, shape.Changed())
		require.Len(t, shape.Elements, 3)
		require.Equal(t, "AError", shape.Elements[0].Name)
		require.Equal(t, "*AError", shape.Elements[0].Type.Text)
		require.Equal(t, []string{"AError"}, shape.Elements[0].Type.Locals)
		require.Equal(t, "EOFError", shape.Elements[1].Name)
		require.Equal(t, []string{"io"}, shape.Elements[1].Type.Qualifiers)
		require.Equal(t, "BError", shape.Elements[2].Name)
		require.Equal(t, "pkg.BError[int]", shape.Elements[2].Type.Text)
	})

	t.Run("named", func(t *testing.T) {
		p, _ := newParser()
		shape, ok := p.ErrorsetShape(funcs["Named"])
		require.True(t, ok)
		require.Len(t, shape.Elements, 1)
		require.Equal(t, "err", shape.Field.Names[0].Name)
	})

	for _, name := range []string{"Plain", "Single"} {
		t.Run(name, func(t *testing.T) {
			p, r := newParser()
			shape, ok := p.ErrorsetShape(funcs[name])
			require.True(t, ok)
			require.False(t, shape.Changed())
			require.Empty(t, r.Reports())
		})
	}

	failures := map[string]rules.Rule{
		"NoResults": rules.SER011MissingResults,
		"Arity":     rules.SER012ErrorsetArity,
		"Shape":     rules.SER013ErrorsetShape,
		"Methods":   rules.SER013ErrorsetShape,
		"Tilde":     rules.SER013ErrorsetShape,
	}
	for name, rule := range failures {
		t.Run(name, func(t *testing.T) {
			p, r := newParser()
			_, ok := p.ErrorsetShape(funcs[name])
			require.False(t, ok)
			reports := r.Reports()
			require.Len(t, reports, 1)
			require.Equal(t, rule, reports[0].Rule)
		})
	}
}
