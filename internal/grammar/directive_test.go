package grammar

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const directiveSource = `package greek

// GreekFunc returns letters.
//
//smarterr:errors
//	AlfaError{ind: int} -> "Alfa error",
//	BetaError<>{ind: int} -> "Beta error",
//
// The rest of the doc.
//go:noinline
func GreekFunc() {}

//errorset pub mod errs
type Holder struct{}

//smarterrless comment
//errorsets are not directives
func Other() {}
`

func parseSource(t *testing.T, src string) (*token.FileSet, *ast.File) {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "greek.go", src, parser.ParseComments)
	require.NoError(t, err)
	return fset, file
}

func TestFileDirectives(t *testing.T) {
	fset, file := parseSource(t, directiveSource)

	ds := FileDirectives(file)
	require.Len(t, ds, 2)

	errs := ds[0]
	require.Equal(t, VerbErrors, errs.Verb)
	require.Equal(t, "smarterr:errors", errs.Name)
	require.Equal(t, "\n\tAlfaError{ind: int} -> \"Alfa error\",\n\tBetaError<>{ind: int} -> \"Beta error\",", errs.Text)

	for _, word := range []string{"AlfaError", "BetaError", `"Beta error"`} {
		offset := strings.Index(errs.Text, word)
		require.GreaterOrEqual(t, offset, 0)
		require.Equal(
			t,
			strings.Index(directiveSource, word),
			fset.Position(errs.At(offset)).Offset,
			"position of %s", word,
		)
	}
	require.Equal(t, fset.Position(errs.End).Line, 7)

	set := ds[1]
	require.Equal(t, VerbErrorset, set.Verb)
	require.Equal(t, " pub mod errs", set.Text)
	require.Equal(
		t,
		strings.Index(directiveSource, "mod errs"),
		fset.Position(set.At(strings.Index(set.Text, "mod"))).Offset,
	)
}

func TestDirectiveLines(t *testing.T) {
	tests := []struct {
		text         string
		directive    bool
		continuation bool
	}{
		{text: "//smarterr:errors", directive: true},
		{text: "//smarterr:set pub X{}", directive: true},
		{text: "//smarterr:unknown", directive: true},
		{text: "//errorset", directive: true},
		{text: "//errorset pub", directive: true},
		{text: "//errorsets", directive: false},
		{text: "// smarterr:errors", continuation: true},
		{text: "//\tAlfaError,", continuation: true},
		{text: "//", directive: false},
		{text: "//   ", directive: false},
		{text: "/* smarterr:errors */", directive: false},
		{text: "//go:generate smarterr gen", directive: false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			require.Equal(t, tt.directive, IsDirectiveLine(tt.text))
			require.Equal(t, tt.continuation, IsContinuationLine(tt.text))
		})
	}
}

func TestUnknownVerb(t *testing.T) {
	_, file := parseSource(t, "package p\n\n//smarterr:errs X\nfunc F() {}\n")

	ds := FileDirectives(file)
	require.Len(t, ds, 1)
	require.Equal(t, VerbUnknown, ds[0].Verb)
	require.Equal(t, "smarterr:errs", ds[0].Name)
	require.Equal(t, "unknown", ds[0].Verb.String())
}
