package grammar

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var directiveLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"|` + "`[^`]*`"},
	{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{Nd}_]*`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Punct", Pattern: `[{}\[\]<>,:.*]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var (
	errorsParser   = buildParser[errorsNode]()
	fledgedParser  = buildParser[fledgedNode]()
	moduleParser   = buildParser[moduleNode]()
	errorsetParser = buildParser[errorsetNode]()
)

func buildParser[G any]() *participle.Parser[G] {
	return participle.MustBuild[G](
		participle.Lexer(directiveLexer),
		participle.Elide("Whitespace"),
		participle.Unquote("String"),
		participle.UseLookahead(4),
	)
}
