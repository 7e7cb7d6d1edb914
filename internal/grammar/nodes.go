package grammar

import "github.com/alecthomas/participle/v2/lexer"

// errorsNode is the payload of smarterr:errors.
type errorsNode struct {
	Defs []*defNode `parser:"( @@ ( ',' @@ )* ','? )?"`
}

type defNode struct {
	From *inheritedNode `parser:"  @@"`
	Own  *ownNode       `parser:"| @@"`
}

type inheritedNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Source *identNode           `parser:"'from' @@"`
	Items  []*inheritedItemNode `parser:"'{' ( @@ ( ',' @@ )* ','? )? '}'"`
}

type inheritedItemNode struct {
	Handled *handledNode `parser:"  @@"`
	Own     *ownNode     `parser:"| @@"`
}

type handledNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Names []*identNode `parser:"'handled' ( '{' @@ ( ',' @@ )* ','? '}' | @@ )"`
}

type ownNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Vis     string      `parser:"@( 'pub' | 'priv' )?"`
	Name    *identNode  `parser:"@@"`
	Source  *sourceNode `parser:"@@?"`
	Fields  *fieldsNode `parser:"@@?"`
	Message *string     `parser:"( '->' @String )?"`
}

type sourceNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Debug *debugSourceNode `parser:"  @@"`
	Plain *plainSourceNode `parser:"| @@"`
}

// debugSourceNode is <<T>> or <<>>.
type debugSourceNode struct {
	Type *typeNode `parser:"'<' '<' @@? '>' '>'"`
}

// plainSourceNode is <T> or <>.
type plainSourceNode struct {
	Type *typeNode `parser:"'<' @@? '>'"`
}

type fieldsNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Fields []*fieldNode `parser:"'{' ( @@ ( ',' @@ )* ','? )? '}'"`
}

type fieldNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Vis  string     `parser:"@( 'pub' | 'priv' )?"`
	Name *identNode `parser:"@@ ':'"`
	Type *typeNode  `parser:"@@"`
}

type typeNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Pointer *typeNode  `parser:"  '*' @@"`
	Slice   *sliceNode `parser:"| @@"`
	Map     *mapNode   `parser:"| @@"`
	Chan    *typeNode  `parser:"| 'chan' @@"`
	Empty   string     `parser:"| @( 'interface' | 'struct' ) '{' '}'"`
	Named   *namedNode `parser:"| @@"`
}

type sliceNode struct {
	Len  string    `parser:"'[' @Int? ']'"`
	Elem *typeNode `parser:"@@"`
}

type mapNode struct {
	Key  *typeNode `parser:"'map' '[' @@ ']'"`
	Elem *typeNode `parser:"@@"`
}

type namedNode struct {
	Parts []string    `parser:"@Ident ( '.' @Ident )?"`
	Args  []*typeNode `parser:"( '[' @@ ( ',' @@ )* ']' )?"`
}

type identNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Value string `parser:"@Ident"`
}

// fledgedNode is the payload of smarterr:set.
type fledgedNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Vis      string     `parser:"@( 'pub' | 'priv' )?"`
	Name     *identNode `parser:"@@"`
	Variants []*ownNode `parser:"'{' ( @@ ( ',' @@ )* ','? )? '}'"`
}

// moduleNode is the payload of smarterr:mod.
type moduleNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Vis  string     `parser:"@( 'pub' | 'priv' )?"`
	Name *identNode `parser:"@@"`
}

// errorsetNode is the payload of errorset.
type errorsetNode struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Vis    string     `parser:"@( 'pub' | 'priv' )?"`
	Module *identNode `parser:"( 'mod' @@ )?"`
}
