package emit

// Decl is a top level declaration.
type Decl interface {
	print(p *printer)
	DeclName() string
}

// Stmt is a statement of a function body.
type Stmt interface {
	print(p *printer)
}

// TypeExpr is a type of a type declaration.
type TypeExpr interface {
	print(p *printer)
}

// Field is a struct field or a function parameter. Either part can be empty
// for embedded fields and unnamed parameters.
type Field struct {
	Name string
	Type string
}

// TypeDecl declares a named type.
type TypeDecl struct {
	Doc  string
	Name string
	Type TypeExpr
}

// StructType is a struct definition.
type StructType struct {
	Fields []Field
}

// InterfaceType is an interface definition.
type InterfaceType struct {
	Embeds  []string
	Methods []Signature
}

// Signature of a function or an interface method.
type Signature struct {
	Name    string
	Params  []Field
	Results []string
}

// FuncDecl declares a function or a method.
type FuncDecl struct {
	Doc  string
	Recv *Field
	Signature
	Body []Stmt
}

// Return statement.
type Return struct {
	Values []string
}

// Define declares a local closure: name := func(...) ... { ... }.
type Define struct {
	Name  string
	Value *FuncLit
}

// FuncLit is a function literal.
type FuncLit struct {
	Params  []Field
	Results []string
	Body    []Stmt
}

// TypeSwitch is switch bind := x.(type) { ... }.
type TypeSwitch struct {
	Bind  string
	X     string
	Cases []Case
}

// Case of a type switch. A case without types is the default one.
type Case struct {
	Types []string
	Body  []Stmt
}

// Panic statement.
type Panic struct {
	Value string
}

// Discard is _ = name, it keeps closures nobody called from being errors.
type Discard struct {
	Name string
}

// DeclName returns the declared type name.
func (d *TypeDecl) DeclName() string { return d.Name }

// DeclName returns the function name, methods are prefixed with the
// receiver type: (*AlfaError).Error.
func (d *FuncDecl) DeclName() string {
	if d.Recv == nil {
		return d.Name
	}

	return "(" + d.Recv.Type + ")." + d.Name
}
