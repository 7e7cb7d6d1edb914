package model

// Type is a Go type expression taken from a directive.
type Type struct {
	Span

	// Text is the Go rendering of the type, like *strconv.NumError.
	Text string

	// Qualifiers are package names the type refers to, strconv for the above.
	Qualifiers []string

	// Locals are unqualified identifiers of the type which are not
	// predeclared, thus they belong to the package of the template.
	Locals []string
}

func (t *Type) String() string {
	if t == nil {
		return ""
	}

	return t.Text
}
