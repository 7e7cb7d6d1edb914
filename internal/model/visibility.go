package model

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Visibility of a generated identifier.
type Visibility int

const (
	// VisibilityAsIs keeps the name as it was written.
	VisibilityAsIs Visibility = iota

	// VisibilityExported is set with pub.
	VisibilityExported

	// VisibilityUnexported is set with priv.
	VisibilityUnexported
)

var visibilityValueMap = map[Visibility]string{
	VisibilityAsIs:       "",
	VisibilityExported:   "pub",
	VisibilityUnexported: "priv",
}

func (v Visibility) String() string {
	s, ok := visibilityValueMap[v]
	if !ok {
		return fmt.Sprintf("invalid(%d)", v)
	}

	return s
}

// Or returns fallback for VisibilityAsIs and v itself otherwise.
func (v Visibility) Or(fallback Visibility) Visibility {
	if v == VisibilityAsIs {
		return fallback
	}

	return v
}

// Apply adjusts the case of the name.
func (v Visibility) Apply(name string) string {
	switch v {
	case VisibilityExported:
		return Export(name)
	case VisibilityUnexported:
		return Unexport(name)
	default:
		return name
	}
}

// Export makes the first letter of the name upper case.
func Export(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || unicode.IsUpper(r) {
		return name
	}

	return string(unicode.ToUpper(r)) + name[size:]
}

// Unexport lowers the leading upper case run of the name. The last letter
// of the run stays upper case when it starts the next word: HTTPError
// becomes httpError and ID becomes id.
func Unexport(name string) string {
	runes := []rune(name)
	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}
	if n > 1 && n < len(runes) && unicode.IsLower(runes[n]) {
		n--
	}
	for i := 0; i < n; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}
