package smarterr

// IntoError is implemented by generated context types. It turns the
// context and a cause into an error of the set declaring the variant.
type IntoError[S any, E error] interface {
	IntoError(src S) E
}
