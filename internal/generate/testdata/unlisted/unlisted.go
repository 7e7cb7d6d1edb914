//go:build smarterr

package unlisted

//smarterr:errors
//	AError,
//	BError,
func Inner(v int) {
	return nil
}

//smarterr:errors
//	from InnerError {
//		AError,
//	},
func Outer(v int) {
	return fromInnerError(Inner(v))
}
