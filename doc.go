// Package smarterr is the runtime support of code generated by the smarterr
// command.
//
// Generated error sets are sealed interfaces. Every variant of a set is a
// wrapper struct keeping a context and an optional cause, and every context
// type turns into the set with its IntoError method:
//
//	func Parse(s string) (int, ParseError) {
//		v, err := strconv.Atoi(s)
//		if err != nil {
//			return 0, BadNumberCtx{input: s}.IntoError(err)
//		}
//
//		return v, nil
//	}
//
// Helpers of this package build errors out of plain values: numbers other
// than zero, false, empty strings, slices and maps and nil pointers are
// failures.
package smarterr
