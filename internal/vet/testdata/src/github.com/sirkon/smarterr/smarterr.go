// Package smarterr mirrors signatures of the runtime helpers.
package smarterr

func Throw[T any, E error](v T, errMap func(T) E) (T, E) {
	var e E
	return v, e
}

func Raise[T any, E error](v T, errMap func(T) E) (T, E) {
	var e E
	return v, e
}
