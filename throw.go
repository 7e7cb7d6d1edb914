package smarterr

import (
	"reflect"
)

// Failed checks if the value is in the failed state:
//
//   - numbers other than zero
//   - false
//   - empty strings, slices, maps and arrays
//   - nil pointers, interfaces, channels and functions
//
// Struct values never fail.
func Failed(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// Throw returns v when it is not failed. Otherwise, the error built by
// errMap out of v is returned.
//
// Use the set type as E: a nil pointer to a variant returned as a set
// would be a non-nil error.
func Throw[T any, E error](v T, errMap func(T) E) (T, E) {
	var noerr E
	if !Failed(v) {
		return v, noerr
	}

	var zero T
	return zero, errMap(v)
}

// Raise is Throw with the failure condition inverted: it returns failed
// values as is and turns the rest into errors.
func Raise[T any, E error](v T, errMap func(T) E) (T, E) {
	var noerr E
	if Failed(v) {
		return v, noerr
	}

	var zero T
	return zero, errMap(v)
}

// ThrowErr maps the error of a call. v is returned as is when err is nil.
func ThrowErr[T any, E error](v T, err error, errMap func(error) E) (T, E) {
	var noerr E
	if err == nil {
		return v, noerr
	}

	var zero T
	return zero, errMap(err)
}

// RaiseErr is ThrowErr inverted: a successful call is turned into an error
// by errMap, the error of a failed one is returned as the value.
func RaiseErr[T any, E error](v T, err error, errMap func(T) E) (error, E) {
	var noerr E
	if err != nil {
		return err, noerr
	}

	return nil, errMap(v)
}

// ThrowCtx is Throw with a generated context turning into the error. The
// failed value becomes its cause.
func ThrowCtx[T any, E error](v T, ctx IntoError[T, E]) (T, E) {
	return Throw(v, ctx.IntoError)
}

// RaiseCtx is Raise with a generated context turning into the error.
func RaiseCtx[T any, E error](v T, ctx IntoError[T, E]) (T, E) {
	return Raise(v, ctx.IntoError)
}
