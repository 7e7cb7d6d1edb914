package smarterr

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// DebugStruct renders a struct in the form generated contexts use for
// GoString:
//
//	AlfaErrorCtx { ind: -1, ext: "ext" }
//
// kv is a list of field name and value pairs. A struct without fields is
// rendered as its bare name.
func DebugStruct(name string, kv ...any) string {
	if len(kv) == 0 {
		return name
	}

	var b strings.Builder
	b.WriteString(name)
	b.WriteString(" {")
	for i := 0; i+1 < len(kv); i += 2 {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte(' ')
		fmt.Fprint(&b, kv[i])
		b.WriteString(": ")
		b.WriteString(debugValue(kv[i+1]))
	}
	b.WriteString(" }")

	return b.String()
}

// Describe renders the context for an error text. This is the GoString of
// the context without the type name and with double quotes replaced by
// single ones. Contexts without fields are described as an empty string.
func Describe(ctx any) string {
	text := strings.ReplaceAll(fmt.Sprintf("%#v", ctx), `"`, `'`)

	rt := reflect.TypeOf(ctx)
	if rt == nil {
		return ""
	}
	rest, ok := strings.CutPrefix(text, rt.Name())
	if !ok {
		return ""
	}

	return rest
}

// CausedBy renders the cause suffix of an error text.
func CausedBy(src any) string {
	return ", caused by: " + fmt.Sprint(src)
}

// UnexpectedVariant is the panic value of dispatch closures met a variant
// which does not belong to the set.
func UnexpectedVariant(set string, v any) error {
	return fmt.Errorf("unexpected variant %T of %s", v, set)
}

func debugValue(v any) string {
	if v == nil {
		return "nil"
	}

	switch x := v.(type) {
	case fmt.GoStringer:
		return x.GoString()
	case error:
		return strconv.Quote(x.Error())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return strconv.Quote(rv.String())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Pointer:
		if rv.IsNil() {
			return "nil"
		}
		return "&" + debugValue(rv.Elem().Interface())
	default:
		return fmt.Sprintf("%#v", v)
	}
}
