package model

import "fmt"

// SourceKind tells how a variant keeps its cause.
type SourceKind int

const (
	// SourceNone is a variant without a cause. It is the zero value, so
	// variants built without a kind keep no cause.
	SourceNone SourceKind = iota

	// SourceTyped is <T>: the cause is an error of the type T.
	SourceTyped

	// SourceDynError is <>: the cause is any error.
	SourceDynError

	// SourceDynDebug is <<>>: the cause is any printable value.
	SourceDynDebug

	// SourceBoxedDebug is <<T>>: the cause is a printable value of the type T.
	SourceBoxedDebug
)

var sourceKindValueMap = map[SourceKind]string{
	SourceNone:       "none",
	SourceTyped:      "typed",
	SourceDynError:   "dyn-error",
	SourceDynDebug:   "dyn-debug",
	SourceBoxedDebug: "boxed-debug",
}

func (k SourceKind) String() string {
	v, ok := sourceKindValueMap[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}

// MarshalText to be used in reports and dumps.
func (k SourceKind) MarshalText() ([]byte, error) {
	if _, ok := sourceKindValueMap[k]; !ok {
		return nil, fmt.Errorf("invalid source kind %d", k)
	}

	return []byte(k.String()), nil
}

// UnmarshalText for setting values with configs, CLI, etc.
func (k *SourceKind) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for kind, v := range sourceKindValueMap {
		if v == text {
			*k = kind
			return nil
		}
	}

	return fmt.Errorf("unknown source kind %q", text)
}

// HasCause checks if variants of this kind keep a cause at all.
func (k SourceKind) HasCause() bool {
	_, ok := sourceKindValueMap[k]
	return ok && k != SourceNone
}

// Exposed checks if the cause is returned by Unwrap. Debug only causes
// are shown in the error text but never unwrapped.
func (k SourceKind) Exposed() bool {
	return k == SourceTyped || k == SourceDynError
}

// Typed checks if the kind carries a type argument.
func (k SourceKind) Typed() bool {
	return k == SourceTyped || k == SourceBoxedDebug
}

// Syntax renders the kind back into the directive notation.
func (k SourceKind) Syntax(typ *Type) string {
	var arg string
	if typ != nil {
		arg = typ.Text
	}

	switch k {
	case SourceTyped:
		return "<" + arg + ">"
	case SourceDynError:
		return "<>"
	case SourceDynDebug:
		return "<<>>"
	case SourceBoxedDebug:
		return "<<" + arg + ">>"
	default:
		return ""
	}
}
