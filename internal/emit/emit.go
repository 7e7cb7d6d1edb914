package emit

import (
	"strconv"

	"github.com/sirkon/smarterr/internal/model"
)

// Emitter builds declarations of generated code.
type Emitter struct {
	// Runtime is the name the runtime package is imported with.
	Runtime string
}

// New creates an emitter referring to the runtime package by the given name.
func New(runtime string) *Emitter {
	return &Emitter{Runtime: runtime}
}

// Qualifier turns a name declared in the package of a set into a name
// usable at the place of the code.
type Qualifier func(name string) string

// Local is the qualifier of code placed in the package of the set.
func Local(name string) string {
	return name
}

// Qualified is the qualifier of code placed outside of the package of the
// set, which is imported with the given name.
func Qualified(pkg string) Qualifier {
	return func(name string) string {
		return pkg + "." + name
	}
}

func (e *Emitter) rt(name string) string {
	return e.Runtime + "." + name
}

func markerName(set string) string {
	return "is" + model.Export(set)
}

func quote(s string) string {
	return strconv.Quote(s)
}
