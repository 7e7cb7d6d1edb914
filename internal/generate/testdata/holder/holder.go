//go:build smarterr

package holder

import (
	"strconv"
)

//smarterr:mod errs
type Holder struct {
	items map[string]string
}

// Get looks the item up.
//
//smarterr:errors
//	NotFoundError{name: string} -> "item not found",
//	BadNumberError<*strconv.NumError> -> "bad number",
func (h *Holder) Get(name string) int {
	return 0, nil
}

//smarterr:errors
//	from GetError {
//		NotFoundError,
//		handled BadNumberError,
//	},
func (h *Holder) Sum(names ...string) int {
	return 0, nil
}
