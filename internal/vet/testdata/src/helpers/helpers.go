package helpers

import (
	"github.com/sirkon/smarterr"
)

type numError struct{}

func (numError) Error() string { return "num error" }

func toErr(v int) numError { return numError{} }

func Use(v int) error {
	smarterr.Throw(v, toErr) // want `SER040: results of throw helper smarterr.Throw are discarded`
	_, _ = smarterr.Raise(v, toErr) // want `SER040: results of raise helper smarterr.Raise are discarded`

	_, err := smarterr.Throw(v, toErr)
	return err
}
