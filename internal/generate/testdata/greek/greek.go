//go:build smarterr

package greek

import (
	"strconv"
)

// GreekFunc returns errors of every kind.
//
//smarterr:errors
//	AlfaError{ind: int, ext: string} -> "Alfa error",
//	BetaError<>{ind: int} -> "Beta error",
//	BetaWrappedError<*strconv.NumError> -> "Beta wrapped error",
//	GammaError<<>>{ext: string} -> "Gamma error",
//	GammaWrappedError<<int>>{ext: string} -> "Gamma wrapped error",
func GreekFunc(ind int) int {
	if ind < 0 {
		return 0, AlfaErrorCtx{Ind: ind, Ext: "ext"}.IntoError(nil)
	}

	return ind, nil
}

//smarterr:errors
//	FirstError{ind: uint8, ext: string} -> "First error",
//	from GreekFuncError {
//		AlfaError,
//		BetaError<>,
//		BetaWrappedError<*strconv.NumError>,
//		handled { GammaError, GammaWrappedError },
//	},
func NumericFunc(ind int) {
	_, err := GreekFunc(ind)
	return handleGreekFuncError(
		err,
		func(e *GammaError) NumericFuncError { return nil },
		func(e *GammaWrappedError) NumericFuncError { return nil },
	)
}
