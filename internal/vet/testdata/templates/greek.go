//go:build smarterr

package templates

//smarterr:unknown
func A() {}

//smarterr:errors
//	from PlanetsError {
//		MercuryError,
//	},
func B() {}
