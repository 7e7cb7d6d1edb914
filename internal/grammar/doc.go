// Package grammar finds smarterr and errorset directives in comment groups and
// parses their payloads into declarations of the model package.
//
// A directive is a comment line without a space after the slashes:
//
//	//smarterr:errors
//	//	AlfaError{ind: int, ext: string} -> "Alfa error",
//	//	BetaError<>{ind: int} -> "Beta error",
//
// Indented comment lines that follow continue the directive. A bare // line,
// another directive or the end of the comment group finishes it.
package grammar
