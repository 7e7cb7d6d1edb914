// Package vet implements the smarterr analyzer.
//
// It checks templates of the analyzed package the same way the generator
// does, which is the only way to see verification diagnostics without
// running the generation, and reports calls to helpers of the runtime
// package whose results are thrown away:
//
//	smarterr.Throw(v, ctx.IntoError) // the error is lost
package vet
