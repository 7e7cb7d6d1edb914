// Package model defines the data model of error set declarations.
//
// Parsed directives become declaration nodes (variants, inherited blocks, fledged sets,
// module and errorset arguments). The resolver turns them into resolved sets, which
// are what the emitter renders. Every declaration node remembers the span of the
// directive text it came from, so diagnostics can point at it.
package model
