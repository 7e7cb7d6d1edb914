// Package emit turns resolved error sets into Go declarations.
//
// Emitters build a small code model first: type and function declarations
// with statements limited to what generated code needs. The model is then
// printed and formatted with go/format, so the output only depends on the
// resolved sets.
package emit
