// Package generate drives the code generation of a package: it finds
// template files, collects and parses their directives, resolves error sets
// of the package and renders output files.
//
// Nothing is written to the disk here, outputs are returned to the caller
// together with diagnostics.
package generate
