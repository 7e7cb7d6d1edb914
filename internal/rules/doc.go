// Package rules defines the canonical SER-series diagnostic codes of smarterr.
//
// Every diagnostic the generator or the vet checker produces carries one of these
// codes, so findings can be filtered and referenced consistently across the CLI
// output, the analyzer and documentation.
//
// Rule numbering scheme:
//
//	000–009  Directive syntax and placement
//	010–019  Item shape and arity
//	020–029  Set resolution
//	030–039  Verification against the package registry
//	040–049  Checks of code using the runtime package
package rules
