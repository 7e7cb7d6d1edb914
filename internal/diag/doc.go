// Package diag collects positioned diagnostics produced while expanding
// directives and provides the span index used to locate declarations by position.
package diag
