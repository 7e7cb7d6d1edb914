// Package attach rewrites template files into generated ones.
//
// The template is decorated with dst so that comments survive the rewrite:
// signatures of marked functions get the union result, bodies get handling
// preludes, directives are removed from comments and the build constraint of
// templates is inverted. Generated declarations are appended after the
// rewritten ones and imports are fixed at the end.
package attach
