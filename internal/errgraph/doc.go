// Package errgraph resolves error sets of a package.
//
// Sets are nodes here and inherited blocks are edges: a set inheriting from
// GreekFuncError depends on it. Resolution follows the edges, so a source
// set is always resolved before the sets taking variants from it. This is
// what makes implicit pass-through and the registry checks possible.
//
// Resolution of a single set goes as follows:
//
//   - Own variants come first, repeated names are silently dropped.
//   - Variants redeclared in inherited blocks pass through unless they were
//     already emitted. A variant passed through by several blocks is emitted
//     once.
//   - Handled variants are not emitted at all, the caller intercepts them.
package errgraph
