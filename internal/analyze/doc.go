// Package analyze provides package loading and the go/types type backend.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to load one
// package and exposes its named types as introspect.Handle values.
//
// Key types:
//   - Loader: loads a package by import path or pattern
//   - Package: a loaded package with its go/doc index
//   - TypeHandle: a *types.Named seen through the introspect.Handle interface
//   - TypeStringer: renders types and signatures relative to a package
package analyze
