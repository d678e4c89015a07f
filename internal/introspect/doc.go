// Package introspect is the backend-independent introspection engine.
//
// It works purely against the Handle capability interface, so the same
// walker, classifier and reporter serve both go/types handles (loaded from
// source) and reflect handles (derived from live values).
//
// Key pieces:
//   - Handle: identity, ancestors (embedded types) and member table of a type
//   - Walk: prints the embedding tree, guarded by a visited set
//   - Classify: partitions members into inherited/own and method/attribute
//   - Report: prints a titled, counted, filtered member listing
package introspect
