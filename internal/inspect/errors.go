package inspect

import (
	"errors"
	"fmt"
)

// Sentinel errors for resolution failures.
var (
	// ErrNamespaceRequired indicates a type name was given without the
	// package to look it up in. This is a usage error.
	ErrNamespaceRequired = errors.New("inspect: a package is required to resolve a type name")

	// ErrNilTarget indicates InspectType was called with a nil target.
	ErrNilTarget = errors.New("inspect: nil target")

	// ErrTypeNotFound indicates the package has no type of the given name.
	ErrTypeNotFound = errors.New("inspect: type not found")
)

// Reason tells which step of a lookup failed.
type Reason int

const (
	ReasonPackage Reason = iota // the package could not be loaded
	ReasonType                  // the package has no such type
)

// NotFoundError reports a type reference that could not be resolved.
// It is a data condition, not a usage error: callers print it and go on.
type NotFoundError struct {
	Reason      Reason
	Name        string   // requested type name
	Package     string   // requested package pattern
	Suggestions []string // closest declared type names, ReasonType only
	Err         error
}

func (e *NotFoundError) Error() string {
	if e.Reason == ReasonPackage {
		return fmt.Sprintf("package %q not found: %v", e.Package, e.Err)
	}

	return fmt.Sprintf("type %q not found in %q", e.Name, e.Package)
}

func (e *NotFoundError) Unwrap() error { return e.Err }
