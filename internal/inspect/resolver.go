package inspect

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"type-inspector/internal/analyze"
	"type-inspector/internal/introspect"
	"type-inspector/internal/match"
	"type-inspector/internal/runtimetype"
)

// maxSuggestions caps the "did you mean" list of a NotFoundError.
const maxSuggestions = 3

// Namespace is a loaded package as seen by the resolver and the surveyor.
type Namespace interface {
	Path() string
	Synopsis() string
	TypeNames(all bool) []string
	Lookup(name string) (introspect.Handle, bool)
}

// Loader loads the namespace named by a package pattern.
type Loader interface {
	Load(ctx context.Context, pattern string) (Namespace, error)
}

type analyzeLoader struct {
	l *analyze.Loader
}

// FromAnalyzer adapts an analyze.Loader to Loader.
func FromAnalyzer(l *analyze.Loader) Loader {
	return analyzeLoader{l: l}
}

func (a analyzeLoader) Load(ctx context.Context, pattern string) (Namespace, error) {
	pkg, err := a.l.Load(ctx, pattern)
	if err != nil {
		return nil, err
	}

	return pkg, nil
}

// Resolver turns type references into handles.
type Resolver struct {
	loader Loader
}

// NewResolver creates a Resolver that looks names up through loader.
func NewResolver(loader Loader) *Resolver {
	return &Resolver{loader: loader}
}

// Resolve returns the handle for target:
//   - an introspect.Handle is returned as is;
//   - a reflect.Type, or any other value through its dynamic type, is
//     looked up in the package that declares it, falling back to a runtime
//     handle for unnamed types and packages that cannot be loaded;
//   - a string is a type name looked up in the namespace package, which is
//     then mandatory.
//
// Pointer types resolve to their element type. Lookup failures are
// reported as *NotFoundError.
func (r *Resolver) Resolve(ctx context.Context, target any, namespace string) (introspect.Handle, error) {
	switch t := target.(type) {
	case nil:
		return nil, ErrNilTarget
	case introspect.Handle:
		return t, nil
	case reflect.Type:
		if h, ok := r.fromSource(ctx, t); ok {
			return h, nil
		}

		return runtimetype.FromType(t), nil
	case string:
		return r.lookup(ctx, t, namespace)
	default:
		if h, ok := r.fromSource(ctx, reflect.TypeOf(t)); ok {
			return h, nil
		}

		return runtimetype.FromValue(t), nil
	}
}

// fromSource looks a named runtime type up in its declaring package, so that
// redeclared methods and receiver kinds come from the declaration. Unnamed
// and predeclared types, and packages the loader cannot load, are not found.
func (r *Resolver) fromSource(ctx context.Context, t reflect.Type) (introspect.Handle, bool) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if r.loader == nil || t.PkgPath() == "" || t.Name() == "" {
		return nil, false
	}

	ns, err := r.loader.Load(ctx, t.PkgPath())
	if err != nil {
		return nil, false
	}

	return ns.Lookup(t.Name())
}

func (r *Resolver) lookup(ctx context.Context, name, namespace string) (introspect.Handle, error) {
	if namespace == "" {
		return nil, fmt.Errorf("%w: %q", ErrNamespaceRequired, name)
	}

	name = strings.TrimLeft(name, "*")

	ns, err := r.loader.Load(ctx, namespace)
	if err != nil {
		return nil, &NotFoundError{
			Reason:  ReasonPackage,
			Name:    name,
			Package: namespace,
			Err:     err,
		}
	}

	h, ok := ns.Lookup(name)
	if !ok {
		return nil, &NotFoundError{
			Reason:      ReasonType,
			Name:        name,
			Package:     namespace,
			Suggestions: match.Suggest(name, ns.TypeNames(true), maxSuggestions),
			Err:         ErrTypeNotFound,
		}
	}

	return h, nil
}
