package analyze

import (
	"go/types"
	"path"

	"type-inspector/internal/introspect"
)

// TypeStringer renders types and signatures the way they read inside the
// package they belong to: local types are unqualified, imported ones carry
// their package name (e.g. "Dog", "*sync.Mutex", "[]zoo.Animal").
type TypeStringer struct {
	pkg *types.Package
}

// NewTypeStringer creates a TypeStringer relative to pkg. A nil pkg
// qualifies every named type.
func NewTypeStringer(pkg *types.Package) *TypeStringer {
	return &TypeStringer{pkg: pkg}
}

func (s *TypeStringer) qualifier(p *types.Package) string {
	if s.pkg != nil && p.Path() == s.pkg.Path() {
		return ""
	}

	if p.Name() != "" {
		return p.Name()
	}

	return path.Base(p.Path())
}

// TypeString returns a human-readable string representation of t.
func (s *TypeStringer) TypeString(t types.Type) string {
	if t == nil {
		return "<nil>"
	}

	return types.TypeString(t, s.qualifier)
}

// Signature converts a go/types signature, keeping parameter names and
// declaration order. The receiver is not part of the result.
func (s *TypeStringer) Signature(sig *types.Signature) *introspect.Signature {
	return &introspect.Signature{
		Params:  s.tuple(sig.Params(), sig.Variadic()),
		Results: s.tuple(sig.Results(), false),
	}
}

func (s *TypeStringer) tuple(tup *types.Tuple, variadic bool) []introspect.Param {
	if tup == nil || tup.Len() == 0 {
		return nil
	}

	out := make([]introspect.Param, 0, tup.Len())

	for i := range tup.Len() {
		v := tup.At(i)
		p := introspect.Param{
			Name: v.Name(),
			Type: s.TypeString(v.Type()),
		}

		if variadic && i == tup.Len()-1 {
			if sl, ok := v.Type().(*types.Slice); ok {
				p.Type = s.TypeString(sl.Elem())
				p.Variadic = true
			}
		}

		out = append(out, p)
	}

	return out
}
