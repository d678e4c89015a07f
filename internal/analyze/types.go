package analyze

import (
	"go/types"

	"type-inspector/internal/introspect"
)

// TypeKind represents the kind of a type's underlying type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindInterface          // interface type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindArray              // array of another type
	TypeKindMap                // map type
	TypeKindChan               // channel type
	TypeKindFunc               // function type
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindInterface:
		return "interface"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindChan:
		return "chan"
	case TypeKindFunc:
		return "func"
	default:
		return "unknown"
	}
}

// KindOf classifies the underlying type of t.
func KindOf(t types.Type) TypeKind {
	switch t.Underlying().(type) {
	case *types.Basic:
		return TypeKindBasic
	case *types.Struct:
		return TypeKindStruct
	case *types.Interface:
		return TypeKindInterface
	case *types.Pointer:
		return TypeKindPointer
	case *types.Slice:
		return TypeKindSlice
	case *types.Array:
		return TypeKindArray
	case *types.Map:
		return TypeKindMap
	case *types.Chan:
		return TypeKindChan
	case *types.Signature:
		return TypeKindFunc
	default:
		return TypeKindUnknown
	}
}

// TypeHandle exposes a named type through introspect.Handle.
//
// Ancestors are the embedded fields of a struct or the embedded interfaces
// of an interface. Members are the declared fields and methods, plus the
// functions, constants and variables go/doc associates with the type when
// the type belongs to the loaded package.
type TypeHandle struct {
	named *types.Named
	pkg   *Package // nil for types declared outside the loaded package
	str   *TypeStringer
}

func newTypeHandle(named *types.Named, pkg *Package) *TypeHandle {
	named = named.Origin()

	h := &TypeHandle{
		named: named,
		str:   NewTypeStringer(named.Obj().Pkg()),
	}

	if pkg != nil && named.Obj().Pkg() == pkg.types {
		h.pkg = pkg
	}

	return h
}

// ID returns the package path and name of the type.
func (h *TypeHandle) ID() introspect.TypeID {
	obj := h.named.Obj()
	if obj.Pkg() == nil {
		return introspect.TypeID{Name: obj.Name()}
	}

	return introspect.TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}
}

// Name returns the unqualified type name.
func (h *TypeHandle) Name() string {
	return h.named.Obj().Name()
}

// Kind returns the underlying kind, using the basic type name for basic
// types (e.g. "int" for "type Level int").
func (h *TypeHandle) Kind() string {
	if b, ok := h.named.Underlying().(*types.Basic); ok {
		return b.Name()
	}

	return KindOf(h.named).String()
}

// Ancestors returns the embedded types, dereferencing embedded pointers.
// An embedded empty interface yields the universal base; embedded unions
// and interface literals are not types of their own and are skipped.
func (h *TypeHandle) Ancestors() []introspect.Handle {
	var out []introspect.Handle

	switch u := h.named.Underlying().(type) {
	case *types.Struct:
		for i := range u.NumFields() {
			f := u.Field(i)
			if !f.Embedded() {
				continue
			}

			if a := h.ancestor(f.Type()); a != nil {
				out = append(out, a)
			}
		}

	case *types.Interface:
		for i := range u.NumEmbeddeds() {
			if a := h.ancestor(u.EmbeddedType(i)); a != nil {
				out = append(out, a)
			}
		}
	}

	return out
}

func (h *TypeHandle) ancestor(t types.Type) introspect.Handle {
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	switch tt := t.(type) {
	case *types.Named:
		return newTypeHandle(tt, h.pkg)
	case *types.Interface:
		if tt.Empty() {
			return introspect.Universal()
		}
	}

	return nil
}

// Members returns fields, then methods, then associated functions,
// constants and variables.
func (h *TypeHandle) Members() []introspect.Member {
	var out []introspect.Member

	switch u := h.named.Underlying().(type) {
	case *types.Struct:
		for i := range u.NumFields() {
			f := u.Field(i)
			if f.Embedded() {
				continue
			}

			out = append(out, introspect.Member{
				Name:        f.Name(),
				Kind:        introspect.MemberField,
				TypeTag:     h.str.TypeString(f.Type()),
				Inheritable: true,
			})
		}

	case *types.Interface:
		for i := range u.NumExplicitMethods() {
			out = append(out, h.method(u.ExplicitMethod(i), introspect.BindingInstance))
		}
	}

	for i := range h.named.NumMethods() {
		m := h.named.Method(i)
		out = append(out, h.method(m, receiverBinding(m)))
	}

	return append(out, h.associated()...)
}

func (h *TypeHandle) method(fn *types.Func, binding introspect.BindingKind) introspect.Member {
	return introspect.Member{
		Name:        fn.Name(),
		Kind:        introspect.MemberMethod,
		Callable:    true,
		Binding:     binding,
		Signature:   h.str.Signature(fn.Type().(*types.Signature)),
		Inheritable: true,
	}
}

// receiverBinding reports a method whose receiver is unnamed or blank as
// unbound, since its body cannot refer to the value it is called on.
func receiverBinding(fn *types.Func) introspect.BindingKind {
	recv := fn.Type().(*types.Signature).Recv()
	if recv == nil || recv.Name() == "" || recv.Name() == "_" {
		return introspect.BindingUnbound
	}

	return introspect.BindingInstance
}

// associated returns what go/doc groups under the type: constructor-like
// functions, typed constants and variables. None of them is promoted
// through embedding.
func (h *TypeHandle) associated() []introspect.Member {
	if h.pkg == nil {
		return nil
	}

	dt := h.pkg.docType(h.Name())
	if dt == nil {
		return nil
	}

	scope := h.pkg.types.Scope()

	var out []introspect.Member

	for _, fn := range dt.Funcs {
		f, ok := scope.Lookup(fn.Name).(*types.Func)
		if !ok {
			continue
		}

		out = append(out, introspect.Member{
			Name:      f.Name(),
			Kind:      introspect.MemberFunc,
			Callable:  true,
			Binding:   introspect.BindingTypeLevel,
			Signature: h.str.Signature(f.Type().(*types.Signature)),
		})
	}

	for _, v := range dt.Consts {
		for _, name := range v.Names {
			c, ok := scope.Lookup(name).(*types.Const)
			if !ok {
				continue
			}

			out = append(out, introspect.Member{
				Name:    c.Name(),
				Kind:    introspect.MemberConst,
				TypeTag: h.str.TypeString(c.Type()),
				Value:   c.Val().ExactString(),
			})
		}
	}

	for _, v := range dt.Vars {
		for _, name := range v.Names {
			pv, ok := scope.Lookup(name).(*types.Var)
			if !ok {
				continue
			}

			out = append(out, introspect.Member{
				Name:    pv.Name(),
				Kind:    introspect.MemberVar,
				TypeTag: h.str.TypeString(pv.Type()),
			})
		}
	}

	return out
}
