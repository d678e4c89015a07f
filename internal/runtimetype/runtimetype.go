// Package runtimetype implements introspect.Handle on top of reflect, for
// types whose declaring package cannot be loaded from source, such as
// unnamed types, predeclared types and types of test binaries.
//
// Runtime metadata is thinner than source: parameter names are lost,
// receivers cannot be told apart, and a method promoted from an embedded
// field looks the same as one the type redeclares. A method whose name is
// also reachable through an embedded field is therefore treated as promoted
// and left out of the own member table, and every method binds as
// introspect.BindingInstance.
package runtimetype

import (
	"reflect"

	"type-inspector/internal/introspect"
)

// Handle describes a reflect.Type, optionally together with a value of
// that type.
type Handle struct {
	t reflect.Type
	v reflect.Value // invalid when only the type is known
}

// FromType returns the handle of t. Pointer types are dereferenced, since
// introspection always works on the pointed-to type.
func FromType(t reflect.Type) *Handle {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return &Handle{t: t}
}

// FromValue returns the handle of the dynamic type of v. Field type tags
// then describe the values currently stored in v.
func FromValue(v any) *Handle {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return FromType(rv.Type())
		}

		rv = rv.Elem()
	}

	return &Handle{t: rv.Type(), v: rv}
}

// ID returns the package path and name; unnamed types use their literal
// spelling as name.
func (h *Handle) ID() introspect.TypeID {
	return introspect.TypeID{PkgPath: h.t.PkgPath(), Name: h.Name()}
}

// Name returns the type name, or its literal spelling for unnamed types.
func (h *Handle) Name() string {
	if name := h.t.Name(); name != "" {
		return name
	}

	return h.t.String()
}

// Kind returns the reflect kind, e.g. "struct" or "int".
func (h *Handle) Kind() string {
	return h.t.Kind().String()
}

// Ancestors returns the types of the embedded fields of a struct. Runtime
// metadata does not record interface embedding.
func (h *Handle) Ancestors() []introspect.Handle {
	if h.t.Kind() != reflect.Struct {
		return nil
	}

	var out []introspect.Handle

	for i := range h.t.NumField() {
		f := h.t.Field(i)
		if !f.Anonymous {
			continue
		}

		out = append(out, h.child(i, f))
	}

	return out
}

func (h *Handle) child(i int, f reflect.StructField) *Handle {
	if !h.v.IsValid() {
		return FromType(f.Type)
	}

	fv := h.v.Field(i)
	for fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return FromType(f.Type)
		}

		fv = fv.Elem()
	}

	return &Handle{t: fv.Type(), v: fv}
}

// Members returns the named fields followed by the methods of the pointer
// method set that are not promoted from an embedded field.
func (h *Handle) Members() []introspect.Member {
	var out []introspect.Member

	if h.t.Kind() == reflect.Struct {
		for i := range h.t.NumField() {
			f := h.t.Field(i)
			if f.Anonymous {
				continue
			}

			out = append(out, introspect.Member{
				Name:        f.Name,
				Kind:        introspect.MemberField,
				TypeTag:     h.fieldTag(i, f),
				Inheritable: true,
			})
		}
	}

	methods := h.t
	if h.t.Kind() != reflect.Interface {
		methods = reflect.PointerTo(h.t)
	}

	for i := range methods.NumMethod() {
		m := methods.Method(i)
		if h.promoted(m.Name) {
			continue
		}

		out = append(out, introspect.Member{
			Name:        m.Name,
			Kind:        introspect.MemberMethod,
			Callable:    true,
			Binding:     introspect.BindingInstance,
			Signature:   signature(m.Type, h.t.Kind() != reflect.Interface),
			Inheritable: true,
		})
	}

	return out
}

// fieldTag reports the static field type, or the dynamic type of the value
// held by an interface field when a value is known.
func (h *Handle) fieldTag(i int, f reflect.StructField) string {
	if h.v.IsValid() && f.Type.Kind() == reflect.Interface {
		if fv := h.v.Field(i); !fv.IsNil() {
			return fv.Elem().Type().String()
		}
	}

	return f.Type.String()
}

func (h *Handle) promoted(name string) bool {
	if h.t.Kind() != reflect.Struct {
		return false
	}

	for i := range h.t.NumField() {
		f := h.t.Field(i)
		if !f.Anonymous {
			continue
		}

		ft := f.Type
		if ft.Kind() != reflect.Pointer && ft.Kind() != reflect.Interface {
			ft = reflect.PointerTo(ft)
		}

		if _, ok := ft.MethodByName(name); ok {
			return true
		}
	}

	return false
}

// signature renders a method type. For concrete types the first input is
// the receiver and is skipped. Parameter names are not available.
func signature(ft reflect.Type, hasReceiver bool) *introspect.Signature {
	sig := &introspect.Signature{}

	first := 0
	if hasReceiver {
		first = 1
	}

	for i := first; i < ft.NumIn(); i++ {
		in := ft.In(i)
		p := introspect.Param{Type: in.String()}

		if ft.IsVariadic() && i == ft.NumIn()-1 {
			p.Type = in.Elem().String()
			p.Variadic = true
		}

		sig.Params = append(sig.Params, p)
	}

	for i := range ft.NumOut() {
		sig.Results = append(sig.Results, introspect.Param{Type: ft.Out(i).String()})
	}

	return sig
}
