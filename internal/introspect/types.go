package introspect

import (
	"strings"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "type-inspector/examples/zoo"
	Name    string // e.g., "Dog"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Handle is the capability interface a type backend must provide.
// Two handles describing the same type must return equal IDs.
type Handle interface {
	// ID returns the identity of the type.
	ID() TypeID
	// Name returns the display name of the type.
	Name() string
	// Ancestors returns the direct ancestors, one level only.
	Ancestors() []Handle
	// Members returns the type's own member table in a stable order.
	Members() []Member
}

// Kinded is implemented by handles that can describe their underlying kind
// (struct, interface, int, ...).
type Kinded interface {
	Kind() string
}

// MemberKind describes where a member comes from.
type MemberKind int

const (
	MemberField  MemberKind = iota // struct field
	MemberMethod                   // method declared with a receiver
	MemberFunc                     // package-level function associated with the type
	MemberConst                    // constant of the type
	MemberVar                      // package-level variable of the type
)

// String returns a human-readable representation of the MemberKind.
func (k MemberKind) String() string {
	switch k {
	case MemberField:
		return "field"
	case MemberMethod:
		return "method"
	case MemberFunc:
		return "func"
	case MemberConst:
		return "const"
	case MemberVar:
		return "var"
	default:
		return "unknown"
	}
}

//go:generate go tool stringer -type=BindingKind -trimprefix=Binding -output=binding_string.go

// BindingKind tells how a callable member receives its implicit receiver.
type BindingKind int

const (
	BindingInstance  BindingKind = iota // method with a usable receiver
	BindingTypeLevel                    // function bound to the type, not to a value
	BindingUnbound                      // method that discards its receiver
)

// Member describes one entry of a type's member table.
type Member struct {
	Name string
	Kind MemberKind

	// Callable is decided by the backend from the declaration, never from
	// the name.
	Callable  bool
	Binding   BindingKind
	Signature *Signature

	// TypeTag is the type of a value member, Value the constant value if any.
	TypeTag string
	Value   string

	// Inheritable reports whether an embedding type can reach the member.
	Inheritable bool
}

// Param is a single parameter or result of a signature.
type Param struct {
	Name     string
	Type     string
	Variadic bool // Type holds the element type
}

func (p Param) String() string {
	typ := p.Type
	if p.Variadic {
		typ = "..." + typ
	}

	if p.Name == "" {
		return typ
	}

	return p.Name + " " + typ
}

// Signature is a rendered call signature.
type Signature struct {
	Params  []Param
	Results []Param
}

// String renders the signature the way it is declared, e.g.
// "(name string, extra ...int) (bool, error)".
func (s *Signature) String() string {
	if s == nil {
		return "()"
	}

	var sb strings.Builder

	sb.WriteString("(")
	sb.WriteString(joinParams(s.Params))
	sb.WriteString(")")

	switch {
	case len(s.Results) == 0:
	case len(s.Results) == 1 && s.Results[0].Name == "":
		sb.WriteString(" ")
		sb.WriteString(s.Results[0].String())
	default:
		sb.WriteString(" (")
		sb.WriteString(joinParams(s.Results))
		sb.WriteString(")")
	}

	return sb.String()
}

func joinParams(params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}

	return strings.Join(parts, ", ")
}

// IsReserved reports whether a name belongs to the language's own
// infrastructure rather than to the type's user-defined surface: the blank
// identifier and double-underscore names like "__init__".
func IsReserved(name string) bool {
	if name == "_" {
		return true
	}

	return len(name) > 4 && strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}

var universalID = TypeID{Name: "any"}

type universal struct{}

func (universal) ID() TypeID          { return universalID }
func (universal) Name() string        { return universalID.Name }
func (universal) Ancestors() []Handle { return nil }
func (universal) Members() []Member   { return nil }

// Universal returns the handle of the implicit base every type satisfies.
// Backends return it for embedded empty interfaces.
func Universal() Handle {
	return universal{}
}

// IsUniversal reports whether h is the universal base.
func IsUniversal(h Handle) bool {
	return h.ID() == universalID
}
