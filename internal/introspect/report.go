package introspect

import (
	"fmt"
	"go/token"
	"io"
)

// Predicate decides whether a member is shown by Report.
type Predicate func(Member) bool

// DefaultFilter hides names that are private by convention: unexported
// identifiers and anything starting with an underscore.
func DefaultFilter(m Member) bool {
	return !IsReserved(m.Name) && token.IsExported(m.Name)
}

// ShowAll keeps every member that is not reserved.
func ShowAll(m Member) bool {
	return !IsReserved(m.Name)
}

// ByBinding selects callable members of the given binding kind.
func ByBinding(kind BindingKind) Predicate {
	return func(m Member) bool {
		return m.Callable && m.Binding == kind
	}
}

// All combines predicates; a member must satisfy every one of them.
func All(preds ...Predicate) Predicate {
	return func(m Member) bool {
		for _, p := range preds {
			if !p(m) {
				return false
			}
		}

		return true
	}
}

// Filter returns the members satisfying pred, keeping their order.
func Filter(members []Member, pred Predicate) []Member {
	var out []Member

	for _, m := range members {
		if pred == nil || pred(m) {
			out = append(out, m)
		}
	}

	return out
}

// Report prints "title (count=N)" followed by one line per member that
// satisfies pred. It returns N, which always equals the number of member
// lines printed.
func Report(w io.Writer, title string, members []Member, pred Predicate) int {
	shown := Filter(members, pred)

	fmt.Fprintf(w, "\n%s (count=%d)\n", title, len(shown))

	for _, m := range shown {
		fmt.Fprintf(w, "  - %s\n", FormatMember(m))
	}

	return len(shown)
}

// FormatMember renders a member as "Name(params) results" for callables and
// "Name: type" for values.
func FormatMember(m Member) string {
	if m.Callable {
		return m.Name + m.Signature.String()
	}

	line := m.Name + ": " + m.TypeTag
	if m.Value != "" {
		line += " = " + m.Value
	}

	return line
}
