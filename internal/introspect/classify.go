package introspect

// Group holds members split by callability, in enumeration order.
type Group struct {
	Methods    []Member
	Attributes []Member
}

func (g *Group) add(m Member) {
	if m.Callable {
		g.Methods = append(g.Methods, m)
		return
	}

	g.Attributes = append(g.Attributes, m)
}

// Len returns the total number of members in the group.
func (g *Group) Len() int {
	return len(g.Methods) + len(g.Attributes)
}

// Classification is the member set of one type, partitioned into what it
// gets from its direct ancestors and what it declares itself.
type Classification struct {
	Type      Handle
	Inherited Group
	Own       Group
}

// Classify enumerates the members of h and its direct ancestors.
//
// Inherited members come from every direct ancestor except the universal
// base, without descending further. Own members are everything h declares,
// including members that shadow an inherited one of the same name. Reserved
// names are dropped from both groups.
func Classify(h Handle) Classification {
	c := Classification{Type: h}

	for _, base := range h.Ancestors() {
		if IsUniversal(base) {
			continue
		}

		for _, m := range base.Members() {
			if IsReserved(m.Name) || !m.Inheritable {
				continue
			}

			c.Inherited.add(m)
		}
	}

	for _, m := range h.Members() {
		if IsReserved(m.Name) {
			continue
		}

		c.Own.add(m)
	}

	return c
}

// Overrides returns the own methods that shadow a method of the same name
// inherited from a direct ancestor.
func (c *Classification) Overrides() []Member {
	inherited := make(map[string]struct{}, len(c.Inherited.Methods))
	for _, m := range c.Inherited.Methods {
		inherited[m.Name] = struct{}{}
	}

	var out []Member

	for _, m := range c.Own.Methods {
		if _, ok := inherited[m.Name]; ok {
			out = append(out, m)
		}
	}

	return out
}
