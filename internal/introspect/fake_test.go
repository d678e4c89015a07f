package introspect

// fakeType is a hand-built Handle. Ancestors are held by pointer so tests can
// wire cycles after construction.
type fakeType struct {
	pkg     string
	name    string
	bases   []*fakeType
	members []Member
	any     bool
}

func (f *fakeType) ID() TypeID {
	if f.any {
		return universalID
	}

	return TypeID{PkgPath: f.pkg, Name: f.name}
}

func (f *fakeType) Name() string { return f.name }

func (f *fakeType) Ancestors() []Handle {
	out := make([]Handle, 0, len(f.bases))
	for _, b := range f.bases {
		out = append(out, b)
	}

	return out
}

func (f *fakeType) Members() []Member { return f.members }

func newFake(name string, members ...Member) *fakeType {
	return &fakeType{pkg: "example.com/fake", name: name, members: members}
}

func method(name string, binding BindingKind, params ...Param) Member {
	return Member{
		Name:        name,
		Kind:        MemberMethod,
		Callable:    true,
		Binding:     binding,
		Signature:   &Signature{Params: params},
		Inheritable: binding != BindingTypeLevel,
	}
}

func field(name, typ string) Member {
	return Member{Name: name, Kind: MemberField, TypeTag: typ, Inheritable: true}
}

func names(members []Member) []string {
	out := make([]string, 0, len(members))
	for _, m := range members {
		out = append(out, m.Name)
	}

	return out
}
