package inspect_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"type-inspector/internal/analyze"
	"type-inspector/internal/inspect"
	"type-inspector/internal/introspect"
	"type-inspector/internal/runtimetype"
)

const (
	zooPath   = "type-inspector/examples/zoo"
	nodocPath = "type-inspector/examples/nodoc"
)

// Shape and Square back the fake namespace with runtime handles.
type Shape struct {
	Label string
}

func (s *Shape) Area() float64 { return 0 }

type Square struct {
	Shape
	Side float64
}

func (s *Square) Area() float64 { return s.Side * s.Side }

// fakeNamespace serves handles from a map.
type fakeNamespace struct {
	path     string
	synopsis string
	types    map[string]introspect.Handle
}

func (n *fakeNamespace) Path() string     { return n.path }
func (n *fakeNamespace) Synopsis() string { return n.synopsis }

func (n *fakeNamespace) TypeNames(bool) []string {
	out := make([]string, 0, len(n.types))
	for name := range n.types {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}

func (n *fakeNamespace) Lookup(name string) (introspect.Handle, bool) {
	h, ok := n.types[name]

	return h, ok
}

// fakeLoader returns its namespace for a known path, err otherwise, and
// panics with panicValue when set.
type fakeLoader struct {
	ns         *fakeNamespace
	err        error
	panicValue any
	calls      int
}

func (l *fakeLoader) Load(_ context.Context, pattern string) (inspect.Namespace, error) {
	l.calls++

	if l.panicValue != nil {
		panic(l.panicValue)
	}

	if l.err != nil {
		return nil, l.err
	}

	if l.ns == nil || pattern != l.ns.path {
		return nil, fmt.Errorf("%w: %s", analyze.ErrPackageNotFound, pattern)
	}

	return l.ns, nil
}

func newShapesLoader() *fakeLoader {
	return &fakeLoader{ns: &fakeNamespace{
		path:     "example.com/shapes",
		synopsis: "Package shapes has shapes.",
		types: map[string]introspect.Handle{
			"Shape":  runtimetype.FromType(reflect.TypeFor[Shape]()),
			"Square": runtimetype.FromType(reflect.TypeFor[Square]()),
		},
	}}
}

func realLoader() inspect.Loader {
	return inspect.FromAnalyzer(analyze.NewLoader(analyze.Config{}, nil))
}

var errBoom = errors.New("boom")

func requireNotFound(t *testing.T, err error) *inspect.NotFoundError {
	t.Helper()

	var nf *inspect.NotFoundError
	require.ErrorAs(t, err, &nf)

	return nf
}
