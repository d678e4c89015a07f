package inspect_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"type-inspector/examples/zoo"
	"type-inspector/internal/analyze"
	"type-inspector/internal/inspect"
	"type-inspector/internal/runtimetype"
)

func TestResolve_Name(t *testing.T) {
	loader := newShapesLoader()
	r := inspect.NewResolver(loader)

	h, err := r.Resolve(t.Context(), "Square", "example.com/shapes")
	require.NoError(t, err)
	assert.Equal(t, "Square", h.Name())

	h, err = r.Resolve(t.Context(), "*Square", "example.com/shapes")
	require.NoError(t, err)
	assert.Equal(t, "Square", h.Name(), "pointer names resolve to the element type")
}

func TestResolve_NameNeedsNamespace(t *testing.T) {
	loader := newShapesLoader()

	_, err := inspect.NewResolver(loader).Resolve(t.Context(), "Square", "")
	require.ErrorIs(t, err, inspect.ErrNamespaceRequired)
	assert.Zero(t, loader.calls, "no load without a namespace")
}

func TestResolve_Nil(t *testing.T) {
	_, err := inspect.NewResolver(newShapesLoader()).Resolve(t.Context(), nil, "")
	require.ErrorIs(t, err, inspect.ErrNilTarget)
}

func TestResolve_TypeNotFound(t *testing.T) {
	_, err := inspect.NewResolver(newShapesLoader()).Resolve(t.Context(), "Squares", "example.com/shapes")

	nf := requireNotFound(t, err)
	assert.Equal(t, inspect.ReasonType, nf.Reason)
	assert.Equal(t, []string{"Square"}, nf.Suggestions)
	assert.ErrorIs(t, err, inspect.ErrTypeNotFound)
	assert.Equal(t, `type "Squares" not found in "example.com/shapes"`, err.Error())
}

func TestResolve_PackageNotFound(t *testing.T) {
	_, err := inspect.NewResolver(newShapesLoader()).Resolve(t.Context(), "Square", "example.com/circles")

	nf := requireNotFound(t, err)
	assert.Equal(t, inspect.ReasonPackage, nf.Reason)
	assert.Empty(t, nf.Suggestions)
	assert.ErrorIs(t, err, analyze.ErrPackageNotFound)
	assert.Contains(t, err.Error(), `package "example.com/circles" not found`)
}

func TestResolve_HandlePassesThrough(t *testing.T) {
	want := runtimetype.FromType(reflect.TypeFor[Shape]())

	got, err := inspect.NewResolver(nil).Resolve(t.Context(), want, "")
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestResolve_ReflectTypeAndValues(t *testing.T) {
	r := inspect.NewResolver(nil)

	h, err := r.Resolve(t.Context(), reflect.TypeFor[*Square](), "")
	require.NoError(t, err)
	assert.Equal(t, "Square", h.Name())

	h, err = r.Resolve(t.Context(), 3, "")
	require.NoError(t, err)
	assert.Equal(t, "int", h.Name())

	h, err = r.Resolve(t.Context(), &Square{Side: 2}, "")
	require.NoError(t, err)
	assert.Equal(t, "Square", h.Name())
}

func TestResolve_RealPackage(t *testing.T) {
	r := inspect.NewResolver(realLoader())

	h, err := r.Resolve(t.Context(), "Dog", zooPath)
	require.NoError(t, err)
	assert.Equal(t, zooPath+".Dog", h.ID().String())

	_, err = r.Resolve(t.Context(), "Dogs", zooPath)
	nf := requireNotFound(t, err)
	assert.Contains(t, nf.Suggestions, "Dog")
}

func TestResolve_ValueLookedUpInDeclaringPackage(t *testing.T) {
	r := inspect.NewResolver(realLoader())

	for _, target := range []any{zoo.Dog{}, &zoo.Dog{}, reflect.TypeFor[zoo.Dog](), reflect.TypeFor[**zoo.Dog]()} {
		h, err := r.Resolve(t.Context(), target, "")
		require.NoError(t, err)

		assert.IsType(t, &analyze.TypeHandle{}, h)
		assert.Equal(t, zooPath+".Dog", h.ID().String())
	}
}

func TestResolve_RuntimeFallback(t *testing.T) {
	loader := newShapesLoader()
	r := inspect.NewResolver(loader)

	h, err := r.Resolve(t.Context(), Square{}, "")
	require.NoError(t, err)
	assert.IsType(t, &runtimetype.Handle{}, h)
	assert.Equal(t, 1, loader.calls, "declaring package is tried first")

	h, err = r.Resolve(t.Context(), 3, "")
	require.NoError(t, err)
	assert.IsType(t, &runtimetype.Handle{}, h)
	assert.Equal(t, 1, loader.calls, "predeclared types are not looked up")

	h, err = r.Resolve(t.Context(), []zoo.Dog{}, "")
	require.NoError(t, err)
	assert.IsType(t, &runtimetype.Handle{}, h)
	assert.Equal(t, 1, loader.calls, "unnamed types are not looked up")
}
