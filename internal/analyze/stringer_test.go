package analyze

import (
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeStringer_TypeString(t *testing.T) {
	local := types.NewPackage("example.com/shop/store", "store")
	remote := types.NewPackage("example.com/shop/warehouse", "warehouse")

	order := types.NewNamed(types.NewTypeName(token.NoPos, local, "Order", nil), types.NewStruct(nil, nil), nil)
	item := types.NewNamed(types.NewTypeName(token.NoPos, remote, "Item", nil), types.NewStruct(nil, nil), nil)

	stringer := NewTypeStringer(local)

	assert.Equal(t, "Order", stringer.TypeString(order))
	assert.Equal(t, "*Order", stringer.TypeString(types.NewPointer(order)))
	assert.Equal(t, "[]warehouse.Item", stringer.TypeString(types.NewSlice(item)))
	assert.Equal(t, "map[string]*warehouse.Item", stringer.TypeString(types.NewMap(types.Typ[types.String], types.NewPointer(item))))
	assert.Equal(t, "<nil>", stringer.TypeString(nil))

	unqualified := NewTypeStringer(nil)
	assert.Equal(t, "store.Order", unqualified.TypeString(order))
}

func TestTypeStringer_Signature(t *testing.T) {
	pkg := types.NewPackage("example.com/p", "p")
	params := types.NewTuple(
		types.NewParam(token.NoPos, pkg, "format", types.Typ[types.String]),
		types.NewParam(token.NoPos, pkg, "args", types.NewSlice(types.Universe.Lookup("any").Type())),
	)
	results := types.NewTuple(
		types.NewParam(token.NoPos, pkg, "n", types.Typ[types.Int]),
		types.NewParam(token.NoPos, pkg, "err", types.Universe.Lookup("error").Type()),
	)
	sig := types.NewSignatureType(nil, nil, nil, params, results, true)

	got := NewTypeStringer(pkg).Signature(sig)

	assert.Len(t, got.Params, 2)
	assert.True(t, got.Params[1].Variadic)
	assert.Equal(t, "any", got.Params[1].Type)
	assert.Equal(t, "(format string, args ...any) (n int, err error)", got.String())
}

func TestTypeStringer_EmptySignature(t *testing.T) {
	sig := types.NewSignatureType(nil, nil, nil, nil, nil, false)

	got := NewTypeStringer(nil).Signature(sig)

	assert.Empty(t, got.Params)
	assert.Empty(t, got.Results)
	assert.Equal(t, "()", got.String())
}
