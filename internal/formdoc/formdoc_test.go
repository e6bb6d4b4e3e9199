package formdoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDoesNotMutateInput(t *testing.T) {
	root := Doc{"a": map[string]any{"x": 1, "y": 2}}

	out := Set(root, Path{"a", "x"}, 99)

	assert.Equal(t, 1, root["a"].(map[string]any)["x"])
	assert.Equal(t, 99, out["a"].(map[string]any)["x"])
}

func TestSetPreservesSiblings(t *testing.T) {
	root := Doc{"a": map[string]any{"x": 1, "y": 2}}

	out := Set(root, Path{"a", "x"}, 99)

	want := Doc{"a": map[string]any{"x": 99, "y": 2}}
	assert.Empty(t, cmp.Diff(want, out))
}

func TestSetIsIdempotent(t *testing.T) {
	root := Doc{"applicant": map[string]any{"contact": map[string]any{"email": "old"}}}

	once := Set(root, Path{"applicant", "contact", "email"}, "new@example.com")
	twice := Set(once, Path{"applicant", "contact", "email"}, "new@example.com")

	assert.Empty(t, cmp.Diff(once, twice))
}

func TestSetSharesOffPathSubtrees(t *testing.T) {
	contact := map[string]any{"email": "a@b.c"}
	root := Doc{"applicant": map[string]any{"contact": contact}, "mortgage": map[string]any{"lender": "Acme"}}

	out := Set(root, Path{"applicant", "first_name"}, "Sam")

	assert.Equal(t, "a@b.c", out["applicant"].(map[string]any)["contact"].(map[string]any)["email"])

	// The mortgage subtree is off the path and must be reused, not copied.
	outMortgage := out["mortgage"].(map[string]any)
	rootMortgage := root["mortgage"].(map[string]any)
	outMortgage["lender"] = "Other"
	assert.Equal(t, "Other", rootMortgage["lender"], "off-path subtree should be shared by reference")
}

func TestSetCreatesMissingIntermediates(t *testing.T) {
	root := Doc{}

	out := Set(root, Path{"applicant", "contact", "email"}, "x@y.z")

	assert.Equal(t, "x@y.z", Str(out, "applicant", "contact", "email"))
	assert.Empty(t, root)
}

func TestSetSingleSegment(t *testing.T) {
	root := Doc{"status": "Active", "client_id": "c1"}

	out := Set(root, Path{"status"}, "Pending")

	assert.Equal(t, "Pending", out["status"])
	assert.Equal(t, "c1", out["client_id"])
	assert.Equal(t, "Active", root["status"])
}

func TestSetSliceElement(t *testing.T) {
	root := Doc{"liabilities": []any{
		map[string]any{"debt_name": "Visa", "balance": "1200"},
		map[string]any{"debt_name": "Auto", "balance": "9000"},
	}}

	out := Set(root, Path{"liabilities", "1", "balance"}, "8500")

	liabs := out["liabilities"].([]any)
	require.Len(t, liabs, 2)
	assert.Equal(t, "8500", liabs[1].(map[string]any)["balance"])
	assert.Equal(t, "Visa", liabs[0].(map[string]any)["debt_name"])

	orig := root["liabilities"].([]any)
	assert.Equal(t, "9000", orig[1].(map[string]any)["balance"])
}

func TestGet(t *testing.T) {
	root := Doc{"a": map[string]any{"b": []any{map[string]any{"c": "v"}}}}

	v, ok := Get(root, Path{"a", "b", "0", "c"})
	require.True(t, ok)
	assert.Equal(t, "v", v)

	_, ok = Get(root, Path{"a", "missing"})
	assert.False(t, ok)

	_, ok = Get(root, Path{"a", "b", "5"})
	assert.False(t, ok)
}

func TestNum(t *testing.T) {
	assert.Equal(t, 120.0, Num("120"))
	assert.Equal(t, 0.0, Num(""))
	assert.Equal(t, 0.0, Num("abc"))
	assert.Equal(t, 30.5, Num(30.5))
	assert.Equal(t, 0.0, Num(nil))
}
