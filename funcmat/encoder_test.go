package funcmat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matricity/matricity/funcmat"
	"github.com/matricity/matricity/onehot"
)

// requireOneHotColumns asserts the structural invariant of every
// function matrix: each column holds exactly one 1 and zeros elsewhere.
func requireOneHotColumns[S, T comparable](t *testing.T, m *funcmat.Matrix[S, T]) {
	t.Helper()

	for j := 0; j < m.Cols(); j++ {
		col, err := m.Column(j)
		require.NoError(t, err, "column %d must be readable", j)

		sum := 0.0
		for _, x := range col {
			assert.Contains(t, []float64{0, 1}, x, "column %d entry outside {0,1}", j)
			sum += x
		}
		assert.Equal(t, 1.0, sum, "column %d must sum to exactly 1 (totality)", j)
	}
}

// TestFromTable_CyclicPermutation is the table-based rotation scenario:
// a0→a1, a1→a2, a2→a0; applying at a1 yields a2.
func TestFromTable_CyclicPermutation(t *testing.T) {
	a := onehot.MustDomain("a0", "a1", "a2")

	m, err := funcmat.FromTable(a, a, map[string]string{
		"a0": "a1",
		"a1": "a2",
		"a2": "a0",
	})
	require.NoError(t, err)

	requireOneHotColumns(t, m)

	out, err := m.Apply("a1")
	assert.NoError(t, err)
	assert.Equal(t, "a2", out, "rotation maps a1 to a2")
}

// TestFromTable_IncompleteMapping verifies a 3-element domain with only
// 2 table entries is rejected before any matrix exists.
func TestFromTable_IncompleteMapping(t *testing.T) {
	a := onehot.MustDomain(1, 2, 3)

	_, err := funcmat.FromTable(a, a, map[int]int{1: 2, 2: 3})
	assert.ErrorIs(t, err, funcmat.ErrIncompleteMapping, "partial table must error")
}

// TestFromTable_UnknownElement covers both membership violations: a
// mapped output outside the target domain and a key outside the source.
func TestFromTable_UnknownElement(t *testing.T) {
	src := onehot.MustDomain(1, 2)
	dst := onehot.MustDomain("one", "two")

	_, err := funcmat.FromTable(src, dst, map[int]string{1: "one", 2: "three"})
	assert.ErrorIs(t, err, funcmat.ErrUnknownElement, "output outside target must error")

	_, err = funcmat.FromTable(src, dst, map[int]string{1: "one", 2: "two", 9: "one"})
	assert.ErrorIs(t, err, funcmat.ErrUnknownElement, "key outside source must error")
}

// TestFromTable_ErrorPriority pins the documented ordering between
// competing failures: nil inputs win over membership violations, and
// membership violations win over totality.
func TestFromTable_ErrorPriority(t *testing.T) {
	src := onehot.MustDomain(1, 2)
	dst := onehot.MustDomain("one", "two")

	// A nil domain beats a table that would also fail the key scan.
	badKeys := map[int]string{9: "one"}
	_, err := funcmat.FromTable(nil, dst, badKeys)
	assert.ErrorIs(t, err, funcmat.ErrNilDomain, "nil domain must be reported before key membership")
	_, err = funcmat.FromTable(src, nil, badKeys)
	assert.ErrorIs(t, err, funcmat.ErrNilDomain, "nil domain must be reported before key membership")

	// A key outside the source domain beats the missing entries the
	// same table also has.
	_, err = funcmat.FromTable(src, dst, map[int]string{1: "one", 9: "two"})
	assert.ErrorIs(t, err, funcmat.ErrUnknownElement, "membership must be reported before totality")
}

// TestFromTable_NilDomain verifies the nil-domain guards.
func TestFromTable_NilDomain(t *testing.T) {
	d := onehot.MustDomain(1)

	_, err := funcmat.FromTable(nil, d, map[int]int{})
	assert.ErrorIs(t, err, funcmat.ErrNilDomain)
	_, err = funcmat.FromTable(d, nil, map[int]int{})
	assert.ErrorIs(t, err, funcmat.ErrNilDomain)
}

// TestFromFunc_SwapMatrix is the implicit-rule scenario: f(x)=1-x over
// {0,1} builds the 2×2 anti-identity and f∘f is the identity.
func TestFromFunc_SwapMatrix(t *testing.T) {
	b := onehot.MustDomain(0, 1)

	swap, err := funcmat.FromFunc(b, b, func(x int) int { return 1 - x })
	require.NoError(t, err)

	requireOneHotColumns(t, swap)

	// Column 0 encodes f(0)=1, column 1 encodes f(1)=0.
	col0, err := swap.Column(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, col0, "f(0)=1 ⇒ column 0 is ⟨0 1⟩")
	col1, err := swap.Column(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, col1, "f(1)=0 ⇒ column 1 is ⟨1 0⟩")

	// swap ∘ swap == identity.
	twice, err := funcmat.Compose(swap, swap)
	require.NoError(t, err)
	idn, err := funcmat.Identity(b)
	require.NoError(t, err)
	assert.True(t, funcmat.Equal(twice, idn), "an involution composed with itself is the identity")
}

// TestFromFunc_RangeViolation verifies a rule escaping the declared
// target domain is rejected.
func TestFromFunc_RangeViolation(t *testing.T) {
	src := onehot.MustDomain(0, 1, 2)
	dst := onehot.MustDomain(0, 1)

	_, err := funcmat.FromFunc(src, dst, func(x int) int { return x })
	assert.ErrorIs(t, err, funcmat.ErrRangeViolation, "f(2)=2 is outside {0,1}")
}

// TestFromFunc_NilInputs verifies the nil guards.
func TestFromFunc_NilInputs(t *testing.T) {
	d := onehot.MustDomain(1)

	_, err := funcmat.FromFunc(nil, d, func(x int) int { return x })
	assert.ErrorIs(t, err, funcmat.ErrNilDomain)
	_, err = funcmat.FromFunc(d, nil, func(x int) int { return x })
	assert.ErrorIs(t, err, funcmat.ErrNilDomain)
	_, err = funcmat.FromFunc[int, int](d, d, nil)
	assert.ErrorIs(t, err, funcmat.ErrNilFunc)
}

// TestFromFunc_ProductDomain lifts a two-argument rule through a
// product domain — the original use case of implicit encoding.
func TestFromFunc_ProductDomain(t *testing.T) {
	uint2 := onehot.MustDomain(0, 1, 2, 3)
	enum3 := onehot.MustDomain("less", "same", "more")

	pairs, err := onehot.Product(uint2, uint2)
	require.NoError(t, err)

	compare, err := funcmat.FromFunc(pairs, enum3, func(p onehot.Pair[int, int]) string {
		switch {
		case p.Left < p.Right:
			return "less"
		case p.Left > p.Right:
			return "more"
		default:
			return "same"
		}
	})
	require.NoError(t, err)

	requireOneHotColumns(t, compare)
	assert.Equal(t, 3, compare.Rows())
	assert.Equal(t, 16, compare.Cols())

	out, err := compare.Apply(onehot.Pair[int, int]{Left: 3, Right: 2})
	assert.NoError(t, err)
	assert.Equal(t, "more", out, "3 > 2")
}

// TestIdentity_Structure verifies Identity builds the permutation
// matrix of the identity function.
func TestIdentity_Structure(t *testing.T) {
	d := onehot.MustDomain("x", "y", "z")

	idn, err := funcmat.Identity(d)
	require.NoError(t, err)

	requireOneHotColumns(t, idn)
	for j := 0; j < idn.Cols(); j++ {
		col, err := idn.Column(j)
		require.NoError(t, err)
		assert.Equal(t, 1.0, col[j], "identity column %d is e_%d", j, j)
	}

	_, err = funcmat.Identity[string](nil)
	assert.ErrorIs(t, err, funcmat.ErrNilDomain)
}

// TestMatrix_Introspection covers Source/Target/Table/Column bounds and
// the Dense deep copy.
func TestMatrix_Introspection(t *testing.T) {
	src := onehot.MustDomain(0, 1)
	dst := onehot.MustDomain("even", "odd")

	parity, err := funcmat.FromTable(src, dst, map[int]string{0: "even", 1: "odd"})
	require.NoError(t, err)

	assert.True(t, parity.Source().Equal(src))
	assert.True(t, parity.Target().Equal(dst))
	assert.Equal(t, map[int]string{0: "even", 1: "odd"}, parity.Table(), "Table inverts the encoding")

	_, err = parity.Column(-1)
	assert.ErrorIs(t, err, funcmat.ErrIndexOutOfRange)
	_, err = parity.Column(2)
	assert.ErrorIs(t, err, funcmat.ErrIndexOutOfRange)

	// Mutating the exported dense copy must not reach the matrix.
	d := parity.Dense()
	require.NoError(t, d.SetAt(1.0, 0, 1))
	col, err := parity.Column(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, col, "matrix unaffected by mutation of the exported copy")
}
