package matrix_test

import (
	"testing"

	"github.com/katalvlaran/middleman/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_BadShape verifies that non-positive dimensions are rejected
// with ErrBadShape before any allocation happens.
func TestNewDense_BadShape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "zero rows must error")

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrBadShape, "negative cols must error")
}

// TestDense_AtSetAdd exercises the safe accessors, including accumulation.
func TestDense_AtSetAdd(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 5.5))
	require.NoError(t, m.Add(1, 2, 0.5))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v, "Set then Add must accumulate")

	// New matrices are zero-initialized.
	v, err = m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

// TestDense_OutOfRange checks that every indexer returns ErrOutOfRange
// instead of panicking.
func TestDense_OutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Add(-1, 0, 1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.RowSum(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.ColSum(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDense_Clone verifies deep-copy semantics: mutating the clone must not
// affect the original.
func TestDense_Clone(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 7))

	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 9))

	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v, "original must be unaffected by clone mutation")
}

// TestDense_EqualWithin covers tolerance comparison, shape mismatch and nil.
func TestDense_EqualWithin(t *testing.T) {
	a, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	b := a.Clone()

	eq, err := a.EqualWithin(b, 1e-9)
	require.NoError(t, err)
	assert.True(t, eq, "identical matrices compare equal")

	require.NoError(t, b.Add(1, 1, 0.0005))
	eq, err = a.EqualWithin(b, 0.001)
	require.NoError(t, err)
	assert.True(t, eq, "difference below eps compares equal")

	eq, err = a.EqualWithin(b, 0.0001)
	require.NoError(t, err)
	assert.False(t, eq, "difference above eps compares unequal")

	other, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = a.EqualWithin(other, 0.001)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = a.EqualWithin(nil, 0.001)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestDense_RowColSums checks marginal sums against a hand-filled matrix.
func TestDense_RowColSums(t *testing.T) {
	// [1 2 3]
	// [4 5 6]
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	vals := [][]float64{{1, 2, 3}, {4, 5, 6}}
	for i := range vals {
		for j := range vals[i] {
			require.NoError(t, m.Set(i, j, vals[i][j]))
		}
	}

	rs, err := m.RowSum(1)
	require.NoError(t, err)
	assert.Equal(t, 15.0, rs)

	cs, err := m.ColSum(2)
	require.NoError(t, err)
	assert.Equal(t, 9.0, cs)
}

// TestDense_String sanity-checks the debug representation.
func TestDense_String(t *testing.T) {
	m, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1.5))

	assert.Equal(t, "[1.5, 0]\n", m.String())
}
