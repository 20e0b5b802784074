package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wholesaleProblem assembles the worked small case as a full Problem.
func wholesaleProblem() Problem {
	return Problem{
		Suppliers:  wholesaleSuppliers(),
		Customers:  wholesaleCustomers(),
		CostMatrix: [][]float64{{2, 4}, {3, 1}},
	}
}

// TestProfitMatrix_WorkedCase checks the exact formula against the known
// matrix [[10,13],[7,14]], plus the fictitious column where the selling
// price and transport cost are both zero.
func TestProfitMatrix_WorkedCase(t *testing.T) {
	p := wholesaleProblem()
	costs, warnings, err := normalizeCosts(p)
	require.NoError(t, err)
	require.Empty(t, warnings)

	b := balanceProblem(p.Suppliers, p.Customers, DefaultEpsilon)
	profit, err := buildProfitMatrix(b, costs)
	require.NoError(t, err)

	want := [][]float64{
		{10, 13, -8}, // 20-8-2,  25-8-4,  0-8-0
		{7, 14, -10}, // 20-10-3, 25-10-1, 0-10-0
	}
	for i := range want {
		for j := range want[i] {
			z, zErr := profit.At(i, j)
			require.NoError(t, zErr)
			assert.Equalf(t, want[i][j], z, "Z[%d][%d]", i, j)
		}
	}
}

// TestProfitMatrix_Pure verifies purity: identical inputs yield an
// element-for-element identical matrix on every call.
func TestProfitMatrix_Pure(t *testing.T) {
	p := wholesaleProblem()
	costs, _, err := normalizeCosts(p)
	require.NoError(t, err)
	b := balanceProblem(p.Suppliers, p.Customers, DefaultEpsilon)

	first, err := buildProfitMatrix(b, costs)
	require.NoError(t, err)
	second, err := buildProfitMatrix(b, costs)
	require.NoError(t, err)

	eq, err := first.EqualWithin(second, 0)
	require.NoError(t, err)
	assert.True(t, eq, "profit matrix must be an exact pure function of its inputs")
}
