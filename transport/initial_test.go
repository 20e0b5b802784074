package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/middleman/matrix"
)

// workedInitialPlan runs balance → profit → initial allocation on the
// wholesale worked case and returns the plan plus the balanced view.
func workedInitialPlan(t *testing.T) (balanced, *matrix.Dense, *matrix.Dense) {
	t.Helper()

	p := wholesaleProblem()
	costs, _, err := normalizeCosts(p)
	require.NoError(t, err)
	b := balanceProblem(p.Suppliers, p.Customers, DefaultEpsilon)
	profit, err := buildProfitMatrix(b, costs)
	require.NoError(t, err)
	plan, err := buildInitialPlan(b, profit, DefaultEpsilon)
	require.NoError(t, err)

	return b, profit, plan
}

// TestInitialPlan_WorkedCase traces the Maximum Element Method on the worked
// case: the globally best cell S2→C2 (profit 14) saturates first, then
// S1→C1 (10), and the remainders drain into the fictitious column.
func TestInitialPlan_WorkedCase(t *testing.T) {
	_, _, plan := workedInitialPlan(t)

	want := [][]float64{
		{40, 0, 10},
		{0, 60, 10},
	}
	for i := range want {
		for j := range want[i] {
			x, err := plan.At(i, j)
			require.NoError(t, err)
			assert.Equalf(t, want[i][j], x, "X[%d][%d]", i, j)
		}
	}
}

// TestInitialPlan_SaturatesCapacities verifies the feasibility guarantee:
// after balancing, every row ships exactly its supply and every column
// receives exactly its demand.
func TestInitialPlan_SaturatesCapacities(t *testing.T) {
	b, _, plan := workedInitialPlan(t)

	for i := range b.suppliers {
		sum, err := plan.RowSum(i)
		require.NoError(t, err)
		assert.InDeltaf(t, b.suppliers[i].Supply, sum, DefaultEpsilon, "row %d", i)
	}
	for j := range b.customers {
		sum, err := plan.ColSum(j)
		require.NoError(t, err)
		assert.InDeltaf(t, b.customers[j].Demand, sum, DefaultEpsilon, "col %d", j)
	}
}

// TestInitialPlan_RowMajorTieBreak pins the deterministic tie-break: with a
// constant profit matrix the first cell in row-major order wins every scan.
func TestInitialPlan_RowMajorTieBreak(t *testing.T) {
	suppliers := []Supplier{
		{ID: "A", Supply: 5, PurchaseCost: 1},
		{ID: "B", Supply: 5, PurchaseCost: 1},
	}
	customers := []Customer{
		{ID: "X", Demand: 5, SellingPrice: 3},
		{ID: "Y", Demand: 5, SellingPrice: 3},
	}
	b := balanceProblem(suppliers, customers, DefaultEpsilon)
	profit, err := buildProfitMatrix(b, nil) // no transport costs: Z is constant 2
	require.NoError(t, err)

	plan, err := buildInitialPlan(b, profit, DefaultEpsilon)
	require.NoError(t, err)

	// (0,0) saturates first, then (1,1) is the first remaining eligible cell.
	x00, _ := plan.At(0, 0)
	x11, _ := plan.At(1, 1)
	assert.Equal(t, 5.0, x00)
	assert.Equal(t, 5.0, x11)
}
