package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestImprovePlan_DirectAllocation covers the fast path: free capacity on
// both sides of the entering cell receives min(available, unmet) directly.
func TestImprovePlan_DirectAllocation(t *testing.T) {
	b := balanced{
		suppliers:     []Supplier{{ID: "A", Supply: 10}, {ID: "B", Supply: 10}},
		customers:     []Customer{{ID: "X", Demand: 5}, {ID: "Y", Demand: 15}},
		realSuppliers: 2,
		realCustomers: 2,
	}
	plan := denseOf(t, [][]float64{{0, 0}, {0, 0}})

	next := improvePlan(b, plan, Opportunity{Row: 0, Col: 0, Delta: 1}, DefaultEpsilon)

	x, err := next.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, x, "min(available supply 10, unmet demand 5)")

	// The input plan is never mutated.
	orig, err := plan.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, orig)
}

// TestImprovePlan_RowShift covers the bounded same-row reallocation: when
// the entering row is fully shipped, at most one unit moves from a sibling
// column with positive flow.
func TestImprovePlan_RowShift(t *testing.T) {
	b := balanced{
		suppliers:     []Supplier{{ID: "A", Supply: 10}},
		customers:     []Customer{{ID: "X", Demand: 10}, {ID: "Y", Demand: 5}},
		realSuppliers: 1,
		realCustomers: 2,
	}
	plan := denseOf(t, [][]float64{{10, 0}})

	next := improvePlan(b, plan, Opportunity{Row: 0, Col: 1, Delta: 1}, DefaultEpsilon)

	donor, _ := next.At(0, 0)
	entering, _ := next.At(0, 1)
	assert.Equal(t, 9.0, donor, "donor cell loses one unit")
	assert.Equal(t, 1.0, entering, "entering cell gains one unit")
}

// TestImprovePlan_ColumnShift covers the fallback same-column reallocation,
// bounded by the entering row's available supply.
func TestImprovePlan_ColumnShift(t *testing.T) {
	b := balanced{
		suppliers:     []Supplier{{ID: "A", Supply: 5}, {ID: "B", Supply: 5}},
		customers:     []Customer{{ID: "X", Demand: 5}},
		realSuppliers: 2,
		realCustomers: 1,
	}
	plan := denseOf(t, [][]float64{{0}, {5}}) // column saturated by row B

	next := improvePlan(b, plan, Opportunity{Row: 0, Col: 0, Delta: 1}, DefaultEpsilon)

	donor, _ := next.At(1, 0)
	entering, _ := next.At(0, 0)
	assert.Equal(t, 4.0, donor)
	assert.Equal(t, 1.0, entering)
}

// TestImprovePlan_Stagnation: no free capacity and no valid donor — the
// returned plan equals the input, which the controller reads as stagnation.
func TestImprovePlan_Stagnation(t *testing.T) {
	b := balanced{
		suppliers:     []Supplier{{ID: "A", Supply: 5}},
		customers:     []Customer{{ID: "X", Demand: 5}, {ID: "Y", Demand: 0}},
		realSuppliers: 1,
		realCustomers: 2,
	}
	// Row A fully shipped into X; Y wants nothing, so no shift is legal.
	plan := denseOf(t, [][]float64{{5, 0}})

	next := improvePlan(b, plan, Opportunity{Row: 0, Col: 1, Delta: 1}, DefaultEpsilon)

	same, err := next.EqualWithin(plan, DefaultEpsilon)
	require.NoError(t, err)
	assert.True(t, same, "no valid reallocation must leave the plan unchanged")
}

// TestMinOf pins the three-way minimum helper.
func TestMinOf(t *testing.T) {
	assert.Equal(t, 1.0, minOf(3, 1, 2))
	assert.Equal(t, 1.0, minOf(1, 3, 2))
	assert.Equal(t, 1.0, minOf(2, 3, 1))
}
