package transport

import "github.com/katalvlaran/middleman/matrix"

// buildInitialPlan constructs a feasible starting plan with the Maximum
// Element Method: while any supply and any demand remain, allocate
// min(remaining supply, remaining demand) to the eligible cell with the
// largest unit profit.
//
// Tie-break: the first maximal cell in row-major scan order (lowest row,
// then lowest column). This is a deliberate, deterministic policy — two
// identical inputs must yield identical plans.
//
// The remaining-supply/demand vectors are locally owned buffers scoped to
// this call; the balanced problem itself is never mutated. If no eligible
// cell exists while both vectors still hold positive entries (inconsistent
// remainders), the loop terminates early and feasibility is judged later.
//
// For a non-degenerate balanced problem the loop performs at most
// rows+cols−1 allocations, each saturating a row or a column.
//
// Complexity: O((m+n)·m·n) time, O(m+n) extra space.
func buildInitialPlan(b balanced, profit *matrix.Dense, eps float64) (*matrix.Dense, error) {
	rows, cols := len(b.suppliers), len(b.customers)
	plan, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	// Locally owned mutable remainders, seeded from the balanced problem.
	remSupply := make([]float64, rows)
	remDemand := make([]float64, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		remSupply[i] = b.suppliers[i].Supply
	}
	for j = 0; j < cols; j++ {
		remDemand[j] = b.customers[j].Demand
	}

	var (
		bestI, bestJ int     // coordinates of the best eligible cell
		bestZ        float64 // profit at (bestI, bestJ)
		z            float64 // profit at the cell under scan
		qty          float64 // quantity allocated this step
		found        bool    // an eligible cell exists this step
	)
	for anyPositive(remSupply, eps) && anyPositive(remDemand, eps) {
		// Scan for the maximum-profit eligible cell, row-major.
		found = false
		for i = 0; i < rows; i++ {
			if remSupply[i] <= eps {
				continue
			}
			for j = 0; j < cols; j++ {
				if remDemand[j] <= eps {
					continue
				}
				z, _ = profit.At(i, j)
				// Strict > keeps the first maximal cell on ties.
				if !found || z > bestZ {
					found, bestI, bestJ, bestZ = true, i, j, z
				}
			}
		}
		if !found {
			break // inconsistent remainders; nothing left to allocate
		}

		qty = remSupply[bestI]
		if remDemand[bestJ] < qty {
			qty = remDemand[bestJ]
		}
		_ = plan.Add(bestI, bestJ, qty)
		remSupply[bestI] -= qty
		remDemand[bestJ] -= qty
	}

	return plan, nil
}

// anyPositive reports whether any entry of v exceeds eps.
// Complexity: O(len(v)).
func anyPositive(v []float64, eps float64) bool {
	for _, x := range v {
		if x > eps {
			return true
		}
	}

	return false
}
