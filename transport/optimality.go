package transport

import (
	"sort"

	"github.com/katalvlaran/middleman/matrix"
)

// findOpportunities computes the reduced profit of every non-basic cell
// (flow ≤ eps, which also absorbs floating-point noise left by earlier
// reallocations):
//
//	Delta[i][j] = Z[i][j] − alpha[i] − beta[j]
//
// and returns the cells with Delta > eps, sorted by Delta descending. Ties
// keep row-major order (stable sort over a row-major scan), so the result is
// deterministic. The plan is optimal iff the returned slice is empty — the
// dual-feasibility condition of the transportation simplex under a
// profit-maximization sign convention.
//
// Complexity: O(m·n + k·log k) where k is the number of improving cells.
func findOpportunities(profit, plan *matrix.Dense, alpha, beta []float64, eps float64) []Opportunity {
	var (
		opps  []Opportunity
		i, j  int
		x, z  float64
		delta float64
	)
	for i = 0; i < profit.Rows(); i++ {
		for j = 0; j < profit.Cols(); j++ {
			x, _ = plan.At(i, j)
			if x > eps {
				continue // basic cell: Z = alpha + beta by construction
			}
			z, _ = profit.At(i, j)
			delta = z - alpha[i] - beta[j]
			if delta > eps {
				opps = append(opps, Opportunity{Row: i, Col: j, Delta: delta})
			}
		}
	}

	// Stable sort preserves the row-major tie-break.
	sort.SliceStable(opps, func(a, b int) bool { return opps[a].Delta > opps[b].Delta })

	return opps
}
