package transport

import "github.com/katalvlaran/middleman/matrix"

// maxShiftStep bounds a single reallocation move when slack must be stolen
// from an existing flow rather than drawn from free capacity.
const maxShiftStep = 1.0

// improvePlan reallocates flow into the entering cell best=(i*, j*) and
// returns a fresh plan; the input plan is never mutated. The caller decides
// whether the step achieved anything by comparing old and new plans
// element-wise within the tolerance.
//
// Policy (bounded, greedy — not a stepping-stone cycle search):
//  1. If row i* has unshipped supply AND column j* has unmet demand,
//     allocate min of the two directly into (i*, j*).
//  2. Otherwise scan the other columns of row i* for positive flow and
//     shift min(existing flow, unmet demand, 1 unit) into (i*, j*).
//  3. Otherwise scan the other rows of column j* likewise, bounded by the
//     row's available supply.
//
// Because only same-row/same-column single-unit shifts are tried, an
// improving cycle through several cells is out of reach: the move can leave
// the plan unchanged even though a longer stepping-stone loop exists. The
// iteration controller treats that as stagnation.
//
// Complexity: O(m·n) time (dominated by the Clone), O(m·n) space.
func improvePlan(b balanced, plan *matrix.Dense, best Opportunity, eps float64) *matrix.Dense {
	next := plan.Clone()

	shipped, _ := next.RowSum(best.Row)
	received, _ := next.ColSum(best.Col)
	availableSupply := b.suppliers[best.Row].Supply - shipped
	unmetDemand := b.customers[best.Col].Demand - received

	// Case 1: free capacity on both sides — allocate directly.
	if availableSupply > eps && unmetDemand > eps {
		qty := availableSupply
		if unmetDemand < qty {
			qty = unmetDemand
		}
		_ = next.Add(best.Row, best.Col, qty)

		return next
	}

	var (
		j, i  int     // scan iterators
		flow  float64 // existing flow at the donor cell
		shift float64 // amount moved into the entering cell
	)

	// Case 2: shift along row i* — donor cell loses up to one unit, bounded
	// by the entering column's unmet demand.
	for j = 0; j < next.Cols(); j++ {
		if j == best.Col {
			continue
		}
		flow, _ = next.At(best.Row, j)
		if flow <= eps {
			continue
		}
		shift = minOf(flow, unmetDemand, maxShiftStep)
		if shift <= eps {
			break // unmet demand exhausted; row shifts cannot help
		}
		_ = next.Add(best.Row, j, -shift)
		_ = next.Add(best.Row, best.Col, shift)

		return next
	}

	// Case 3: shift along column j*, bounded by the entering row's
	// available supply.
	for i = 0; i < next.Rows(); i++ {
		if i == best.Row {
			continue
		}
		flow, _ = next.At(i, best.Col)
		if flow <= eps {
			continue
		}
		shift = minOf(flow, availableSupply, maxShiftStep)
		if shift <= eps {
			break
		}
		_ = next.Add(i, best.Col, -shift)
		_ = next.Add(best.Row, best.Col, shift)

		return next
	}

	// No valid reallocation found; the unchanged clone signals stagnation.
	return next
}

// minOf returns the smallest of three values.
func minOf(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}

	return m
}
