package transport

import "github.com/katalvlaran/middleman/matrix"

// basicCell is one positive-flow coordinate of the current plan.
type basicCell struct {
	row, col int
}

// collectBasicCells returns every cell with flow above eps, in row-major
// order. Row-major order keeps the dual derivation deterministic.
// Complexity: O(m·n).
func collectBasicCells(plan *matrix.Dense, eps float64) []basicCell {
	var (
		cells []basicCell
		i, j  int
		x     float64
	)
	for i = 0; i < plan.Rows(); i++ {
		for j = 0; j < plan.Cols(); j++ {
			x, _ = plan.At(i, j)
			if x > eps {
				cells = append(cells, basicCell{row: i, col: j})
			}
		}
	}

	return cells
}

// solveDuals derives the row potentials alpha and column potentials beta
// from the basic cells of the current plan, so that
//
//	Z[i][j] = alpha[i] + beta[j]  for every basic cell (i, j).
//
// The system has one degree of freedom; it is fixed by pinning alpha of the
// first row owning a basic cell to 0. Derivation then runs as a bounded
// fixed-point scan over the basic cells: whenever exactly one of
// alpha[i]/beta[j] is known, the other is derived. The scan stops when a full
// pass derives nothing new, or after maxPasses passes.
//
// Under degeneracy (too few basic cells to span all rows and columns) some
// potentials can remain unknown; they default to 0. That default is an
// approximation, not a guaranteed dual solution — the optimality test built
// on it is correspondingly heuristic for degenerate plans.
//
// Complexity: O(maxPasses · |basic|) time, O(m+n) space.
func solveDuals(profit, plan *matrix.Dense, eps float64, maxPasses int) (alpha, beta []float64) {
	rows, cols := profit.Rows(), profit.Cols()
	cells := collectBasicCells(plan, eps)

	// Explicit unset markers: the zero value of potential means "unknown".
	alphaP := make([]potential, rows)
	betaP := make([]potential, cols)

	if len(cells) > 0 {
		// Pin the first basic row's potential to fix the degree of freedom.
		alphaP[cells[0].row] = potential{value: 0, known: true}
	}

	var (
		pass    int     // derivation pass counter
		changed bool    // whether the current pass derived anything
		z       float64 // profit at the basic cell under scan
	)
	for pass = 0; pass < maxPasses; pass++ {
		changed = false
		for _, c := range cells {
			z, _ = profit.At(c.row, c.col)
			switch {
			case alphaP[c.row].known && !betaP[c.col].known:
				betaP[c.col] = potential{value: z - alphaP[c.row].value, known: true}
				changed = true
			case !alphaP[c.row].known && betaP[c.col].known:
				alphaP[c.row] = potential{value: z - betaP[c.col].value, known: true}
				changed = true
			}
		}
		if !changed {
			break // fixed point reached; further passes derive nothing
		}
	}

	// Materialize, defaulting unknowns to 0.
	alpha = make([]float64, rows)
	beta = make([]float64, cols)
	var i int
	for i = 0; i < rows; i++ {
		alpha[i] = alphaP[i].value // zero when unknown
	}
	for i = 0; i < cols; i++ {
		beta[i] = betaP[i].value
	}

	return alpha, beta
}
