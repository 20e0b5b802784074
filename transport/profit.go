package transport

import "github.com/katalvlaran/middleman/matrix"

// buildProfitMatrix computes the per-cell unit profit over the balanced
// problem:
//
//	Z[i][j] = SellingPrice[j] − PurchaseCost[i] − transport[i][j]
//
// costs is the normalized real×real transportation matrix (nil means all
// zero); any cell on a fictitious row or column has zero transportation cost
// (the fictitious node also carries zero price/cost, so the formula stays
// uniform across all cells).
//
// Pure function of its inputs: no mutation, no error conditions beyond
// allocation of the result.
//
// Complexity: O(m·n) time and memory for the m×n balanced problem.
func buildProfitMatrix(b balanced, costs *matrix.Dense) (*matrix.Dense, error) {
	rows, cols := len(b.suppliers), len(b.customers)
	profit, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	var (
		i, j int     // cell coordinates
		t    float64 // per-unit transportation cost for the cell
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			t = 0
			if costs != nil && i < b.realSuppliers && j < b.realCustomers {
				t, _ = costs.At(i, j) // bounds proven by realSuppliers/realCustomers
			}
			_ = profit.Set(i, j, b.customers[j].SellingPrice-b.suppliers[i].PurchaseCost-t)
		}
	}

	return profit, nil
}
