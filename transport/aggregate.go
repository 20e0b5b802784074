package transport

import "github.com/katalvlaran/middleman/matrix"

// totals carries the financial aggregates of a plan, fictitious legs
// excluded per the rules in aggregateTotals.
type totals struct {
	purchase  float64
	transport float64
	revenue   float64
	profit    float64 // revenue − purchase − transport
}

// aggregateTotals sums the financial components of every positive-flow cell.
//
// Exclusion rules for flows touching the fictitious node:
//   - revenue depends solely on the customer leg: it is accumulated whenever
//     the customer is real, even when the supplier is fictitious;
//   - purchase and transportation costs are accumulated only when both ends
//     are real (a fictitious leg means the goods were never actually bought
//     or moved).
//
// Complexity: O(m·n).
func aggregateTotals(b balanced, costs *matrix.Dense, plan *matrix.Dense, eps float64) totals {
	var (
		t    totals
		i, j int
		x, c float64
	)
	for i = 0; i < plan.Rows(); i++ {
		for j = 0; j < plan.Cols(); j++ {
			x, _ = plan.At(i, j)
			if x <= eps {
				continue
			}
			if !b.customers[j].Fictitious {
				t.revenue += b.customers[j].SellingPrice * x
			}
			if !b.suppliers[i].Fictitious && !b.customers[j].Fictitious {
				t.purchase += b.suppliers[i].PurchaseCost * x
				c, _ = costs.At(i, j) // real×real cell: within costs bounds
				t.transport += c * x
			}
		}
	}
	t.profit = t.revenue - t.purchase - t.transport

	return t
}

// collectRoutes emits every positive-flow cell whose both endpoints are
// real, in row-major order, with its quantity and per-unit financial
// components. Complexity: O(m·n).
func collectRoutes(b balanced, costs *matrix.Dense, plan *matrix.Dense, eps float64) []Route {
	var (
		routes []Route
		i, j   int
		x, c   float64
	)
	for i = 0; i < b.realSuppliers; i++ {
		for j = 0; j < b.realCustomers; j++ {
			x, _ = plan.At(i, j)
			if x <= eps {
				continue
			}
			c, _ = costs.At(i, j)
			routes = append(routes, Route{
				SupplierID:    b.suppliers[i].ID,
				SupplierName:  b.suppliers[i].Name,
				CustomerID:    b.customers[j].ID,
				CustomerName:  b.customers[j].Name,
				Quantity:      x,
				UnitProfit:    b.customers[j].SellingPrice - b.suppliers[i].PurchaseCost - c,
				PurchaseCost:  b.suppliers[i].PurchaseCost,
				TransportCost: c,
				SellingPrice:  b.customers[j].SellingPrice,
			})
		}
	}

	return routes
}

// checkFeasible verifies the capacity invariant of the plan: every row ships
// at most its supply and every column receives at most its demand, within
// eps. Complexity: O(m·n).
func checkFeasible(b balanced, plan *matrix.Dense, eps float64) bool {
	var (
		i, j int
		sum  float64
	)
	for i = 0; i < plan.Rows(); i++ {
		sum, _ = plan.RowSum(i)
		if sum > b.suppliers[i].Supply+eps {
			return false
		}
	}
	for j = 0; j < plan.Cols(); j++ {
		sum, _ = plan.ColSum(j)
		if sum > b.customers[j].Demand+eps {
			return false
		}
	}

	return true
}
