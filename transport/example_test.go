package transport_test

import (
	"fmt"

	"github.com/katalvlaran/middleman/transport"
)

// ////////////////////////////////////////////////////////////////////////////
// ExampleSolve
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A middleman buys from two suppliers and resells to two customers:
//	  S1: 50 units at 8/unit     C1: wants 40, pays 20/unit
//	  S2: 70 units at 10/unit    C2: wants 60, pays 25/unit
//	Transportation costs per unit: [[2,4],[3,1]].
//
//	Total supply (120) exceeds total demand (100), so a fictitious customer
//	with demand 20 and price 0 absorbs the excess; flows into it never
//	appear in the totals or the route list.
//
// ExampleSolve demonstrates the single entry point with default options.
func ExampleSolve() {
	sol, err := transport.Solve(transport.Problem{
		Suppliers: []transport.Supplier{
			{ID: "S1", Name: "Mill", Supply: 50, PurchaseCost: 8},
			{ID: "S2", Name: "Depot", Supply: 70, PurchaseCost: 10},
		},
		Customers: []transport.Customer{
			{ID: "C1", Name: "North", Demand: 40, SellingPrice: 20},
			{ID: "C2", Name: "South", Demand: 60, SellingPrice: 25},
		},
		CostMatrix: [][]float64{{2, 4}, {3, 1}},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("optimal=%t iterations=%d\n", sol.Optimal, sol.Iterations)
	fmt.Printf("revenue=%.0f purchase=%.0f transport=%.0f profit=%.0f\n",
		sol.TotalRevenue, sol.TotalPurchaseCost, sol.TotalTransportCost, sol.TotalProfit)
	for _, r := range sol.Routes {
		fmt.Printf("%s->%s qty=%.0f unit_profit=%.0f\n",
			r.SupplierID, r.CustomerID, r.Quantity, r.UnitProfit)
	}
	// Output:
	// optimal=true iterations=0
	// revenue=2300 purchase=920 transport=140 profit=1240
	// S1->C1 qty=40 unit_profit=10
	// S2->C2 qty=60 unit_profit=14
}

// ExampleSolve_options shows overriding the iteration cap and tolerance.
func ExampleSolve_options() {
	sol, err := transport.Solve(transport.Problem{
		Suppliers:  []transport.Supplier{{ID: "S1", Supply: 10, PurchaseCost: 5}},
		Customers:  []transport.Customer{{ID: "C1", Demand: 30, SellingPrice: 10}},
		CostMatrix: [][]float64{{1}},
	},
		transport.WithMaxIterations(5),
		transport.WithEpsilon(1e-6),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	// Demand exceeds supply: a fictitious supplier covers 20 units, the
	// real route ships 10.
	fmt.Printf("balanced=%t routes=%d profit=%.0f\n",
		sol.Balanced, len(sol.Routes), sol.TotalProfit)
	// Output:
	// balanced=false routes=1 profit=240
}
