// Package transport solves the middleman (transportation-profit) problem:
// given suppliers with supply caps and purchase costs, customers with demand
// caps and selling prices, and per-pair transportation costs, it finds a flow
// assignment maximizing total profit (revenue − purchase − transportation)
// subject to the capacity constraints.
//
// Pipeline:
//  1. Balance — if total supply ≠ total demand, one fictitious node
//     (zero-cost supplier or zero-price customer) absorbs the difference.
//  2. Profit matrix — Z[i][j] = price[j] − cost[i] − transport[i][j].
//  3. Initial plan — Maximum Element Method: repeatedly allocate
//     min(remaining supply, remaining demand) to the best remaining cell,
//     ties broken row-major for determinism.
//  4. Optimality loop — dual variables α/β are derived over the basic
//     (positive-flow) cells; non-basic cells with reduced profit
//     Δ = Z − α − β above the tolerance are improvement opportunities.
//     The best one receives flow via a bounded local reallocation, and the
//     loop repeats until no opportunity remains, the plan stagnates, a step
//     would lower total profit, or the iteration cap is hit.
//  5. Aggregate — totals and the route list, with every fictitious-node
//     flow excluded (revenue is keyed to the customer leg only).
//
// The improvement step is a single-unit row/column shift, not a full
// stepping-stone cycle search: on inputs where the only improving move is a
// longer cycle the solver terminates with Optimal=false and the best plan
// found. Likewise, under degeneracy (too few basic cells to span all rows
// and columns) unresolved potentials default to zero, which is an
// approximation rather than a guaranteed dual solution.
//
// Determinism is a hard guarantee: identical inputs produce identical
// Solutions (same tie-breaks, same iteration count), modulo Elapsed.
//
// Usage:
//
//	sol, err := transport.Solve(transport.Problem{
//	    Suppliers:  []transport.Supplier{{ID: "S1", Supply: 50, PurchaseCost: 8}},
//	    Customers:  []transport.Customer{{ID: "C1", Demand: 40, SellingPrice: 20}},
//	    CostMatrix: [][]float64{{2}},
//	})
//	if err != nil {
//	    // structural input error; see sentinel errors in types.go
//	}
//	fmt.Println(sol.TotalProfit, sol.Optimal)
//
// Complexity per solve: O(k·m·n) where m×n is the balanced problem size and
// k the iteration count (k ≤ MaxIterations, default 20).
package transport
