// Package middleman is a deterministic solver for the middleman problem —
// the unbalanced transportation problem under a profit objective.
//
// 🚀 What is the middleman problem?
//
//	A middleman buys from suppliers (each with a supply cap and a per-unit
//	purchase cost) and resells to customers (each with a demand cap and a
//	per-unit selling price), paying a per-pair transportation cost. The
//	solver finds the flow assignment maximizing total profit
//	(revenue − purchase − transportation) under the capacity constraints.
//
// ✨ Key features:
//   - automatic balancing via a zero-cost/zero-price fictitious node
//   - Maximum Element Method initial plan (deterministic tie-breaks)
//   - dual-variable (α/β) optimality testing with reduced profits
//   - bounded local-reallocation improvement loop with stagnation detection
//   - financial totals and route list with fictitious flows excluded
//   - pure Go engine — no runtime dependencies, no shared state, no locks
//
// Under the hood, everything is organized under two packages:
//
//	transport/ — the optimization engine: Solve(Problem, ...Option) → Solution
//	matrix/    — row-major dense float64 matrices backing the tableaus
//
// plus cmd/middleman, a CLI that reads YAML problem definitions and renders
// route tables, and examples/ with runnable walkthroughs.
//
// Quick example:
//
//	sol, err := transport.Solve(transport.Problem{
//	    Suppliers:  []transport.Supplier{{ID: "S1", Supply: 50, PurchaseCost: 8}},
//	    Customers:  []transport.Customer{{ID: "C1", Demand: 40, SellingPrice: 20}},
//	    CostMatrix: [][]float64{{2}},
//	})
//
// See transport/doc.go for the algorithm's contracts and known limitations.
package middleman
