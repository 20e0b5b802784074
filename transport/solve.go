// Package transport - unified entry point and iteration controller.
//
// Solve stages the whole pipeline:
//
//	validate → normalize costs → balance → profit matrix →
//	BUILD_INITIAL → {CHECK_OPTIMAL ⇄ IMPROVE} → DONE → aggregate.
//
// Design principles:
//   - Deterministic: fixed scan orders and tie-breaks everywhere; identical
//     inputs yield identical Solutions (modulo Elapsed).
//   - Strict sentinels: structural input errors come from types.go and are
//     checked with errors.Is; malformed cost input never errors (coerced to
//     zero, reported via Solution.Warnings).
//   - Non-convergence is reported, not raised: hitting the iteration cap or
//     stagnating returns the best plan found with Optimal=false.
//   - Single-threaded and pure: one solve owns its matrices exclusively;
//     callers wanting timeouts wrap the call externally.
package transport

import (
	"time"

	"github.com/katalvlaran/middleman/matrix"
)

// Algorithm names the solving method reported in Solution.Algorithm.
const Algorithm = "maximum-element/dual-improvement"

// solveState enumerates the iteration controller states.
type solveState int

const (
	stateBuildInitial solveState = iota // run the Maximum Element Method once
	stateCheckOptimal                   // derive duals, look for opportunities
	stateImprove                        // reallocate into the best opportunity
	stateDone                           // terminal; the controller never resumes
)

// Solve runs the middleman solver on the given problem.
//
// Contract:
//   - p must pass structural validation (see sentinel errors in types.go);
//     malformed transportation costs are coerced, not rejected.
//   - opts override DefaultOptions; invalid overrides yield ErrBadEpsilon /
//     ErrBadMaxIterations / ErrBadDualPasses.
//
// The returned Solution is self-contained and immutable: matrices, balanced
// node lists, totals, route list, and iteration/timing metadata.
//
// Complexity: O(MaxIterations · m·n) time, O(m·n) space for the m×n
// balanced problem.
func Solve(p Problem, opts ...Option) (Solution, error) {
	start := time.Now()

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 1 — options and structural validation (fail fast, no computation).
	if err := validateOptions(o); err != nil {
		return Solution{}, err
	}
	if err := validateProblem(p); err != nil {
		return Solution{}, err
	}

	// Stage 2 — cost normalization (coercing, never fatal) and balancing.
	costs, warnings, err := normalizeCosts(p)
	if err != nil {
		return Solution{}, err
	}
	b := balanceProblem(p.Suppliers, p.Customers, o.Epsilon)

	// Stage 3 — profit matrix over the balanced problem.
	profit, err := buildProfitMatrix(b, costs)
	if err != nil {
		return Solution{}, err
	}

	// Stage 4 — the BUILD_INITIAL → {CHECK_OPTIMAL ⇄ IMPROVE} → DONE machine.
	var (
		plan       *matrix.Dense // current transportation plan
		opps       []Opportunity // opportunities found by the last check
		iterations int           // accepted improvement steps
		optimal    bool          // terminal optimality flag
		bestProfit float64       // net profit of the current plan
		state      = stateBuildInitial
	)
	for state != stateDone {
		switch state {
		case stateBuildInitial:
			plan, err = buildInitialPlan(b, profit, o.Epsilon)
			if err != nil {
				return Solution{}, err
			}
			bestProfit = aggregateTotals(b, costs, plan, o.Epsilon).profit
			state = stateCheckOptimal

		case stateCheckOptimal:
			alpha, beta := solveDuals(profit, plan, o.Epsilon, o.DualPasses)
			opps = findOpportunities(profit, plan, alpha, beta, o.Epsilon)
			if len(opps) == 0 {
				optimal = true
				state = stateDone
			} else {
				state = stateImprove
			}

		case stateImprove:
			next := improvePlan(b, plan, opps[0], o.Epsilon)

			// Stagnation: the heuristic found no valid reallocation.
			same, cmpErr := next.EqualWithin(plan, o.Epsilon)
			if cmpErr != nil {
				return Solution{}, cmpErr
			}
			if same {
				state = stateDone

				break
			}

			// An accepted step must not decrease total profit; a losing
			// shift is discarded and the solve terminates non-optimal.
			nextProfit := aggregateTotals(b, costs, next, o.Epsilon).profit
			if nextProfit < bestProfit-o.Epsilon {
				state = stateDone

				break
			}

			plan, bestProfit = next, nextProfit
			iterations++
			if iterations >= o.MaxIterations {
				state = stateDone // hard cap reached: done, non-optimal

				break
			}
			state = stateCheckOptimal
		}
	}

	// Stage 5 — aggregation over the terminal plan.
	t := aggregateTotals(b, costs, plan, o.Epsilon)

	return Solution{
		ProfitMatrix:       profit,
		Plan:               plan,
		Suppliers:          b.suppliers,
		Customers:          b.customers,
		Balanced:           b.preBalanced,
		Feasible:           checkFeasible(b, plan, o.Epsilon),
		Optimal:            optimal,
		TotalPurchaseCost:  t.purchase,
		TotalTransportCost: t.transport,
		TotalRevenue:       t.revenue,
		TotalProfit:        t.profit,
		Routes:             collectRoutes(b, costs, plan, o.Epsilon),
		Warnings:           warnings,
		Algorithm:          Algorithm,
		Iterations:         iterations,
		Elapsed:            time.Since(start),
	}, nil
}
