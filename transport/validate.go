// Package transport - input validation and transportation-cost normalization.
//
// Two distinct policies live here, per the error taxonomy of this solver:
//   - Structural input defects (empty node lists, non-positive capacities,
//     negative prices, duplicate identifiers) fail fast with sentinels.
//   - Malformed transportation-cost input (wrong shape, non-finite or
//     negative cells, records with unknown identifiers) is defensively
//     coerced to zero and reported through CostWarning diagnostics instead
//     of aborting the solve.
package transport

import (
	"fmt"
	"math"

	"github.com/katalvlaran/middleman/matrix"
)

// validateProblem verifies the structural contract of a Problem.
//
// Contract:
//   - at least one supplier and one customer;
//   - every node has a non-empty, per-side unique ID;
//   - Supply and Demand strictly positive; PurchaseCost and SellingPrice
//     non-negative and finite.
//
// Sentinels are wrapped with the offending node ID for diagnostics; callers
// match them via errors.Is.
//
// Complexity: O(S + C) time, O(S + C) extra space for uniqueness checks.
func validateProblem(p Problem) error {
	if len(p.Suppliers) == 0 {
		return ErrNoSuppliers
	}
	if len(p.Customers) == 0 {
		return ErrNoCustomers
	}

	seen := make(map[string]struct{}, len(p.Suppliers))
	for _, s := range p.Suppliers {
		if s.ID == "" {
			return ErrEmptyID
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("supplier %q: %w", s.ID, ErrDuplicateID)
		}
		seen[s.ID] = struct{}{}

		if !(s.Supply > 0) || math.IsInf(s.Supply, 0) { // rejects NaN too
			return fmt.Errorf("supplier %q: %w", s.ID, ErrNonPositiveSupply)
		}
		if !(s.PurchaseCost >= 0) || math.IsInf(s.PurchaseCost, 0) {
			return fmt.Errorf("supplier %q: %w", s.ID, ErrNegativePurchaseCost)
		}
	}

	seen = make(map[string]struct{}, len(p.Customers))
	for _, c := range p.Customers {
		if c.ID == "" {
			return ErrEmptyID
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("customer %q: %w", c.ID, ErrDuplicateID)
		}
		seen[c.ID] = struct{}{}

		if !(c.Demand > 0) || math.IsInf(c.Demand, 0) {
			return fmt.Errorf("customer %q: %w", c.ID, ErrNonPositiveDemand)
		}
		if !(c.SellingPrice >= 0) || math.IsInf(c.SellingPrice, 0) {
			return fmt.Errorf("customer %q: %w", c.ID, ErrNegativeSellingPrice)
		}
	}

	return nil
}

// normalizeCosts builds the dense S×C transportation-cost matrix over the
// real (pre-balance) node lists. CostMatrix takes precedence over
// CostRecords; with neither present the matrix is all zero and no warning
// is emitted (missing entries legitimately default to 0).
//
// Every coerced cell produces one CostWarning; coercion is never fatal.
//
// Complexity: O(S·C + R) time where R = len(CostRecords).
func normalizeCosts(p Problem) (*matrix.Dense, []CostWarning, error) {
	rows, cols := len(p.Suppliers), len(p.Customers)
	costs, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, nil, err // unreachable after validateProblem
	}

	var warnings []CostWarning

	switch {
	case p.CostMatrix != nil:
		warnings = fillFromMatrix(costs, p.CostMatrix)
	case len(p.CostRecords) > 0:
		warnings = fillFromRecords(costs, p)
	}

	return costs, warnings, nil
}

// fillFromMatrix copies a dense cost matrix cell by cell, coercing missing
// rows, short rows, non-finite and negative values to zero with a warning.
// Extra rows or columns in the input are silently ignored: the engine's
// shape is authoritative.
func fillFromMatrix(costs *matrix.Dense, in [][]float64) []CostWarning {
	var (
		warnings []CostWarning
		rows     = costs.Rows()
		cols     = costs.Cols()
		i, j     int
		v        float64
	)
	for i = 0; i < rows; i++ {
		if i >= len(in) {
			warnings = append(warnings, CostWarning{Row: i, Col: -1, Reason: WarnReasonMissingRow})

			continue // whole row stays zero
		}
		for j = 0; j < cols; j++ {
			if j >= len(in[i]) {
				warnings = append(warnings, CostWarning{Row: i, Col: j, Reason: WarnReasonMissingCell})

				continue
			}
			v = in[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				warnings = append(warnings, CostWarning{Row: i, Col: j, Reason: WarnReasonNonFiniteCost})

				continue
			}
			if v < 0 {
				warnings = append(warnings, CostWarning{Row: i, Col: j, Reason: WarnReasonNegativeCost})

				continue
			}
			_ = costs.Set(i, j, v) // bounds proven by the loop ranges
		}
	}

	return warnings
}

// fillFromRecords resolves {supplierID, customerID, cost} records against the
// node lists. Records naming unknown identifiers are dropped with a warning;
// later records for the same pair overwrite earlier ones.
func fillFromRecords(costs *matrix.Dense, p Problem) []CostWarning {
	supIdx := make(map[string]int, len(p.Suppliers))
	for i, s := range p.Suppliers {
		supIdx[s.ID] = i
	}
	cusIdx := make(map[string]int, len(p.Customers))
	for j, c := range p.Customers {
		cusIdx[c.ID] = j
	}

	var (
		warnings []CostWarning
		i, j     int
		ok       bool
	)
	for _, rec := range p.CostRecords {
		if i, ok = supIdx[rec.SupplierID]; !ok {
			warnings = append(warnings, CostWarning{Row: -1, Col: -1, Reason: WarnReasonUnknownSupplier})

			continue
		}
		if j, ok = cusIdx[rec.CustomerID]; !ok {
			warnings = append(warnings, CostWarning{Row: i, Col: -1, Reason: WarnReasonUnknownCustomer})

			continue
		}
		if math.IsNaN(rec.Cost) || math.IsInf(rec.Cost, 0) {
			warnings = append(warnings, CostWarning{Row: i, Col: j, Reason: WarnReasonNonFiniteCost})

			continue
		}
		if rec.Cost < 0 {
			warnings = append(warnings, CostWarning{Row: i, Col: j, Reason: WarnReasonNegativeCost})

			continue
		}
		_ = costs.Set(i, j, rec.Cost)
	}

	return warnings
}
