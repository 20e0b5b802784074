// Package transport defines core types and sentinel errors for the
// middleman transportation-profit solver.
package transport

import (
	"errors"
	"time"

	"github.com/katalvlaran/middleman/matrix"
)

// Sentinel errors returned by Solve. Structural input problems fail fast,
// before any computation; they are matched with errors.Is.
var (
	// ErrNoSuppliers indicates that the problem contains no suppliers.
	ErrNoSuppliers = errors.New("transport: problem must contain at least one supplier")

	// ErrNoCustomers indicates that the problem contains no customers.
	ErrNoCustomers = errors.New("transport: problem must contain at least one customer")

	// ErrEmptyID indicates a supplier or customer with an empty identifier.
	ErrEmptyID = errors.New("transport: node identifier must be non-empty")

	// ErrDuplicateID indicates two suppliers (or two customers) sharing an identifier.
	ErrDuplicateID = errors.New("transport: node identifiers must be unique")

	// ErrNonPositiveSupply indicates a supplier whose supply is not strictly positive.
	ErrNonPositiveSupply = errors.New("transport: supplier supply must be > 0")

	// ErrNonPositiveDemand indicates a customer whose demand is not strictly positive.
	ErrNonPositiveDemand = errors.New("transport: customer demand must be > 0")

	// ErrNegativePurchaseCost indicates a supplier with a negative per-unit purchase cost.
	ErrNegativePurchaseCost = errors.New("transport: purchase cost must be >= 0")

	// ErrNegativeSellingPrice indicates a customer with a negative per-unit selling price.
	ErrNegativeSellingPrice = errors.New("transport: selling price must be >= 0")

	// ErrBadEpsilon indicates a non-positive numerical tolerance in Options.
	ErrBadEpsilon = errors.New("transport: Epsilon must be > 0")

	// ErrBadMaxIterations indicates a non-positive improvement-iteration cap in Options.
	ErrBadMaxIterations = errors.New("transport: MaxIterations must be > 0")

	// ErrBadDualPasses indicates a non-positive dual-derivation pass budget in Options.
	ErrBadDualPasses = errors.New("transport: DualPasses must be > 0")
)

// Supplier is a supply node: it can sell up to Supply units, each bought by
// the middleman at PurchaseCost. Fictitious suppliers exist only to balance
// total supply against total demand; they carry zero purchase cost and are
// excluded from financial totals and from the reported route list.
type Supplier struct {
	ID           string  // unique identifier among suppliers
	Name         string  // display name, informational only
	Supply       float64 // maximum sellable quantity, must be > 0
	PurchaseCost float64 // per-unit cost paid to this supplier, >= 0
	Fictitious   bool    // true only for the balancing node added by the solver
}

// Customer is a demand node: it buys up to Demand units, each sold by the
// middleman at SellingPrice. Fictitious customers mirror fictitious suppliers
// on the demand side (zero selling price, excluded from totals and routes).
type Customer struct {
	ID           string  // unique identifier among customers
	Name         string  // display name, informational only
	Demand       float64 // maximum quantity wanted, must be > 0
	SellingPrice float64 // per-unit revenue from this customer, >= 0
	Fictitious   bool    // true only for the balancing node added by the solver
}

// CostRecord is one per-pair transportation cost entry, keyed by node
// identifiers. Records referencing unknown identifiers are ignored (coerced
// to zero) and reported through Solution.Warnings.
type CostRecord struct {
	SupplierID string
	CustomerID string
	Cost       float64 // per-unit transportation cost, >= 0
}

// Problem is the solver input: suppliers, customers, and pairwise
// transportation costs in one of two shapes.
//
// CostMatrix, when non-nil, takes precedence: CostMatrix[i][j] is the
// per-unit cost from Suppliers[i] to Customers[j]. Missing, ragged, or
// non-finite entries are coerced to zero (see Solution.Warnings).
// Otherwise CostRecords is consulted; pairs without a record default to 0.
type Problem struct {
	Suppliers   []Supplier
	Customers   []Customer
	CostMatrix  [][]float64
	CostRecords []CostRecord
}

// CostWarning describes one transportation-cost cell that was defensively
// coerced to zero instead of being rejected. Callers relying on cost
// accuracy should treat a non-empty warning list as an input defect.
type CostWarning struct {
	Row    int    // supplier index, -1 when unresolvable (unknown record ID)
	Col    int    // customer index, -1 when unresolvable (unknown record ID)
	Reason string // one of the WarnReason* constants
}

// Coercion reasons carried by CostWarning.Reason.
const (
	WarnReasonMissingRow      = "missing cost matrix row"
	WarnReasonMissingCell     = "missing cost matrix cell"
	WarnReasonNegativeCost    = "negative transportation cost"
	WarnReasonNonFiniteCost   = "non-finite transportation cost"
	WarnReasonUnknownSupplier = "cost record references unknown supplier"
	WarnReasonUnknownCustomer = "cost record references unknown customer"
)

// Opportunity is a non-basic cell whose reduced profit Delta exceeds the
// numerical tolerance: entering it would increase total profit.
type Opportunity struct {
	Row   int     // supplier index in the balanced problem
	Col   int     // customer index in the balanced problem
	Delta float64 // reduced profit Z[i][j] - alpha[i] - beta[j]
}

// Route is one positive-flow shipment between a real supplier and a real
// customer in the final plan, with its per-unit financial components.
type Route struct {
	SupplierID    string
	SupplierName  string
	CustomerID    string
	CustomerName  string
	Quantity      float64 // units shipped
	UnitProfit    float64 // SellingPrice - PurchaseCost - TransportCost
	PurchaseCost  float64 // per-unit
	TransportCost float64 // per-unit
	SellingPrice  float64 // per-unit
}

// Solution is the solver output. ProfitMatrix and Plan are sized to the
// balanced problem (at most one extra fictitious row or column) and are
// immutable once returned. Financial totals exclude every flow touching a
// fictitious node, except that revenue depends solely on the customer leg.
type Solution struct {
	ProfitMatrix *matrix.Dense // Z[i][j] over the balanced problem
	Plan         *matrix.Dense // X[i][j] over the balanced problem

	Suppliers []Supplier // balanced supplier list matching ProfitMatrix rows
	Customers []Customer // balanced customer list matching ProfitMatrix cols

	Balanced bool // input supply already equaled demand (no fictitious node)
	Feasible bool // the final plan respects every supply and demand cap
	Optimal  bool // the optimality tester found no improving cell

	TotalPurchaseCost  float64
	TotalTransportCost float64
	TotalRevenue       float64
	TotalProfit        float64 // Revenue - PurchaseCost - TransportCost

	Routes   []Route       // real positive-flow shipments, row-major order
	Warnings []CostWarning // transportation-cost cells coerced to zero

	Algorithm  string        // name of the solving method
	Iterations int           // accepted improvement iterations
	Elapsed    time.Duration // wall-clock duration of the solve
}

// potential is an explicit "maybe unset" dual value. The zero value means
// unknown; known is flipped exactly once during derivation. Using a tagged
// marker instead of a sentinel numeric keeps the fixed-point loop's
// termination condition precise.
type potential struct {
	value float64
	known bool
}

// balanced is the internal, already-balanced view of a Problem. It is built
// once per solve, never mutated afterwards, and discarded with the call.
type balanced struct {
	suppliers []Supplier // input suppliers plus at most one fictitious entry
	customers []Customer // input customers plus at most one fictitious entry

	totalSupply float64 // pre-balance total supply
	totalDemand float64 // pre-balance total demand

	preBalanced   bool // input totals were already equal
	fictSupplier  bool // a fictitious supplier was appended
	fictCustomer  bool // a fictitious customer was appended
	realSuppliers int  // count of non-fictitious suppliers (prefix length)
	realCustomers int  // count of non-fictitious customers (prefix length)
}
