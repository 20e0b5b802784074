package transport

// Reserved identity of the balancing node. Detection always goes through the
// Fictitious tag; the ID exists only so the node satisfies the usual
// non-empty-ID shape in Solution.Suppliers/Customers.
const (
	fictitiousSupplierID   = "__fictitious_supplier__"
	fictitiousSupplierName = "Fictitious supplier"
	fictitiousCustomerID   = "__fictitious_customer__"
	fictitiousCustomerName = "Fictitious customer"
)

// balanceProblem equalizes total supply and total demand.
//
// Policy:
//   - totalSupply > totalDemand: append one fictitious customer with
//     demand = difference and selling price 0;
//   - totalDemand > totalSupply: append one fictitious supplier with
//     supply = difference and purchase cost 0;
//   - equal (within eps): no fictitious node, preBalanced = true.
//
// Side-effect free: the input slices are copied, never mutated; the
// fictitious node participates in every later phase like any other node.
//
// Complexity: O(S + C) time and space.
func balanceProblem(suppliers []Supplier, customers []Customer, eps float64) balanced {
	b := balanced{
		suppliers:     make([]Supplier, len(suppliers), len(suppliers)+1),
		customers:     make([]Customer, len(customers), len(customers)+1),
		realSuppliers: len(suppliers),
		realCustomers: len(customers),
	}
	copy(b.suppliers, suppliers)
	copy(b.customers, customers)

	var s, c int // index iterators over the copied slices
	for s = 0; s < len(b.suppliers); s++ {
		b.totalSupply += b.suppliers[s].Supply
	}
	for c = 0; c < len(b.customers); c++ {
		b.totalDemand += b.customers[c].Demand
	}

	diff := b.totalSupply - b.totalDemand
	switch {
	case diff > eps:
		// Oversupply: a zero-price customer absorbs the excess.
		b.fictCustomer = true
		b.customers = append(b.customers, Customer{
			ID:         fictitiousCustomerID,
			Name:       fictitiousCustomerName,
			Demand:     diff,
			Fictitious: true,
		})
	case diff < -eps:
		// Overdemand: a zero-cost supplier covers the shortfall.
		b.fictSupplier = true
		b.suppliers = append(b.suppliers, Supplier{
			ID:         fictitiousSupplierID,
			Name:       fictitiousSupplierName,
			Supply:     -diff,
			Fictitious: true,
		})
	default:
		b.preBalanced = true
	}

	return b
}
