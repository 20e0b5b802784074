// Command middleman solves middleman (transportation-profit) problems from
// YAML definitions and renders the optimal shipment routes.
package main

import (
	"os"

	"github.com/jessevdk/go-flags"
)

func main() {
	parser := flags.NewParser(nil, flags.Default)
	parser.LongDescription = `
middleman finds the profit-maximizing assignment of shipments between
suppliers (with supply caps and purchase costs) and customers (with demand
caps and selling prices), given per-pair transportation costs.

Problems are described in YAML; see the "solve" command for the schema.
`

	if _, err := parser.AddCommand("solve", "Solve a middleman problem", `
Solve reads a problem definition and prints the solution.

The YAML schema:

    suppliers:
      - {id: S1, name: Mill, supply: 50, purchase_cost: 8}
    customers:
      - {id: C1, name: North, demand: 40, selling_price: 20}
    costs:
      matrix:            # dense, row per supplier, column per customer
        - [2, 4]
        - [3, 1]
      # ... or keyed records instead of a matrix:
      # records:
      #   - {supplier: S1, customer: C1, cost: 2}

Results can be output in a variety of --format options:
table: Prints the route list and financial totals (default)
yaml:  Prints the full solution as YAML
json:  Prints the full solution as JSON
`, &cmdSolve{}); err != nil {
		os.Exit(1)
	}

	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}
}
