package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/middleman/transport"
)

type cmdSolve struct {
	Problem       string  `long:"problem" short:"p" required:"true" description:"Path to the YAML problem definition"`
	Format        string  `long:"format" short:"o" choice:"table" choice:"yaml" choice:"json" default:"table" description:"Output format"`
	LogLevel      string  `long:"log.level" default:"warn" description:"Logging level (debug, info, warn, error)"`
	Epsilon       float64 `long:"epsilon" default:"0.001" description:"Numerical tolerance"`
	MaxIterations int     `long:"max-iterations" default:"20" description:"Improvement iteration cap"`
	DualPasses    int     `long:"dual-passes" default:"50" description:"Dual-variable derivation pass budget"`
}

func (cmd *cmdSolve) Execute([]string) error {
	log.SetFormatter(&log.TextFormatter{})
	if lvl, err := log.ParseLevel(cmd.LogLevel); err != nil {
		return errors.Wrap(err, "unrecognized log level")
	} else {
		log.SetLevel(lvl)
	}

	problem, err := loadProblem(cmd.Problem)
	if err != nil {
		return err
	}

	sol, err := transport.Solve(problem,
		transport.WithEpsilon(cmd.Epsilon),
		transport.WithMaxIterations(cmd.MaxIterations),
		transport.WithDualPasses(cmd.DualPasses),
	)
	if err != nil {
		return errors.Wrap(err, "solving problem")
	}

	for _, w := range sol.Warnings {
		log.WithFields(log.Fields{
			"row":    w.Row,
			"col":    w.Col,
			"reason": w.Reason,
		}).Warn("transportation cost coerced to zero")
	}
	log.WithFields(log.Fields{
		"optimal":    sol.Optimal,
		"iterations": sol.Iterations,
		"profit":     sol.TotalProfit,
		"elapsed":    sol.Elapsed,
	}).Info("solve finished")

	switch cmd.Format {
	case "table":
		cmd.outputTable(sol)
	case "yaml":
		return outputMarshaled(sol, yaml.Marshal)
	case "json":
		return outputMarshaled(sol, func(v interface{}) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		})
	}

	return nil
}

func (cmd *cmdSolve) outputTable(sol transport.Solution) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"Supplier", "Customer", "Quantity", "Unit Profit", "Purchase", "Transport", "Price",
	})
	for _, r := range sol.Routes {
		table.Append([]string{
			nameOrID(r.SupplierName, r.SupplierID),
			nameOrID(r.CustomerName, r.CustomerID),
			fmt.Sprintf("%g", r.Quantity),
			fmt.Sprintf("%g", r.UnitProfit),
			fmt.Sprintf("%g", r.PurchaseCost),
			fmt.Sprintf("%g", r.TransportCost),
			fmt.Sprintf("%g", r.SellingPrice),
		})
	}
	table.Render()

	totals := tablewriter.NewWriter(os.Stdout)
	totals.SetHeader([]string{"Revenue", "Purchase", "Transport", "Profit", "Optimal", "Iterations"})
	totals.Append([]string{
		fmt.Sprintf("%g", sol.TotalRevenue),
		fmt.Sprintf("%g", sol.TotalPurchaseCost),
		fmt.Sprintf("%g", sol.TotalTransportCost),
		fmt.Sprintf("%g", sol.TotalProfit),
		fmt.Sprintf("%t", sol.Optimal),
		fmt.Sprintf("%d", sol.Iterations),
	})
	totals.Render()
}

func nameOrID(name, id string) string {
	if name != "" {
		return name
	}

	return id
}

// solutionView is the serializable projection of a Solution for yaml/json
// output (the working matrices stay internal).
type solutionView struct {
	Balanced   bool          `yaml:"balanced" json:"balanced"`
	Feasible   bool          `yaml:"feasible" json:"feasible"`
	Optimal    bool          `yaml:"optimal" json:"optimal"`
	Revenue    float64       `yaml:"revenue" json:"revenue"`
	Purchase   float64       `yaml:"purchase" json:"purchase"`
	Transport  float64       `yaml:"transport" json:"transport"`
	Profit     float64       `yaml:"profit" json:"profit"`
	Algorithm  string        `yaml:"algorithm" json:"algorithm"`
	Iterations int           `yaml:"iterations" json:"iterations"`
	Elapsed    string        `yaml:"elapsed" json:"elapsed"`
	Routes     []routeView   `yaml:"routes" json:"routes"`
	Warnings   []warningView `yaml:"warnings,omitempty" json:"warnings,omitempty"`
}

type routeView struct {
	Supplier      string  `yaml:"supplier" json:"supplier"`
	Customer      string  `yaml:"customer" json:"customer"`
	Quantity      float64 `yaml:"quantity" json:"quantity"`
	UnitProfit    float64 `yaml:"unit_profit" json:"unit_profit"`
	PurchaseCost  float64 `yaml:"purchase_cost" json:"purchase_cost"`
	TransportCost float64 `yaml:"transport_cost" json:"transport_cost"`
	SellingPrice  float64 `yaml:"selling_price" json:"selling_price"`
}

type warningView struct {
	Row    int    `yaml:"row" json:"row"`
	Col    int    `yaml:"col" json:"col"`
	Reason string `yaml:"reason" json:"reason"`
}

func outputMarshaled(sol transport.Solution, marshal func(interface{}) ([]byte, error)) error {
	view := solutionView{
		Balanced:   sol.Balanced,
		Feasible:   sol.Feasible,
		Optimal:    sol.Optimal,
		Revenue:    sol.TotalRevenue,
		Purchase:   sol.TotalPurchaseCost,
		Transport:  sol.TotalTransportCost,
		Profit:     sol.TotalProfit,
		Algorithm:  sol.Algorithm,
		Iterations: sol.Iterations,
		Elapsed:    sol.Elapsed.String(),
		Routes:     make([]routeView, len(sol.Routes)),
	}
	for i, r := range sol.Routes {
		view.Routes[i] = routeView{
			Supplier:      r.SupplierID,
			Customer:      r.CustomerID,
			Quantity:      r.Quantity,
			UnitProfit:    r.UnitProfit,
			PurchaseCost:  r.PurchaseCost,
			TransportCost: r.TransportCost,
			SellingPrice:  r.SellingPrice,
		}
	}
	for _, w := range sol.Warnings {
		view.Warnings = append(view.Warnings, warningView{Row: w.Row, Col: w.Col, Reason: w.Reason})
	}

	out, err := marshal(view)
	if err != nil {
		return errors.Wrap(err, "encoding solution")
	}
	_, err = os.Stdout.Write(append(out, '\n'))

	return err
}
