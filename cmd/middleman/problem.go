package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/middleman/transport"
)

// problemSpec is the YAML shape of a problem definition file.
type problemSpec struct {
	Suppliers []supplierSpec `yaml:"suppliers"`
	Customers []customerSpec `yaml:"customers"`
	Costs     costsSpec      `yaml:"costs"`
}

type supplierSpec struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Supply       float64 `yaml:"supply"`
	PurchaseCost float64 `yaml:"purchase_cost"`
}

type customerSpec struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Demand       float64 `yaml:"demand"`
	SellingPrice float64 `yaml:"selling_price"`
}

// costsSpec accepts either shape the engine understands; when both are
// present the dense matrix wins (same precedence as the engine).
type costsSpec struct {
	Matrix  [][]float64      `yaml:"matrix"`
	Records []costRecordSpec `yaml:"records"`
}

type costRecordSpec struct {
	Supplier string  `yaml:"supplier"`
	Customer string  `yaml:"customer"`
	Cost     float64 `yaml:"cost"`
}

// loadProblem reads and maps a YAML problem definition. Structural
// validation is left to the engine; this layer only deals in shape.
func loadProblem(path string) (transport.Problem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return transport.Problem{}, errors.Wrap(err, "reading problem file")
	}

	var spec problemSpec
	if err = yaml.UnmarshalStrict(raw, &spec); err != nil {
		return transport.Problem{}, errors.Wrap(err, "parsing problem file")
	}

	return spec.toProblem(), nil
}

// toProblem maps the YAML spec onto the engine's input type.
func (s problemSpec) toProblem() transport.Problem {
	p := transport.Problem{
		Suppliers:  make([]transport.Supplier, len(s.Suppliers)),
		Customers:  make([]transport.Customer, len(s.Customers)),
		CostMatrix: s.Costs.Matrix,
	}
	for i, sup := range s.Suppliers {
		p.Suppliers[i] = transport.Supplier{
			ID:           sup.ID,
			Name:         sup.Name,
			Supply:       sup.Supply,
			PurchaseCost: sup.PurchaseCost,
		}
	}
	for j, cus := range s.Customers {
		p.Customers[j] = transport.Customer{
			ID:           cus.ID,
			Name:         cus.Name,
			Demand:       cus.Demand,
			SellingPrice: cus.SellingPrice,
		}
	}
	if len(s.Costs.Records) > 0 {
		p.CostRecords = make([]transport.CostRecord, len(s.Costs.Records))
		for k, rec := range s.Costs.Records {
			p.CostRecords[k] = transport.CostRecord{
				SupplierID: rec.Supplier,
				CustomerID: rec.Customer,
				Cost:       rec.Cost,
			}
		}
	}

	return p
}
