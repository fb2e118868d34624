package populate

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	productRepo "petdept.GO/model/repository/product"
	shipmentRepo "petdept.GO/model/repository/shipment"
	productService "petdept.GO/service/product"
	"petdept.GO/service/schema"
	"petdept.GO/service/sheet"
	shipmentService "petdept.GO/service/shipment"
)

// Files names the three input spreadsheets.
type Files struct {
	Products  string // spreadsheet 0: product catalog
	Shipments string // spreadsheet 1: shipment events
	Routes    string // spreadsheet 2: origin/destination per shipping identifier
}

type Options struct {
	StrictMatch bool
	StopOnError bool
}

// Report holds both load results and timing from a run.
type Report struct {
	Products  *productService.ImportResult
	Shipments *shipmentService.ImportResult

	// Row totals in the store after a committed run.
	StoredProducts  int64
	StoredShipments int64

	// RolledBack is set when the load transaction failed. The per-load counters then
	// describe rows that were never committed.
	RolledBack bool

	ReadTime  time.Duration
	LoadTime  time.Duration
	TotalTime time.Duration
}

// Failed counts skipped rows across both loads.
func (r *Report) Failed() int {
	n := 0
	if r.Products != nil {
		n += len(r.Products.Failed)
	}
	if r.Shipments != nil {
		n += len(r.Shipments.Failed)
	}
	return n
}

// Populate reads the three spreadsheets, ensures the tables exist and loads products, then shipments.
// Both loads share one transaction committed at the end; any returned error rolls it back.
// The partial report is returned alongside the error.
func Populate(db *gorm.DB, files Files, opts Options) (*Report, error) {
	startTotal := time.Now()
	report := &Report{}

	products, err := sheet.ReadFile(files.Products)
	if err != nil {
		return report, err
	}
	events, err := sheet.ReadFile(files.Shipments)
	if err != nil {
		return report, err
	}
	routes, err := sheet.ReadFile(files.Routes)
	if err != nil {
		return report, err
	}
	report.ReadTime = time.Since(startTotal)

	if err := schema.EnsureTables(db); err != nil {
		return report, err
	}

	startLoad := time.Now()
	err = db.Transaction(func(tx *gorm.DB) error {
		var err error
		report.Products, err = productService.ImportProducts(tx, products, productService.ImportOptions{
			StopOnError: opts.StopOnError,
		})
		if err != nil {
			return fmt.Errorf("load products: %w", err)
		}
		report.Shipments, err = shipmentService.ImportShipments(tx, events, routes, shipmentService.ImportOptions{
			StrictMatch: opts.StrictMatch,
			StopOnError: opts.StopOnError,
		})
		if err != nil {
			return fmt.Errorf("load shipments: %w", err)
		}
		return nil
	})
	report.LoadTime = time.Since(startLoad)
	if err != nil {
		report.RolledBack = true
	} else {
		err = countStored(db, report)
	}
	report.TotalTime = time.Since(startTotal)
	return report, err
}

func countStored(db *gorm.DB, report *Report) error {
	var err error
	if report.StoredProducts, err = productRepo.NewProductRepository(db).Count(); err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if report.StoredShipments, err = shipmentRepo.NewShipmentRepository(db).Count(); err != nil {
		return fmt.Errorf("count shipments: %w", err)
	}
	return nil
}
