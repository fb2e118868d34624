package shipment

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	shipmentEntity "petdept.GO/model/entity/shipment"
	productRepo "petdept.GO/model/repository/product"
	shipmentRepo "petdept.GO/model/repository/shipment"
	"petdept.GO/service/sheet"
)

// Event columns of the shipment sheet.
const (
	ColQuantity       = "Quantity"
	ColDate           = "Date"
	ColName           = "Name"
	ColManufacturerID = "ManufacturerID"
)

var (
	EventColumns = []string{ColShippingID, ColQuantity, ColDate, ColName, ColManufacturerID}
	RouteColumns = []string{ColShippingID, ColOriginID, ColDestinationID}
)

type event struct {
	ShippingID     string `mapstructure:"Shipping Identifier"`
	Quantity       int64  `mapstructure:"Quantity"`
	Date           string `mapstructure:"Date"`
	Name           string `mapstructure:"Name"`
	ManufacturerID *int64 `mapstructure:"ManufacturerID"`
}

// ImportOptions configures a shipment load.
type ImportOptions struct {
	// StrictMatch turns several matching routes or products into an error instead of taking the first.
	StrictMatch bool
	// StopOnError aborts the load at the first row that cannot be decoded or stored.
	StopOnError bool
}

// ImportResult holds counters and timing from a shipment load.
type ImportResult struct {
	TotalRows int
	Shipments int
	Lines     int
	Failed    []sheet.RowError
	Warnings  []string
	TotalTime time.Duration
}

// ImportShipments joins each event row with its route row by shipping identifier, inserts a Shipment
// and links it to the product named by (Name, ManufacturerID) through ShipmentProduct.
//
// A missing route or product stops the load with ErrRouteNotFound or ErrProductNotFound.
// Rows the store rejects are logged, collected in the result and skipped.
func ImportShipments(db *gorm.DB, events, routes *sheet.Table, opts ImportOptions) (*ImportResult, error) {
	start := time.Now()
	if err := events.Require(EventColumns...); err != nil {
		return nil, err
	}
	if err := routes.Require(RouteColumns...); err != nil {
		return nil, err
	}

	result := &ImportResult{TotalRows: len(events.Rows)}
	done := func(err error) (*ImportResult, error) {
		result.TotalTime = time.Since(start)
		return result, err
	}

	idx, badRoutes := buildRouteIndex(routes)
	for _, e := range badRoutes {
		log.Printf("route skipped: %v", e)
		result.Failed = append(result.Failed, e)
		if opts.StopOnError {
			return done(e)
		}
	}

	products := productRepo.NewProductRepository(db)
	shipments := shipmentRepo.NewShipmentRepository(db)

	for _, row := range events.Rows {
		fail := func(err error) sheet.RowError {
			rowErr := sheet.RowError{Sheet: events.Name, Line: row.Line, Err: err}
			result.Failed = append(result.Failed, rowErr)
			log.Printf("shipment skipped: %v", rowErr)
			return rowErr
		}

		var ev event
		if err := row.Decode(&ev); err != nil {
			if rowErr := fail(err); opts.StopOnError {
				return done(rowErr)
			}
			continue
		}

		rt, warn, err := idx.resolveRoute(ev.ShippingID, opts.StrictMatch)
		if err != nil {
			return done(sheet.RowError{Sheet: events.Name, Line: row.Line, Err: err})
		}
		result.addWarning(events.Name, row.Line, warn)

		s := shipmentEntity.Shipment{
			OriginID:      rt.OriginID,
			DestinationID: rt.DestinationID,
			Date:          sheet.NormalizeDate(ev.Date),
		}
		if err := shipments.Create(&s); err != nil {
			if rowErr := fail(fmt.Errorf("insert shipment: %w", err)); opts.StopOnError {
				return done(rowErr)
			}
			continue
		}
		result.Shipments++

		p, warn, err := resolveProduct(products, ev.Name, ev.ManufacturerID, opts.StrictMatch)
		if err != nil {
			return done(sheet.RowError{Sheet: events.Name, Line: row.Line, Err: err})
		}
		result.addWarning(events.Name, row.Line, warn)

		line := shipmentEntity.ShipmentProduct{
			ShipmentID: s.ShipmentID,
			ProductID:  p.ProductID,
			Quantity:   ev.Quantity,
		}
		if err := shipments.AddProduct(&line); err != nil {
			if rowErr := fail(fmt.Errorf("insert shipment product: %w", err)); opts.StopOnError {
				return done(rowErr)
			}
			continue
		}
		result.Lines++
	}

	return done(nil)
}

func (r *ImportResult) addWarning(sheetName string, line int, warn string) {
	if warn != "" {
		r.Warnings = append(r.Warnings, fmt.Sprintf("%s line %d: %s", sheetName, line, warn))
	}
}
