package product

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	productEntity "petdept.GO/model/entity/product"
	productRepo "petdept.GO/model/repository/product"
	"petdept.GO/service/sheet"
)

// ErrNameRequired mirrors the NOT NULL constraint on Product.Name.
var ErrNameRequired = errors.New("empty product Name")

// ImportOptions configures a product load.
type ImportOptions struct {
	// StopOnError aborts the load at the first row that cannot be decoded or stored.
	StopOnError bool
}

// ImportResult holds counters and timing from a product load.
type ImportResult struct {
	TotalRows int
	Inserted  int
	Ignored   int // duplicate (Name, ManufacturerID)
	Failed    []sheet.RowError
	Warnings  []string
	TotalTime time.Duration
}

// ImportProducts inserts one Product per row of table, ignoring rows whose (Name, ManufacturerID)
// already exists. Row failures are logged and collected in the result; the returned error is
// reserved for conditions that stop the load.
func ImportProducts(db *gorm.DB, table *sheet.Table, opts ImportOptions) (*ImportResult, error) {
	start := time.Now()
	if err := table.Require(productEntity.Columns...); err != nil {
		return nil, err
	}

	repo := productRepo.NewProductRepository(db)
	result := &ImportResult{TotalRows: len(table.Rows)}

	for _, row := range table.Rows {
		inserted, err := importRow(repo, row)
		if err != nil {
			rowErr := sheet.RowError{Sheet: table.Name, Line: row.Line, Err: err}
			log.Printf("product skipped: %v", rowErr)
			result.Failed = append(result.Failed, rowErr)
			if opts.StopOnError {
				result.TotalTime = time.Since(start)
				return result, rowErr
			}
			continue
		}
		if inserted {
			result.Inserted++
		} else {
			result.Ignored++
		}
	}

	if result.Ignored > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%s: %d duplicate (Name, ManufacturerID) rows ignored", table.Name, result.Ignored))
	}
	result.TotalTime = time.Since(start)
	return result, nil
}

func importRow(repo *productRepo.ProductRepository, row sheet.Record) (bool, error) {
	var p productEntity.Product
	if err := row.Decode(&p); err != nil {
		return false, err
	}
	if p.Name == "" {
		return false, ErrNameRequired
	}
	return repo.InsertOrIgnore(&p)
}
