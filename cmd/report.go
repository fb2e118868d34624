package cmd

import (
	"fmt"
	"io"
	"time"

	"petdept.GO/service/populate"
	productService "petdept.GO/service/product"
	"petdept.GO/service/sheet"
	shipmentService "petdept.GO/service/shipment"
)

func printReport(out io.Writer, r *populate.Report) {
	if r == nil {
		return
	}
	if r.RolledBack {
		printRollback(out, r)
		return
	}
	printProductReport(out, r.Products)
	printShipmentReport(out, r.Shipments)
	fmt.Fprintf(out, `
=====================
Skipped rows:   %d
Store totals:   %d products, %d shipments
Total time:     %s
  - Read:       %s
  - Load:       %s
`, r.Failed(), r.StoredProducts, r.StoredShipments,
		r.TotalTime.Round(time.Millisecond), r.ReadTime.Round(time.Millisecond), r.LoadTime.Round(time.Millisecond))
}

// printRollback lists what went wrong without the load counters, since none of those rows were kept.
func printRollback(out io.Writer, r *populate.Report) {
	if r.Products != nil {
		printIssues(out, r.Products.Warnings, r.Products.Failed)
	}
	if r.Shipments != nil {
		printIssues(out, r.Shipments.Warnings, r.Shipments.Failed)
	}
	fmt.Fprintf(out, `
=====================
Load rolled back, no rows committed
Total time:     %s
`, r.TotalTime.Round(time.Millisecond))
}

func printProductReport(out io.Writer, res *productService.ImportResult) {
	if res == nil {
		return
	}
	printIssues(out, res.Warnings, res.Failed)
	fmt.Fprintf(out, `
=== Product Load ===
Rows:           %d
Inserted:       %d
Ignored:        %d
Failed:         %d
`, res.TotalRows, res.Inserted, res.Ignored, len(res.Failed))
}

func printShipmentReport(out io.Writer, res *shipmentService.ImportResult) {
	if res == nil {
		return
	}
	printIssues(out, res.Warnings, res.Failed)
	fmt.Fprintf(out, `
=== Shipment Load ===
Rows:           %d
Shipments:      %d
Lines:          %d
Failed:         %d
`, res.TotalRows, res.Shipments, res.Lines, len(res.Failed))
}

func printIssues(out io.Writer, warnings []string, failed []sheet.RowError) {
	for _, w := range warnings {
		fmt.Fprintf(out, "  [warn] %s\n", w)
	}
	for _, f := range failed {
		fmt.Fprintf(out, "  [skip] %v\n", f)
	}
}
