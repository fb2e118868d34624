package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheetName := f.GetSheetName(0)
	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheetName, cell, &rows[i]); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
}

func setupRun(t *testing.T) (dir string, args []string) {
	t.Helper()
	dir = t.TempDir()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(dir, "walmart_pet_department.db"))
	t.Setenv("GORM_LOG", "off")
	t.Setenv("BANNER", "off")

	args = []string{
		filepath.Join(dir, "products.xlsx"),
		filepath.Join(dir, "events.xlsx"),
		filepath.Join(dir, "routes.xlsx"),
	}
	writeWorkbook(t, args[0], [][]interface{}{
		{"Name", "Type", "ManufacturerID", "Weight", "Flavor", "HealthCondition", "Material", "Durability", "Color", "Size", "CareInstructions"},
		{"Widget", "Toy", 1, 0.5},
	})
	writeWorkbook(t, args[1], [][]interface{}{
		{"Shipping Identifier", "Quantity", "Date", "Name", "ManufacturerID"},
		{100, 5, "2024-01-01", "Widget", 1},
	})
	writeWorkbook(t, args[2], [][]interface{}{
		{"Shipping Identifier", "OriginID", "DestinationID"},
		{100, 10, 20},
	})
	return dir, args
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoot_PopulatesStore(t *testing.T) {
	_, args := setupRun(t)

	out, err := run(t, args...)
	if err != nil {
		t.Fatalf("Execute: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Database populated successfully.") {
		t.Errorf("output missing success message:\n%s", out)
	}
	if !strings.Contains(out, "Inserted:       1") {
		t.Errorf("output missing product report:\n%s", out)
	}
}

func TestRoot_MissingRouteFails(t *testing.T) {
	dir, args := setupRun(t)
	writeWorkbook(t, filepath.Join(dir, "routes.xlsx"), [][]interface{}{
		{"Shipping Identifier", "OriginID", "DestinationID"},
		{999, 10, 20},
	})

	out, err := run(t, args...)
	if err == nil {
		t.Fatalf("Execute: want error\n%s", out)
	}
	if strings.Contains(out, "Database populated successfully.") {
		t.Errorf("success message printed for a failed run:\n%s", out)
	}
	if strings.Contains(out, "Inserted:") || !strings.Contains(out, "Load rolled back") {
		t.Errorf("rolled-back run reported load counters:\n%s", out)
	}
}

func TestRoot_StoreOpenFailure(t *testing.T) {
	_, args := setupRun(t)
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "missing", "dir", "store.db"))

	if out, err := run(t, args...); err == nil {
		t.Fatalf("Execute: want error for unopenable store\n%s", out)
	}
}

func TestRoot_ArgCount(t *testing.T) {
	if _, err := run(t, "a.xlsx", "b.xlsx"); err == nil {
		t.Error("two positional args: want error")
	}
}

func TestSchemaInit(t *testing.T) {
	setupRun(t)
	out, err := run(t, "schema:init")
	if err != nil {
		t.Fatalf("schema:init: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Tables ready") {
		t.Errorf("output = %q", out)
	}
}

func TestProductAndShipmentImport(t *testing.T) {
	_, args := setupRun(t)

	out, err := run(t, "products:import", "-f", args[0])
	if err != nil {
		t.Fatalf("products:import: %v\n%s", err, out)
	}
	out, err = run(t, "shipments:import", "--events", args[1], "--routes", args[2])
	if err != nil {
		t.Fatalf("shipments:import: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Lines:          1") {
		t.Errorf("shipment report missing:\n%s", out)
	}
}
