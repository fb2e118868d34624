package product

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	productEntity "petdept.GO/model/entity/product"
	"petdept.GO/service/schema"
	"petdept.GO/service/sheet"
)

const header = "Name,Type,ManufacturerID,Weight,Flavor,HealthCondition,Material,Durability,Color,Size,CareInstructions\n"

func importDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "products.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if err := schema.EnsureTables(db); err != nil {
		t.Fatalf("EnsureTables: %v", err)
	}
	return db
}

func csvTable(t *testing.T, body string) *sheet.Table {
	t.Helper()
	table, err := sheet.ReadCSV(strings.NewReader(body), "spreadsheet_0.csv")
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	return table
}

func TestImport_CopiesAttributes(t *testing.T) {
	db := importDB(t)
	table := csvTable(t, header+
		"Widget,Toy,1,2.5,,,Rubber,High,Red,M,Rinse with water\n"+
		"Kibble,Food,2,10,Chicken,Senior,,,,,\n")

	res, err := ImportProducts(db, table, ImportOptions{})
	if err != nil {
		t.Fatalf("ImportProducts: %v", err)
	}
	if res.TotalRows != 2 || res.Inserted != 2 || res.Ignored != 0 {
		t.Errorf("result = {Total:%d Inserted:%d Ignored:%d}, want {2 2 0}", res.TotalRows, res.Inserted, res.Ignored)
	}
	if len(res.Failed) != 0 {
		t.Errorf("unexpected failures: %v", res.Failed)
	}

	var products []productEntity.Product
	db.Order("ProductID").Find(&products)
	if len(products) != 2 {
		t.Fatalf("product count = %d, want 2", len(products))
	}

	w := products[0]
	if w.Name != "Widget" || w.ManufacturerID == nil || *w.ManufacturerID != 1 {
		t.Errorf("product[0] = {Name:%s ManufacturerID:%v}, want {Widget 1}", w.Name, w.ManufacturerID)
	}
	if w.Type == nil || *w.Type != "Toy" {
		t.Errorf("Type = %v, want Toy", w.Type)
	}
	if w.Weight == nil || *w.Weight != 2.5 {
		t.Errorf("Weight = %v, want 2.5", w.Weight)
	}
	if w.Flavor != nil || w.HealthCondition != nil {
		t.Errorf("blank Flavor/HealthCondition stored as %v/%v, want NULL", w.Flavor, w.HealthCondition)
	}
	if w.CareInstructions == nil || *w.CareInstructions != "Rinse with water" {
		t.Errorf("CareInstructions = %v, want %q", w.CareInstructions, "Rinse with water")
	}

	k := products[1]
	if k.Flavor == nil || *k.Flavor != "Chicken" || k.Material != nil {
		t.Errorf("product[1] Flavor=%v Material=%v, want Chicken/NULL", k.Flavor, k.Material)
	}
}

func TestImport_DuplicateIgnored(t *testing.T) {
	db := importDB(t)
	table := csvTable(t, header+
		"Widget,Toy,1,2.5,,,,,,,\n"+
		"Widget,Toy,1,9.9,,,,,,,\n"+
		"Widget,Toy,2,1,,,,,,,\n")

	res, err := ImportProducts(db, table, ImportOptions{})
	if err != nil {
		t.Fatalf("ImportProducts: %v", err)
	}
	if res.Inserted != 2 || res.Ignored != 1 {
		t.Errorf("Inserted=%d Ignored=%d, want 2/1", res.Inserted, res.Ignored)
	}
	if len(res.Failed) != 0 {
		t.Errorf("duplicate reported as failure: %v", res.Failed)
	}
	if len(res.Warnings) != 1 {
		t.Errorf("warnings = %v, want one duplicate warning", res.Warnings)
	}

	var p productEntity.Product
	db.Where("Name = ? AND ManufacturerID = ?", "Widget", 1).First(&p)
	if p.Weight == nil || *p.Weight != 2.5 {
		t.Errorf("first Widget row overwritten: Weight = %v, want 2.5", p.Weight)
	}

	// a second run over the same sheet inserts nothing
	res, err = ImportProducts(db, table, ImportOptions{})
	if err != nil {
		t.Fatalf("second ImportProducts: %v", err)
	}
	if res.Inserted != 0 || res.Ignored != 3 {
		t.Errorf("re-run Inserted=%d Ignored=%d, want 0/3", res.Inserted, res.Ignored)
	}
	var count int64
	db.Model(&productEntity.Product{}).Count(&count)
	if count != 2 {
		t.Errorf("product count = %d, want 2", count)
	}
}

func TestImport_BadRowsSkipped(t *testing.T) {
	db := importDB(t)
	table := csvTable(t, header+
		",Toy,3,1,,,,,,,\n"+
		"Leash,Gear,abc,1,,,,,,,\n"+
		"Collar,Gear,4,0.2,,,,,,,\n")

	res, err := ImportProducts(db, table, ImportOptions{})
	if err != nil {
		t.Fatalf("ImportProducts: %v", err)
	}
	if res.Inserted != 1 {
		t.Errorf("Inserted = %d, want 1", res.Inserted)
	}
	if len(res.Failed) != 2 {
		t.Fatalf("Failed = %v, want 2 rows", res.Failed)
	}
	if !errors.Is(res.Failed[0], ErrNameRequired) || res.Failed[0].Line != 2 {
		t.Errorf("Failed[0] = %v, want empty Name at line 2", res.Failed[0])
	}
	if res.Failed[1].Line != 3 {
		t.Errorf("Failed[1].Line = %d, want 3", res.Failed[1].Line)
	}
}

func TestImport_StopOnError(t *testing.T) {
	db := importDB(t)
	table := csvTable(t, header+
		"Widget,Toy,1,,,,,,,,\n"+
		"Leash,Gear,abc,,,,,,,,\n"+
		"Collar,Gear,4,,,,,,,,\n")

	res, err := ImportProducts(db, table, ImportOptions{StopOnError: true})
	if err == nil {
		t.Fatal("ImportProducts: want error")
	}
	var rowErr sheet.RowError
	if !errors.As(err, &rowErr) || rowErr.Line != 3 {
		t.Errorf("error = %v, want RowError at line 3", err)
	}
	if res == nil || res.Inserted != 1 {
		t.Errorf("partial result = %+v, want 1 inserted", res)
	}
}

func TestImport_MissingColumn(t *testing.T) {
	db := importDB(t)
	table := csvTable(t, "Name,Type\nWidget,Toy\n")

	_, err := ImportProducts(db, table, ImportOptions{})
	if !errors.Is(err, sheet.ErrMissingColumn) {
		t.Fatalf("error = %v, want ErrMissingColumn", err)
	}
}

func TestImport_TextCopiedVerbatim(t *testing.T) {
	db := importDB(t)
	table := csvTable(t, header+
		"Widget,Toy,1,,,,,,,,\n"+
		"Widget ,Toy, 1 ,,,,,,,, Rinse \n")

	res, err := ImportProducts(db, table, ImportOptions{})
	if err != nil {
		t.Fatalf("ImportProducts: %v", err)
	}
	if res.Inserted != 2 || res.Ignored != 0 {
		t.Errorf("Inserted=%d Ignored=%d, want 2/0", res.Inserted, res.Ignored)
	}

	var products []productEntity.Product
	db.Order("ProductID").Find(&products)
	if len(products) != 2 {
		t.Fatalf("product count = %d, want 2", len(products))
	}
	if products[0].Name != "Widget" || products[1].Name != "Widget " {
		t.Errorf("names = %q, %q, want %q, %q", products[0].Name, products[1].Name, "Widget", "Widget ")
	}
	if m := products[1].ManufacturerID; m == nil || *m != 1 {
		t.Errorf("ManufacturerID = %v, want 1", m)
	}
	if c := products[1].CareInstructions; c == nil || *c != " Rinse " {
		t.Errorf("CareInstructions = %v, want %q", c, " Rinse ")
	}
}
