package schema

import (
	"fmt"

	"gorm.io/gorm"
)

// Statement is one "create table if not exists" for a single table.
type Statement struct {
	Table string
	SQL   string
}

// Tables in creation order. ShipmentProduct references both Product and Shipment.
// Location is referenced by Shipment but owned elsewhere.
var Tables = []string{"Product", "Shipment", "ShipmentProduct"}

var sqliteStatements = []Statement{
	{Table: "Product", SQL: `
CREATE TABLE IF NOT EXISTS Product (
	ProductID INTEGER PRIMARY KEY AUTOINCREMENT,
	Name TEXT NOT NULL,
	Type TEXT,
	ManufacturerID INTEGER,
	Weight REAL,
	Flavor TEXT,
	HealthCondition TEXT,
	Material TEXT,
	Durability TEXT,
	Color TEXT,
	Size TEXT,
	CareInstructions TEXT,
	UNIQUE(Name, ManufacturerID)
)`},
	{Table: "Shipment", SQL: `
CREATE TABLE IF NOT EXISTS Shipment (
	ShipmentID INTEGER PRIMARY KEY AUTOINCREMENT,
	OriginID INTEGER,
	DestinationID INTEGER,
	Date TEXT,
	FOREIGN KEY (OriginID) REFERENCES Location(LocationID),
	FOREIGN KEY (DestinationID) REFERENCES Location(LocationID)
)`},
	{Table: "ShipmentProduct", SQL: `
CREATE TABLE IF NOT EXISTS ShipmentProduct (
	ShipmentID INTEGER,
	ProductID INTEGER,
	Quantity INTEGER,
	PRIMARY KEY (ShipmentID, ProductID),
	FOREIGN KEY (ShipmentID) REFERENCES Shipment(ShipmentID),
	FOREIGN KEY (ProductID) REFERENCES Product(ProductID)
)`},
}

var mysqlStatements = []Statement{
	{Table: "Product", SQL: `
CREATE TABLE IF NOT EXISTS Product (
	ProductID INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
	Name VARCHAR(255) NOT NULL,
	Type VARCHAR(255),
	ManufacturerID INT,
	Weight DOUBLE,
	Flavor VARCHAR(255),
	HealthCondition VARCHAR(255),
	Material VARCHAR(255),
	Durability VARCHAR(255),
	Color VARCHAR(255),
	Size VARCHAR(255),
	CareInstructions TEXT,
	UNIQUE KEY uq_product_name_manufacturer (Name, ManufacturerID)
)`},
	{Table: "Shipment", SQL: `
CREATE TABLE IF NOT EXISTS Shipment (
	ShipmentID INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
	OriginID INT,
	DestinationID INT,
	Date VARCHAR(32),
	FOREIGN KEY (OriginID) REFERENCES Location(LocationID),
	FOREIGN KEY (DestinationID) REFERENCES Location(LocationID)
)`},
	{Table: "ShipmentProduct", SQL: `
CREATE TABLE IF NOT EXISTS ShipmentProduct (
	ShipmentID INT NOT NULL,
	ProductID INT NOT NULL,
	Quantity INT,
	PRIMARY KEY (ShipmentID, ProductID),
	FOREIGN KEY (ShipmentID) REFERENCES Shipment(ShipmentID),
	FOREIGN KEY (ProductID) REFERENCES Product(ProductID)
)`},
}

// Statements returns the DDL for a gorm dialect name in dependency order.
func Statements(dialect string) ([]Statement, error) {
	switch dialect {
	case "sqlite":
		return sqliteStatements, nil
	case "mysql":
		return mysqlStatements, nil
	default:
		return nil, fmt.Errorf("schema: unsupported dialect %q", dialect)
	}
}

// EnsureTables creates Product, Shipment and ShipmentProduct when absent. Safe to call on every run.
func EnsureTables(db *gorm.DB) error {
	dialect := db.Dialector.Name()
	stmts, err := Statements(dialect)
	if err != nil {
		return err
	}

	if dialect != "mysql" {
		return createAll(db, stmts)
	}
	// MySQL rejects a foreign key to a missing table (Location) unless checks are off,
	// so the DDL runs on one pinned connection.
	return db.Connection(func(conn *gorm.DB) error {
		if err := conn.Exec("SET FOREIGN_KEY_CHECKS = 0").Error; err != nil {
			return fmt.Errorf("schema: disable foreign key checks: %w", err)
		}
		defer conn.Exec("SET FOREIGN_KEY_CHECKS = 1")
		return createAll(conn, stmts)
	})
}

func createAll(db *gorm.DB, stmts []Statement) error {
	for _, s := range stmts {
		if err := db.Exec(s.SQL).Error; err != nil {
			return fmt.Errorf("schema: create table %s: %w", s.Table, err)
		}
	}
	return nil
}
