package config

import (
	"os"
	"strings"
	"sync"
)

// Defaults used when the matching environment variable is unset.
const (
	DefaultDBDriver      = "sqlite"
	DefaultDBPath        = "walmart_pet_department.db"
	DefaultProductsFile  = "spreadsheet_0.xlsx"
	DefaultShipmentsFile = "spreadsheet_1.xlsx"
	DefaultRoutesFile    = "spreadsheet_2.xlsx"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName  string
	DBDriver string
	DBPath   string
	GormLog  string

	ProductsFile  string
	ShipmentsFile string
	RoutesFile    string

	StrictMatch bool
	StopOnError bool
	Banner      bool
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = NewConfigFromEnv()
	})
}

// Current returns AppConfig, or a config read from the environment when LoadAppConfig was never called.
func Current() *Config {
	if AppConfig != nil {
		return AppConfig
	}
	return NewConfigFromEnv()
}

// NewConfigFromEnv builds a Config from the process environment, falling back to defaults.
func NewConfigFromEnv() *Config {
	return &Config{
		AppName:       getenv("APP_NAME", "petdept"),
		DBDriver:      strings.ToLower(getenv("DB_DRIVER", DefaultDBDriver)),
		DBPath:        getenv("DB_PATH", DefaultDBPath),
		GormLog:       strings.ToLower(os.Getenv("GORM_LOG")),
		ProductsFile:  getenv("PRODUCTS_FILE", DefaultProductsFile),
		ShipmentsFile: getenv("SHIPMENTS_FILE", DefaultShipmentsFile),
		RoutesFile:    getenv("ROUTES_FILE", DefaultRoutesFile),
		StrictMatch:   os.Getenv("STRICT_MATCH") == "true",
		StopOnError:   os.Getenv("STOP_ON_ERROR") == "true",
		Banner:        os.Getenv("BANNER") != "off",
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
