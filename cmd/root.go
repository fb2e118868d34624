package cmd

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"petdept.GO/config"
	"petdept.GO/service/populate"
)

var rootCmd = &cobra.Command{
	Use:   "petdept [products shipments routes]",
	Short: "Load the pet department spreadsheets into the Product, Shipment and ShipmentProduct tables",
	Long: `Runs the full load: creates the tables when absent, inserts products from spreadsheet 0,
then joins spreadsheets 1 and 2 by shipping identifier into Shipment and ShipmentProduct.

Without arguments the inputs are spreadsheet_0.xlsx, spreadsheet_1.xlsx and spreadsheet_2.xlsx
(override with PRODUCTS_FILE, SHIPMENTS_FILE, ROUTES_FILE). The store is DB_PATH
(default walmart_pet_department.db).`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 3 {
			return fmt.Errorf("expected no arguments or exactly 3 spreadsheet paths, got %d", len(args))
		}
		return nil
	},
	SilenceUsage: true,
	RunE:         runPopulate,
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPopulate(cmd *cobra.Command, args []string) error {
	cfg := config.Current()
	out := cmd.OutOrStdout()

	files := populate.Files{
		Products:  cfg.ProductsFile,
		Shipments: cfg.ShipmentsFile,
		Routes:    cfg.RoutesFile,
	}
	if len(args) == 3 {
		files = populate.Files{Products: args[0], Shipments: args[1], Routes: args[2]}
	}

	if cfg.Banner {
		fmt.Fprintln(out, figure.NewFigure("petdept", "small", true).String())
	}

	return config.WithDB(cfg, func(db *gorm.DB) error {
		report, err := populate.Populate(db, files, populate.Options{
			StrictMatch: cfg.StrictMatch,
			StopOnError: cfg.StopOnError,
		})
		printReport(out, report)
		if err != nil {
			return fmt.Errorf("populate %s: %w", cfg.DBPath, err)
		}
		fmt.Fprintln(out, "Database populated successfully.")
		return nil
	})
}
