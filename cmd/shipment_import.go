package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"petdept.GO/config"
	"petdept.GO/service/schema"
	"petdept.GO/service/sheet"
	shipmentService "petdept.GO/service/shipment"
)

var (
	shipmentEventsFile string
	shipmentRoutesFile string
	shipmentStrict     bool
)

var shipmentImportCmd = &cobra.Command{
	Use:   "shipments:import",
	Short: "Join shipment events with routes and load Shipment and ShipmentProduct",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Current()
		events, err := sheet.ReadFile(shipmentEventsFile)
		if err != nil {
			return err
		}
		routes, err := sheet.ReadFile(shipmentRoutesFile)
		if err != nil {
			return err
		}

		return config.WithDB(cfg, func(db *gorm.DB) error {
			if err := schema.EnsureTables(db); err != nil {
				return err
			}
			var res *shipmentService.ImportResult
			err := db.Transaction(func(tx *gorm.DB) error {
				var err error
				res, err = shipmentService.ImportShipments(tx, events, routes, shipmentService.ImportOptions{
					StrictMatch: shipmentStrict || cfg.StrictMatch,
					StopOnError: cfg.StopOnError,
				})
				return err
			})
			printShipmentReport(cmd.OutOrStdout(), res)
			if err != nil {
				return fmt.Errorf("import shipments: %w", err)
			}
			return nil
		})
	},
}

func init() {
	shipmentImportCmd.Flags().StringVar(&shipmentEventsFile, "events", config.DefaultShipmentsFile, "Shipment events spreadsheet")
	shipmentImportCmd.Flags().StringVar(&shipmentRoutesFile, "routes", config.DefaultRoutesFile, "Shipment origin/destination spreadsheet")
	shipmentImportCmd.Flags().BoolVar(&shipmentStrict, "strict", false, "Fail when a shipping identifier or product matches more than one row")
	rootCmd.AddCommand(shipmentImportCmd)
}
