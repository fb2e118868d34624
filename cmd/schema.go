package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"petdept.GO/config"
	"petdept.GO/service/schema"
)

var schemaInitCmd = &cobra.Command{
	Use:   "schema:init",
	Short: "Create the Product, Shipment and ShipmentProduct tables if they do not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		return config.WithDB(config.Current(), func(db *gorm.DB) error {
			if err := schema.EnsureTables(db); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Tables ready: %v\n", schema.Tables)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(schemaInitCmd)
}
