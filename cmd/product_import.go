package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"petdept.GO/config"
	productService "petdept.GO/service/product"
	"petdept.GO/service/schema"
	"petdept.GO/service/sheet"
)

var (
	importFile        string
	importStopOnError bool
)

var importCmd = &cobra.Command{
	Use:   "products:import",
	Short: "Import products from a spreadsheet into the Product table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Current()
		table, err := sheet.ReadFile(importFile)
		if err != nil {
			return err
		}

		return config.WithDB(cfg, func(db *gorm.DB) error {
			if err := schema.EnsureTables(db); err != nil {
				return err
			}
			var res *productService.ImportResult
			err := db.Transaction(func(tx *gorm.DB) error {
				var err error
				res, err = productService.ImportProducts(tx, table, productService.ImportOptions{
					StopOnError: importStopOnError || cfg.StopOnError,
				})
				return err
			})
			printProductReport(cmd.OutOrStdout(), res)
			if err != nil {
				return fmt.Errorf("import products: %w", err)
			}
			return nil
		})
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Product spreadsheet path (required)")
	importCmd.MarkFlagRequired("file")
	importCmd.Flags().BoolVar(&importStopOnError, "stop-on-error", false, "Abort at the first row that cannot be stored")
	rootCmd.AddCommand(importCmd)
}
