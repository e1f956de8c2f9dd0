package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/r3r-repasses/fipehunter/config"
	"github.com/r3r-repasses/fipehunter/dto"
	"github.com/r3r-repasses/fipehunter/service"
)

var (
	extractOutput        string
	extractFormat        string
	extractMarginMode    string
	extractMarginValue   float64
	extractMaxInvestment float64
	extractMaxMileage    int
	extractMinMarginPct  float64
)

var extractCmd = &cobra.Command{
	Use:   "extract <listing.pdf>",
	Short: "Extract and price one listing PDF from the command line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		pdfData, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		listingService := service.NewListingService(
			service.NewPDFProcessor(),
			service.NewExtractionService(cfg),
			service.NewPricingService(cfg),
			service.NewExportService(),
		)

		opts := dto.ExtractOptions{
			MarginMode:    dto.MarginMode(extractMarginMode),
			MarginValue:   extractMarginValue,
			MaxInvestment: extractMaxInvestment,
			MaxMileage:    extractMaxMileage,
			MinMarginPct:  extractMinMarginPct,
		}
		if err := opts.Validate(); err != nil {
			return err
		}

		if extractOutput != "" {
			payload, _, err := listingService.ExportListing(pdfData, opts, extractFormat)
			if err != nil {
				return err
			}
			if err := os.WriteFile(extractOutput, payload, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", extractOutput, err)
			}
			fmt.Printf("wrote %s\n", extractOutput)
			return nil
		}

		response, err := listingService.ProcessListing(pdfData, opts)
		if err != nil {
			return err
		}
		if response.Warning != "" {
			fmt.Println("warning:", response.Warning)
		}

		for _, v := range response.Vehicles {
			fmt.Printf("%-8s %-40s %7d km  fipe R$ %10.2f  cost R$ %10.2f  profit R$ %9.2f (%.1f%%)\n",
				v.Plate, v.ModelLabel, v.Mileage, v.ReferencePrice, v.AcquisitionCost, v.Profit, v.MarginPct)
		}
		fmt.Printf("\n%d vehicles via %q | cost R$ %.2f | sale R$ %.2f | predicted profit R$ %.2f\n",
			response.Summary.VehicleCount, response.Strategy,
			response.Summary.TotalAcquisition, response.Summary.TotalSale, response.Summary.TotalProfit)
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "write an export file instead of printing")
	extractCmd.Flags().StringVar(&extractFormat, "format", "xlsx", "export format: xlsx or csv")
	extractCmd.Flags().StringVar(&extractMarginMode, "margin-mode", "", "pricing rule: fixed or percent")
	extractCmd.Flags().Float64Var(&extractMarginValue, "margin", 0, "margin value (R$ or %, per mode)")
	extractCmd.Flags().Float64Var(&extractMaxInvestment, "max-investment", 0, "max acquisition cost filter (0 = off)")
	extractCmd.Flags().IntVar(&extractMaxMileage, "max-km", 0, "max mileage filter (0 = off)")
	extractCmd.Flags().Float64Var(&extractMinMarginPct, "min-margin", 0, "minimum margin percent filter")
	rootCmd.AddCommand(extractCmd)
}
