package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "fipehunter",
	Short: "Price-list extraction and pricing for vehicle repossession listings",
	Long: `fipehunter ingests wholesale vehicle price-list PDFs (R3R, Alphaville,
Mauá, Barueri and similar layouts), extracts one record per plate with
reference price and acquisition cost, applies a margin rule and exports
the result.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}
