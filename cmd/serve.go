package cmd

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/r3r-repasses/fipehunter/config"
	"github.com/r3r-repasses/fipehunter/handler"
	"github.com/r3r-repasses/fipehunter/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP extraction service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		pdfProcessor := service.NewPDFProcessor()
		extractionService := service.NewExtractionService(cfg)
		pricingService := service.NewPricingService(cfg)
		exportService := service.NewExportService()
		listingService := service.NewListingService(pdfProcessor, extractionService, pricingService, exportService)

		listingHandler := handler.NewListingHandler(listingService)

		router := gin.Default()
		router.MaxMultipartMemory = cfg.MaxFileSize

		router.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "healthy",
				"service": "FipeHunter Listing Extraction",
			})
		})

		api := router.Group("/api/v1", handler.AccessKey(cfg.AccessKey))
		{
			listings := api.Group("/listings")
			{
				listings.POST("/extract", listingHandler.ExtractListing)
				listings.POST("/export", listingHandler.ExportListing)
			}
		}

		log.Printf("starting FipeHunter service on port %s", cfg.ServerPort)
		return router.Run(":" + cfg.ServerPort)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
