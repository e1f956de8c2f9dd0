package service

import (
	"fmt"
	"time"

	"github.com/r3r-repasses/fipehunter/dto"
)

// User-facing warnings for the two "worked, but empty" outcomes. Neither is
// an error: boilerplate-only documents and over-tight filters are routine.
const (
	WarnNoVehicles  = "no vehicles found; check that the document contains selectable text and clear price columns"
	WarnAllFiltered = "vehicles were found, but none passed the investment/mileage/margin filters"
)

// ListingService wires the pipeline end to end: PDF decoding, extraction,
// pricing and export. One document per call, nothing retained between
// calls.
type ListingService struct {
	pdfProcessor PDFProcessor
	extraction   *ExtractionService
	pricing      *PricingService
	export       *ExportService
}

func NewListingService(
	pdfProcessor PDFProcessor,
	extraction *ExtractionService,
	pricing *PricingService,
	export *ExportService,
) *ListingService {
	return &ListingService{
		pdfProcessor: pdfProcessor,
		extraction:   extraction,
		pricing:      pricing,
		export:       export,
	}
}

// ProcessListing runs one uploaded document through the full pipeline.
// ErrScannedDocument is the only fatal extraction outcome; empty results
// come back as warnings on the response.
func (s *ListingService) ProcessListing(pdfData []byte, opts dto.ExtractOptions) (*dto.ListingResponse, error) {
	opts.Defaults()

	doc, err := s.pdfProcessor.ExtractDocument(pdfData)
	if err != nil {
		return nil, err
	}

	records, strategy := s.extraction.Extract(doc)
	priced, summary := s.pricing.Process(records, opts)

	response := &dto.ListingResponse{
		Vehicles:    priced,
		Summary:     summary,
		Strategy:    strategy,
		ProcessedAt: time.Now().Format(time.RFC3339),
	}
	if len(records) == 0 {
		response.Warning = WarnNoVehicles
	} else if len(priced) == 0 {
		response.Warning = WarnAllFiltered
	}
	return response, nil
}

// ExportListing processes a document and serializes the surviving records
// in the requested format. Returns the payload and its MIME type.
func (s *ListingService) ExportListing(pdfData []byte, opts dto.ExtractOptions, format string) ([]byte, string, error) {
	response, err := s.ProcessListing(pdfData, opts)
	if err != nil {
		return nil, "", err
	}

	switch format {
	case "csv":
		data, err := s.export.ExportCSV(response.Vehicles)
		return data, "text/csv", err
	case "", "xlsx":
		data, err := s.export.ExportXLSX(response.Vehicles)
		return data, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", err
	default:
		return nil, "", fmt.Errorf("unsupported export format: %q", format)
	}
}
