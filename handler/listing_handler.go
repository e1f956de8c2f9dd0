package handler

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/r3r-repasses/fipehunter/dto"
	"github.com/r3r-repasses/fipehunter/service"
)

type ListingHandler struct {
	listingService *service.ListingService
}

func NewListingHandler(listingService *service.ListingService) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
	}
}

// ExtractListing handles POST /listings/extract: one PDF upload plus
// pricing/filter options, returning the priced records as JSON.
func (h *ListingHandler) ExtractListing(c *gin.Context) {
	log.Println("received listing extraction request")

	pdfData, ok := h.readUpload(c)
	if !ok {
		return
	}
	opts, ok := h.readOptions(c)
	if !ok {
		return
	}

	response, err := h.listingService.ProcessListing(pdfData, opts)
	if err != nil {
		h.sendProcessingError(c, err)
		return
	}

	log.Printf("extraction request done: %d vehicles", response.Summary.VehicleCount)
	c.JSON(http.StatusOK, response)
}

// ExportListing handles POST /listings/export: same input as extract, but
// the body comes back as a downloadable XLSX or CSV.
func (h *ListingHandler) ExportListing(c *gin.Context) {
	pdfData, ok := h.readUpload(c)
	if !ok {
		return
	}
	opts, ok := h.readOptions(c)
	if !ok {
		return
	}

	format := c.DefaultQuery("format", "xlsx")
	payload, contentType, err := h.listingService.ExportListing(pdfData, opts, format)
	if err != nil {
		if errors.Is(err, service.ErrScannedDocument) {
			h.sendProcessingError(c, err)
			return
		}
		h.sendError(c, http.StatusBadRequest, "export failed", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="lista_oficial.`+format+`"`)
	c.Data(http.StatusOK, contentType, payload)
}

func (h *ListingHandler) readUpload(c *gin.Context) ([]byte, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "no file provided", err)
		return nil, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "failed to open upload", err)
		return nil, false
	}
	defer f.Close()

	pdfData, err := io.ReadAll(f)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "failed to read upload", err)
		return nil, false
	}
	return pdfData, true
}

func (h *ListingHandler) readOptions(c *gin.Context) (dto.ExtractOptions, bool) {
	opts := dto.ExtractOptions{
		MarginMode: dto.MarginMode(c.PostForm("margin_mode")),
		SortBy:     dto.SortOrder(c.PostForm("sort_by")),
	}

	var badField string
	readFloat := func(field string) float64 {
		raw := c.PostForm(field)
		if raw == "" || badField != "" {
			return 0
		}
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			badField = field
		}
		return val
	}

	opts.MarginValue = readFloat("margin_value")
	opts.MaxInvestment = readFloat("max_investment")
	opts.MinMarginPct = readFloat("min_margin_pct")
	opts.MaxMileage = int(readFloat("max_mileage"))
	if badField != "" {
		h.sendError(c, http.StatusBadRequest, "invalid "+badField, nil)
		return opts, false
	}

	if err := opts.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return opts, false
	}
	return opts, true
}

// sendProcessingError maps pipeline failures onto user guidance. A scanned
// document is the only condition worth a dedicated hint.
func (h *ListingHandler) sendProcessingError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrScannedDocument) {
		log.Printf("unreadable document: %v", err)
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:   "UNREADABLE_DOCUMENT",
			Message: "could not read any text from this PDF",
			Hint:    "the file looks like a scanned image; the system needs PDFs with selectable text",
			Code:    http.StatusUnprocessableEntity,
		})
		return
	}
	h.sendError(c, http.StatusInternalServerError, "failed to process listing", err)
}

// sendError sends a structured error response.
func (h *ListingHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "EXTRACTION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
