package dto

import "strings"

// Unknown is the sentinel for categorical fields that could not be extracted.
const Unknown = "-"

// Strategy tags recorded on every extracted record.
const (
	OriginTable = "tabela"
	OriginText  = "texto"
)

// Page holds the decoded content of one PDF page: the raw text block and,
// where the layout allowed it, a grid of cell rows.
type Page struct {
	Text string     `json:"text"`
	Rows [][]string `json:"rows,omitempty"`
}

// RawDocument is the read-only input to the extraction pipeline, produced by
// the PDF processing layer. It lives for a single request.
type RawDocument struct {
	Pages []Page `json:"pages"`
}

// FullText joins all page texts with newlines, in page order.
func (d *RawDocument) FullText() string {
	var b strings.Builder
	for _, p := range d.Pages {
		if p.Text != "" {
			b.WriteString(p.Text)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Segment is one plate-anchored context window. Cells is populated only by
// the table strategy, where per-cell classification is possible.
type Segment struct {
	Plate   string
	Context string
	Cells   []string
}

// VehicleRecord is the core output of extraction. Reference price and
// acquisition cost are mandatory; everything else is best-effort.
type VehicleRecord struct {
	Plate            string  `json:"plate"`
	ModelLabel       string  `json:"model_label"`
	Brand            string  `json:"brand"`
	Color            string  `json:"color"`
	YearManufactured int     `json:"year_manufactured"`
	YearModel        int     `json:"year_model"`
	Mileage          int     `json:"mileage"`
	ReferencePrice   float64 `json:"reference_price"`
	AcquisitionCost  float64 `json:"acquisition_cost"`
	TaxAdjustment    float64 `json:"tax_adjustment"`
	Origin           string  `json:"origin"`
}

// PricedVehicle is a VehicleRecord with the fields the pricing stage derives.
type PricedVehicle struct {
	VehicleRecord
	SalePrice float64 `json:"sale_price"`
	Profit    float64 `json:"profit"`
	MarginPct float64 `json:"margin_pct"`
}

// BatchSummary aggregates one processed document for the dashboard header.
type BatchSummary struct {
	VehicleCount     int     `json:"vehicle_count"`
	TotalAcquisition float64 `json:"total_acquisition"`
	TotalSale        float64 `json:"total_sale"`
	TotalProfit      float64 `json:"total_profit"`
}
