package dto

import "fmt"

type MarginMode string

const (
	MarginFixed   MarginMode = "fixed"
	MarginPercent MarginMode = "percent"
)

type SortOrder string

const (
	SortByProfit    SortOrder = "profit"     // best opportunities first
	SortBySalePrice SortOrder = "sale_price" // cheapest first, sells fastest
)

// ExtractOptions carries the pricing rule and the user filters that are
// applied after extraction. Zero values mean "no filter".
type ExtractOptions struct {
	MarginMode    MarginMode `json:"margin_mode"`
	MarginValue   float64    `json:"margin_value"`
	MaxInvestment float64    `json:"max_investment"`
	MaxMileage    int        `json:"max_mileage"`
	MinMarginPct  float64    `json:"min_margin_pct"`
	SortBy        SortOrder  `json:"sort_by"`
}

func (o *ExtractOptions) Validate() error {
	switch o.MarginMode {
	case "", MarginFixed, MarginPercent:
	default:
		return fmt.Errorf("invalid margin_mode: %q", o.MarginMode)
	}
	switch o.SortBy {
	case "", SortByProfit, SortBySalePrice:
	default:
		return fmt.Errorf("invalid sort_by: %q", o.SortBy)
	}
	if o.MarginValue < 0 {
		return fmt.Errorf("margin_value must not be negative")
	}
	if o.MaxInvestment < 0 || o.MaxMileage < 0 || o.MinMarginPct < 0 {
		return fmt.Errorf("filters must not be negative")
	}
	return nil
}

// Defaults fills in the pricing defaults used when the caller sends nothing:
// a fixed margin, sorted by profit.
func (o *ExtractOptions) Defaults() {
	if o.MarginMode == "" {
		o.MarginMode = MarginFixed
	}
	if o.SortBy == "" {
		o.SortBy = SortByProfit
	}
}
