package dto

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
	Code    int    `json:"code"`
}

// ListingResponse is the payload returned after one document is processed.
// Warning is set when extraction succeeded but produced nothing useful.
type ListingResponse struct {
	Vehicles    []PricedVehicle `json:"vehicles"`
	Summary     BatchSummary    `json:"summary"`
	Strategy    string          `json:"strategy"`
	Warning     string          `json:"warning,omitempty"`
	ProcessedAt string          `json:"processed_at"`
}
