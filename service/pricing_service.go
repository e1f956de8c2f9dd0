package service

import (
	"sort"

	"github.com/r3r-repasses/fipehunter/config"
	"github.com/r3r-repasses/fipehunter/dto"
)

// Margin sanity band: opportunities outside it are almost always parse
// noise (a swapped price pair or a missed tax figure), never real deals.
const (
	minSaneMarginPct = 1.0
	maxSaneMarginPct = 70.0
)

// PricingService applies the sale-price rule and the user's filters to
// extracted records. It never rejects fipe/cost inversions itself; the
// margin band below handles those.
type PricingService struct {
	cfg *config.Config
}

func NewPricingService(cfg *config.Config) *PricingService {
	return &PricingService{cfg: cfg}
}

// Process prices, filters, sorts and summarizes one extracted batch.
func (s *PricingService) Process(records []dto.VehicleRecord, opts dto.ExtractOptions) ([]dto.PricedVehicle, dto.BatchSummary) {
	priced := s.Price(records, opts)
	priced = s.Filter(priced, opts)
	sortVehicles(priced, opts.SortBy)
	return priced, Summarize(priced)
}

// Price derives sale price, net profit and margin for every record.
// Profit is measured against the Fipe quote net of any tax adjustment,
// which is what a buyer actually clears on resale.
func (s *PricingService) Price(records []dto.VehicleRecord, opts dto.ExtractOptions) []dto.PricedVehicle {
	margin := opts.MarginValue
	if margin == 0 {
		if opts.MarginMode == dto.MarginPercent {
			margin = s.cfg.DefaultPercentMargin
		} else {
			margin = s.cfg.DefaultFixedMargin
		}
	}

	priced := make([]dto.PricedVehicle, 0, len(records))
	for _, record := range records {
		v := dto.PricedVehicle{VehicleRecord: record}
		if opts.MarginMode == dto.MarginPercent {
			v.SalePrice = record.AcquisitionCost * (1 + margin/100)
		} else {
			v.SalePrice = record.AcquisitionCost + margin
		}
		v.Profit = record.ReferencePrice - record.AcquisitionCost - record.TaxAdjustment
		if record.ReferencePrice > 0 {
			v.MarginPct = v.Profit / record.ReferencePrice * 100
		}
		priced = append(priced, v)
	}
	return priced
}

// Filter applies the user's investment, mileage and margin thresholds plus
// the sanity band. Zero-valued thresholds are disabled.
func (s *PricingService) Filter(vehicles []dto.PricedVehicle, opts dto.ExtractOptions) []dto.PricedVehicle {
	kept := make([]dto.PricedVehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if opts.MaxInvestment > 0 && v.AcquisitionCost > opts.MaxInvestment {
			continue
		}
		if opts.MaxMileage > 0 && v.Mileage > opts.MaxMileage {
			continue
		}
		if v.MarginPct < opts.MinMarginPct {
			continue
		}
		if v.MarginPct <= minSaneMarginPct || v.MarginPct >= maxSaneMarginPct {
			continue
		}
		kept = append(kept, v)
	}
	return kept
}

// Summarize computes the batch KPIs shown in the dashboard header. Total
// profit is the spread between the priced list and its acquisition cost.
func Summarize(vehicles []dto.PricedVehicle) dto.BatchSummary {
	summary := dto.BatchSummary{VehicleCount: len(vehicles)}
	for _, v := range vehicles {
		summary.TotalAcquisition += v.AcquisitionCost
		summary.TotalSale += v.SalePrice
	}
	summary.TotalProfit = summary.TotalSale - summary.TotalAcquisition
	return summary
}

func sortVehicles(vehicles []dto.PricedVehicle, order dto.SortOrder) {
	switch order {
	case dto.SortBySalePrice:
		sort.SliceStable(vehicles, func(i, j int) bool {
			return vehicles[i].SalePrice < vehicles[j].SalePrice
		})
	default:
		sort.SliceStable(vehicles, func(i, j int) bool {
			return vehicles[i].Profit > vehicles[j].Profit
		})
	}
}
