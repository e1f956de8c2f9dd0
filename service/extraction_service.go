package service

import (
	"log"
	"math"
	"sort"
	"strings"

	"github.com/r3r-repasses/fipehunter/config"
	"github.com/r3r-repasses/fipehunter/dto"
	"github.com/r3r-repasses/fipehunter/utils"
)

// PriceAssignment maps money candidates (deduplicated, sorted descending)
// to the reference price and the acquisition cost, returning the leftover
// candidates. This is the single load-bearing business rule of the system:
// in every observed source layout the Fipe quote is printed higher than the
// wholesale cost, so the default policy takes the two largest values.
type PriceAssignment func(candidates []float64, costFloor float64) (fipe, cost float64, rest []float64, ok bool)

// AssignLargestFirst takes the largest candidate as the reference price and
// the next candidate at or above costFloor as the acquisition cost. Small
// candidates below the floor are margin/fee figures picked up by mistake
// and are skipped rather than discarding the whole segment.
func AssignLargestFirst(candidates []float64, costFloor float64) (float64, float64, []float64, bool) {
	if len(candidates) < 2 {
		return 0, 0, nil, false
	}
	fipe := candidates[0]
	for i := 1; i < len(candidates); i++ {
		if candidates[i] >= costFloor {
			return fipe, candidates[i], candidates[i+1:], true
		}
	}
	return 0, 0, nil, false
}

// SegmentStrategy is one complete segmentation approach tuned for a layout
// family. Document layout is not known in advance, so strategies are run
// and compared by yield.
type SegmentStrategy interface {
	Name() string
	Segment(doc *dto.RawDocument) []dto.Segment
}

// tableStrategy segments structured grids: every row containing a plate is
// one item, with its cells kept for per-cell classification. Preferred when
// it works, since row boundaries eliminate cross-item bleed-through.
type tableStrategy struct{}

func (tableStrategy) Name() string { return dto.OriginTable }

func (tableStrategy) Segment(doc *dto.RawDocument) []dto.Segment {
	var segments []dto.Segment
	for _, page := range doc.Pages {
		for _, row := range page.Rows {
			if len(row) == 0 {
				continue
			}
			rowStr := strings.Join(row, " ")
			plate := utils.FindPlate(rowStr)
			if plate == "" {
				continue
			}
			segments = append(segments, dto.Segment{
				Plate:   plate,
				Context: rowStr,
				Cells:   row,
			})
		}
	}
	return segments
}

// textStrategy splits the raw document text on plate matches; the context
// of each plate runs until the next one. Works on the linear listing
// layouts where no usable grid exists.
type textStrategy struct{}

func (textStrategy) Name() string { return dto.OriginText }

func (textStrategy) Segment(doc *dto.RawDocument) []dto.Segment {
	plates, contexts := utils.SplitOnPlates(doc.FullText())
	var segments []dto.Segment
	for i, plate := range plates {
		if strings.TrimSpace(contexts[i]) == "" {
			// Plate at end of document with nothing after it.
			continue
		}
		segments = append(segments, dto.Segment{Plate: plate, Context: contexts[i]})
	}
	return segments
}

// ExtractionService turns a RawDocument into VehicleRecords. It owns the
// strategy set and the price assignment policy; both are fixed at
// construction so extraction stays deterministic within a request.
type ExtractionService struct {
	cfg    *config.Config
	assign PriceAssignment
	table  SegmentStrategy
	text   SegmentStrategy
}

func NewExtractionService(cfg *config.Config) *ExtractionService {
	return &ExtractionService{
		cfg:    cfg,
		assign: AssignLargestFirst,
		table:  tableStrategy{},
		text:   textStrategy{},
	}
}

// Extract runs the table strategy and, when its yield is below the
// configured minimum, the text strategy as well, keeping whichever result
// set is strictly larger. Both strategies are deterministic, so there is
// nothing to retry beyond this single fallback.
func (s *ExtractionService) Extract(doc *dto.RawDocument) ([]dto.VehicleRecord, string) {
	records := s.runStrategy(s.table, doc)
	strategy := s.table.Name()

	if len(records) < s.cfg.MinTableYield {
		fallback := s.runStrategy(s.text, doc)
		if len(fallback) > len(records) {
			records = fallback
			strategy = s.text.Name()
		}
	}

	log.Printf("extraction finished: %d records via %s", len(records), strategy)
	return records, strategy
}

func (s *ExtractionService) runStrategy(strategy SegmentStrategy, doc *dto.RawDocument) []dto.VehicleRecord {
	var records []dto.VehicleRecord
	for _, segment := range strategy.Segment(doc) {
		if record, ok := s.extractRecord(segment, strategy.Name()); ok {
			records = append(records, record)
		}
	}
	return records
}

// extractRecord harvests one segment. Segments without two plausible money
// candidates are boilerplate rows and yield nothing; that is routine, not
// an error.
func (s *ExtractionService) extractRecord(segment dto.Segment, origin string) (dto.VehicleRecord, bool) {
	prices := s.moneyCandidates(segment)
	fipe, cost, rest, ok := s.assign(prices, s.cfg.CostFloor)
	if !ok {
		return dto.VehicleRecord{}, false
	}

	manufactured, model := utils.ParseYears(segment.Context)

	return dto.VehicleRecord{
		Plate:            segment.Plate,
		ModelLabel:       utils.CleanModelLabel(segment.Context),
		Brand:            utils.DetectBrand(segment.Context),
		Color:            utils.DetectColor(segment.Context),
		YearManufactured: manufactured,
		YearModel:        model,
		Mileage:          s.mileage(segment),
		ReferencePrice:   fipe,
		AcquisitionCost:  cost,
		TaxAdjustment:    s.taxAdjustment(fipe, cost, rest),
		Origin:           origin,
	}, true
}

// moneyCandidates collects, deduplicates and descending-sorts the monetary
// values of a segment. Table segments classify cell by cell; text segments
// only trust "R$"-anchored substrings.
func (s *ExtractionService) moneyCandidates(segment dto.Segment) []float64 {
	tokens := segment.Cells
	if tokens == nil {
		tokens = utils.FindMoneyTokens(segment.Context)
	}

	seen := make(map[float64]bool)
	var prices []float64
	for _, token := range tokens {
		val, ok := utils.ParseMoney(token, s.cfg.MoneyFloor)
		if !ok || seen[val] {
			continue
		}
		seen[val] = true
		prices = append(prices, val)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(prices)))
	return prices
}

// mileage picks the best KM reading. In table mode every non-money cell is
// a candidate and the largest wins; in text mode a "KM"-labeled number is
// trusted first, then a bare 4-6 digit integer.
func (s *ExtractionService) mileage(segment dto.Segment) int {
	if segment.Cells != nil {
		best := 0
		for _, cell := range segment.Cells {
			if _, isMoney := utils.ParseMoney(cell, s.cfg.MoneyFloor); isMoney {
				continue
			}
			if km, ok := utils.ParseMileage(cell, s.cfg.MileageCeiling); ok && km > best {
				best = km
			}
		}
		return best
	}

	if km, ok := utils.FindLabeledMileage(segment.Context, s.cfg.MileageCeiling); ok {
		return km
	}
	if km, ok := utils.FindLooseMileage(segment.Context, s.cfg.LooseMileageCeiling); ok {
		return km
	}
	return 0
}

// taxAdjustment decides whether a third monetary value is an IPVA-style
// levy or just the gross margin printed again. Only values inside the
// configured band that differ from fipe-cost by more than the echo
// tolerance count as a real charge.
func (s *ExtractionService) taxAdjustment(fipe, cost float64, rest []float64) float64 {
	if len(rest) == 0 {
		return 0
	}
	third := rest[0]
	grossMargin := fipe - cost
	if third > s.cfg.TaxBandLow && third < s.cfg.TaxBandHigh &&
		math.Abs(third-grossMargin) > s.cfg.MarginEchoTolerance {
		return third
	}
	return 0
}
