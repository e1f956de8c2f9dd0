package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/r3r-repasses/fipehunter/dto"
)

// exportHeaders is the fixed column order the buyer groups expect.
var exportHeaders = []string{"MODELO", "PLACA", "KM", "ANO", "TABELA FIPE", "PREÇO VENDA"}

// ExportService serializes priced records to the formats shared in the
// resale groups. It owns no I/O; callers get bytes.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// ExportXLSX returns a single-sheet workbook of the priced list.
func (s *ExportService) ExportXLSX(vehicles []dto.PricedVehicle) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Oportunidades"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for rowIdx, v := range vehicles {
		write := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, rowIdx+2)
			_ = f.SetCellValue(sheet, cell, value)
		}
		write(1, v.ModelLabel)
		write(2, v.Plate)
		write(3, v.Mileage)
		write(4, formatYears(v.YearManufactured, v.YearModel))
		write(5, v.ReferencePrice)
		write(6, v.SalePrice)
	}

	_ = f.SetColWidth(sheet, "A", "F", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	log.Printf("xlsx export: %d rows in %dms", len(vehicles), time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}

// ExportCSV returns the priced list as CSV with the same column order as
// the workbook.
func (s *ExportService) ExportCSV(vehicles []dto.PricedVehicle) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeaders); err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}
	for _, v := range vehicles {
		row := []string{
			v.ModelLabel,
			v.Plate,
			strconv.Itoa(v.Mileage),
			formatYears(v.YearManufactured, v.YearModel),
			strconv.FormatFloat(v.ReferencePrice, 'f', 2, 64),
			strconv.FormatFloat(v.SalePrice, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}
	return buf.Bytes(), nil
}

func formatYears(manufactured, model int) string {
	if manufactured == 0 {
		return dto.Unknown
	}
	if model == 0 || model == manufactured {
		return strconv.Itoa(manufactured)
	}
	return fmt.Sprintf("%d/%d", manufactured, model)
}
