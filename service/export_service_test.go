package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/r3r-repasses/fipehunter/dto"
)

func pricedFixture() []dto.PricedVehicle {
	return []dto.PricedVehicle{
		{
			VehicleRecord: dto.VehicleRecord{
				Plate:            "ABC1D23",
				ModelLabel:       "Gol 1.6 Trendline",
				Mileage:          45000,
				YearManufactured: 2020,
				YearModel:        2021,
				ReferencePrice:   35000,
				AcquisitionCost:  30000,
			},
			SalePrice: 32000,
			Profit:    5000,
			MarginPct: 14.3,
		},
	}
}

func TestExportXLSX(t *testing.T) {
	svc := NewExportService()

	data, err := svc.ExportXLSX(pricedFixture())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Oportunidades", "A1")
	require.NoError(t, err)
	assert.Equal(t, "MODELO", header)

	plate, err := f.GetCellValue("Oportunidades", "B2")
	require.NoError(t, err)
	assert.Equal(t, "ABC1D23", plate)

	years, err := f.GetCellValue("Oportunidades", "D2")
	require.NoError(t, err)
	assert.Equal(t, "2020/2021", years)
}

func TestExportCSV(t *testing.T) {
	svc := NewExportService()

	data, err := svc.ExportCSV(pricedFixture())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "MODELO,PLACA,KM,ANO,TABELA FIPE,PREÇO VENDA")
	assert.Contains(t, out, "Gol 1.6 Trendline,ABC1D23,45000,2020/2021,35000.00,32000.00")
}

func TestExportCSVEmpty(t *testing.T) {
	svc := NewExportService()

	data, err := svc.ExportCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "MODELO,PLACA,KM,ANO,TABELA FIPE,PREÇO VENDA\n", string(data))
}

func TestFormatYears(t *testing.T) {
	assert.Equal(t, "-", formatYears(0, 0))
	assert.Equal(t, "2021", formatYears(2021, 2021))
	assert.Equal(t, "2021", formatYears(2021, 0))
	assert.Equal(t, "2020/2021", formatYears(2020, 2021))
}
