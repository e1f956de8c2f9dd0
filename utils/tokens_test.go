package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMoney(t *testing.T) {
	val, ok := ParseMoney("R$ 15.300,50", 2000)
	assert.True(t, ok)
	assert.Equal(t, 15300.50, val)

	val, ok = ParseMoney("R$ 35.000,00", 2000)
	assert.True(t, ok)
	assert.Equal(t, 35000.00, val)

	// Comma alone marks money even without the currency symbol.
	val, ok = ParseMoney("42.500,00", 2000)
	assert.True(t, ok)
	assert.Equal(t, 42500.00, val)

	// No currency marker and no comma: that is mileage, not money.
	_, ok = ParseMoney("45.000", 2000)
	assert.False(t, ok)

	// Small amounts are fees or page numbers, never vehicle prices.
	_, ok = ParseMoney("R$ 1.500,00", 2000)
	assert.False(t, ok)

	_, ok = ParseMoney("R$", 2000)
	assert.False(t, ok)
	_, ok = ParseMoney("", 2000)
	assert.False(t, ok)
}

func TestParseMileage(t *testing.T) {
	km, ok := ParseMileage("45.000", 400000)
	assert.True(t, ok)
	assert.Equal(t, 45000, km)

	km, ok = ParseMileage("KM 71024", 400000)
	assert.True(t, ok)
	assert.Equal(t, 71024, km)

	// Money shapes are refused outright.
	_, ok = ParseMileage("R$ 45.000", 400000)
	assert.False(t, ok)
	_, ok = ParseMileage("45.000,00", 400000)
	assert.False(t, ok)

	// Sanity ceiling.
	_, ok = ParseMileage("450000", 400000)
	assert.False(t, ok)

	_, ok = ParseMileage("sem numero", 400000)
	assert.False(t, ok)
}

func TestFindMoneyTokens(t *testing.T) {
	tokens := FindMoneyTokens("Gol R$ 35.000,00 oferta R$ 30.000,00")
	assert.Equal(t, []string{"R$ 35.000,00", "R$ 30.000,00"}, tokens)
}

func TestFindLabeledMileage(t *testing.T) {
	km, ok := FindLabeledMileage("Onix 2021 KM 45.000 flex", 400000)
	assert.True(t, ok)
	assert.Equal(t, 45000, km)

	_, ok = FindLabeledMileage("Onix 2021 flex", 400000)
	assert.False(t, ok)
}

func TestFindLooseMileage(t *testing.T) {
	// The Mauá layout prints mileage as a bare number next to the plate.
	km, ok := FindLooseMileage("HB20 1.0 71024 prata", 300000)
	assert.True(t, ok)
	assert.Equal(t, 71024, km)

	_, ok = FindLooseMileage("HB20 1.0 prata", 300000)
	assert.False(t, ok)
}

func TestParseYears(t *testing.T) {
	manufactured, model := ParseYears("Strada 2021 2022 completa")
	assert.Equal(t, 2021, manufactured)
	assert.Equal(t, 2022, model)

	manufactured, model = ParseYears("Strada 2021 completa")
	assert.Equal(t, 2021, manufactured)
	assert.Equal(t, 2021, model)

	manufactured, model = ParseYears("Strada 20/21 completa")
	assert.Equal(t, 2020, manufactured)
	assert.Equal(t, 2021, model)

	manufactured, model = ParseYears("Strada completa")
	assert.Equal(t, 0, manufactured)
	assert.Equal(t, 0, model)
}
