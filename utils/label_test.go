package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanModelLabel(t *testing.T) {
	label := CleanModelLabel("ABC1D23 Gol 1.6 Trendline 2020 flex manual R$ 35.000,00 Barueri SP")

	assert.Contains(t, label, "Gol")
	assert.Contains(t, label, "Trendline")
	assert.NotContains(t, label, "ABC1D23")
	assert.NotContains(t, label, "35.000")
	assert.NotContains(t, label, "2020")
	assert.NotContains(t, label, "flex")
	assert.NotContains(t, label, "Barueri")
	assert.NotContains(t, label, "SP")
}

func TestCleanModelLabelCapsWords(t *testing.T) {
	label := CleanModelLabel("Fiat Toro Volcano Turbo 270 Automatica Couro Teto Solar Multimidia")
	// 270 is numeric, everything else counts toward the cap.
	assert.Equal(t, "Fiat Toro Volcano Turbo Automatica Couro", label)
}

func TestDetectColor(t *testing.T) {
	assert.Equal(t, "PRATA", DetectColor("Onix 1.0 prata 2021"))
	assert.Equal(t, "-", DetectColor("Onix 1.0 2021"))
}

func TestDetectBrand(t *testing.T) {
	assert.Equal(t, "VOLKSWAGEN", DetectBrand("VOLKSWAGEN Gol 1.6"))
	assert.Equal(t, "FIAT", DetectBrand("fiat strada endurance"))
	assert.Equal(t, "-", DetectBrand("Gol 1.6 sem marca"))
}
