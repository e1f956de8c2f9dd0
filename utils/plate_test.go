package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindPlate(t *testing.T) {
	// Mercosul format.
	assert.Equal(t, "ABC1D23", FindPlate("oferta ABC1D23 Gol 1.6"))
	// Legacy format also satisfies the grammar.
	assert.Equal(t, "ABC1234", FindPlate("oferta ABC1234 Gol 1.6"))
	assert.Equal(t, "", FindPlate("sem placa nesta linha"))
	// Lowercase never matches; source listings print plates uppercased.
	assert.Equal(t, "", FindPlate("abc1d23"))
}

func TestSplitOnPlates(t *testing.T) {
	text := "cabecalho da lista ABC1D23 Gol R$ 35.000,00 DEF4G56 Onix R$ 42.000,00"

	plates, contexts := SplitOnPlates(text)

	assert.Equal(t, []string{"ABC1D23", "DEF4G56"}, plates)
	assert.Len(t, contexts, 2)
	assert.Contains(t, contexts[0], "Gol")
	assert.Contains(t, contexts[1], "Onix")
}

// Segmentation is a total partition: preamble plus plate/context pairs
// reconstructs the original text.
func TestSplitOnPlatesReconstructs(t *testing.T) {
	text := "lixo inicial ABC1D23 Gol 2020 DEF4G56 Onix 2021 GHI7J89"

	plates, contexts := SplitOnPlates(text)
	preamble := PlateRe.Split(text, -1)[0]

	var rebuilt strings.Builder
	rebuilt.WriteString(preamble)
	for i := range plates {
		rebuilt.WriteString(plates[i])
		rebuilt.WriteString(contexts[i])
	}
	assert.Equal(t, text, rebuilt.String())
}

func TestSplitOnPlatesEmpty(t *testing.T) {
	plates, contexts := SplitOnPlates("nenhuma placa aqui")
	assert.Empty(t, plates)
	assert.Empty(t, contexts)
}
