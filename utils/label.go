package utils

import (
	"strings"
	"unicode"
)

const maxLabelWords = 6

// labelStopwords is boilerplate that shows up inside vehicle descriptions
// across the known source layouts: city names, listing jargon, fuel and
// transmission terms. None of it belongs in a model label.
var labelStopwords = map[string]bool{
	"oferta":     true,
	"disponivel": true,
	"sp":         true,
	"barueri":    true,
	"maua":       true,
	"sorocaba":   true,
	"campinas":   true,
	"margem":     true,
	"fipe":       true,
	"preco":      true,
	"ganho":      true,
	"ipva":       true,
	"km":         true,
	"flex":       true,
	"diesel":     true,
	"manual":     true,
	"automatico": true,
}

// knownColors and knownBrands are matched by substring containment against
// the uppercased context; first hit wins.
var knownColors = []string{
	"BRANCO", "BRANCA", "PRETO", "PRETA", "PRATA", "CINZA", "VERMELHO",
	"VERMELHA", "AZUL", "VERDE", "AMARELO", "MARROM", "BEGE", "DOURADO",
	"VINHO", "LARANJA", "GRAFITE",
}

var knownBrands = []string{
	"VOLKSWAGEN", "CHEVROLET", "MITSUBISHI", "MERCEDES", "PEUGEOT",
	"CITROEN", "HYUNDAI", "RENAULT", "TOYOTA", "NISSAN", "HONDA", "FIAT",
	"FORD", "JEEP", "CHERY", "VOLVO", "AUDI", "BMW", "KIA", "RAM", "GM",
	"VW",
}

// CleanModelLabel denoises a context window into a short free-text model
// description: plates, prices and year tokens are stripped, stopwords and
// trivial tokens dropped, and the first few surviving words kept. It is a
// filter, not a parser; partial labels are acceptable.
func CleanModelLabel(text string) string {
	s := strings.NewReplacer("\n", " ", `"`, "", "'", "").Replace(text)
	s = PlateRe.ReplaceAllString(s, "")
	s = moneyTokenRe.ReplaceAllString(s, "")
	s = fullYearRe.ReplaceAllString(s, "")

	var kept []string
	for _, w := range strings.Fields(s) {
		if labelStopwords[strings.ToLower(w)] || len(w) <= 2 || isNumeric(w) {
			continue
		}
		kept = append(kept, w)
		if len(kept) == maxLabelWords {
			break
		}
	}
	return strings.Join(kept, " ")
}

// DetectColor returns the first known color contained in the context, or
// the unknown sentinel.
func DetectColor(text string) string {
	upper := strings.ToUpper(text)
	for _, c := range knownColors {
		if strings.Contains(upper, c) {
			return c
		}
	}
	return "-"
}

// DetectBrand returns the first known brand contained in the context, or
// the unknown sentinel. Longer names are listed first so "VOLKSWAGEN"
// beats its "VW" alias.
func DetectBrand(text string) string {
	upper := strings.ToUpper(text)
	for _, b := range knownBrands {
		if strings.Contains(upper, b) {
			return b
		}
	}
	return "-"
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
