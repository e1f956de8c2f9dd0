package utils

import (
	"regexp"
	"strconv"
	"strings"
)

// Money and mileage tokens are syntactically disjoint in the source
// listings: prices carry "R$" or a decimal comma, mileage is a plain
// integer. Classification is therefore a mutually exclusive partition,
// not a scorer.

var (
	nonMoneyChars  = regexp.MustCompile(`[^\d,]`)
	nonDigitChars  = regexp.MustCompile(`\D`)
	moneyTokenRe   = regexp.MustCompile(`R\$\s?[\d\.,]+`)
	fullYearRe     = regexp.MustCompile(`\b(20[12][0-9])\b`)
	shortYearRe    = regexp.MustCompile(`\b([12][0-9])/([12][0-9])\b`)
	labeledKmRe    = regexp.MustCompile(`(?:KM|Km|km)[\s.:]?\s*([\d\.]+)`)
	looseMileageRe = regexp.MustCompile(`\b(\d{4,6})\b`)
)

// ParseMoney converts a Brazilian-formatted amount to a float. A token only
// qualifies as money when it carries a currency marker or a decimal comma;
// periods are thousands separators. Amounts at or below floor are noise
// (fees, page numbers) and are rejected. Returns ok=false for non-money.
func ParseMoney(token string, floor float64) (float64, bool) {
	s := strings.TrimSpace(token)
	if s == "" {
		return 0, false
	}
	if !strings.Contains(s, "R$") && !strings.Contains(s, ",") {
		return 0, false
	}

	clean := nonMoneyChars.ReplaceAllString(s, "")
	if clean == "" {
		return 0, false
	}
	if i := strings.LastIndex(clean, ","); i >= 0 {
		clean = strings.ReplaceAll(clean[:i], ",", "") + "." + strings.ReplaceAll(clean[i+1:], ",", "")
	}

	val, err := strconv.ParseFloat(clean, 64)
	if err != nil || val <= floor {
		return 0, false
	}
	return val, true
}

// ParseMileage converts a token to kilometers. Anything that looks like
// money ("R$" or a comma) is refused outright. Values outside [0, ceiling)
// fail the sanity check.
func ParseMileage(token string, ceiling int) (int, bool) {
	s := strings.TrimSpace(token)
	if s == "" || strings.Contains(s, "R$") || strings.Contains(s, ",") {
		return 0, false
	}

	clean := nonDigitChars.ReplaceAllString(s, "")
	if clean == "" {
		return 0, false
	}
	val, err := strconv.Atoi(clean)
	if err != nil || val < 0 || val >= ceiling {
		return 0, false
	}
	return val, true
}

// FindMoneyTokens returns every "R$"-anchored substring in text, in order.
func FindMoneyTokens(text string) []string {
	return moneyTokenRe.FindAllString(text, -1)
}

// FindLabeledMileage looks for a "KM"-prefixed number and parses it.
func FindLabeledMileage(text string, ceiling int) (int, bool) {
	m := labeledKmRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return 0, false
	}
	return ParseMileage(m[1], ceiling)
}

// FindLooseMileage scans for a bare 4-6 digit integer, the layout used by
// sources that print mileage unlabeled next to the plate. Zero is not a
// valid loose reading.
func FindLooseMileage(text string, ceiling int) (int, bool) {
	for _, m := range looseMileageRe.FindAllStringSubmatch(text, -1) {
		if val, err := strconv.Atoi(m[1]); err == nil && val > 0 && val < ceiling {
			return val, true
		}
	}
	return 0, false
}

// ParseYears extracts manufacture and model year from a context window.
// Full 4-digit years in [2010,2029] win; the short "20/21" form is the
// fallback. The first year found is the manufacture year, the second (or
// the same one) the model year. Zeros mean not found.
func ParseYears(text string) (manufactured, model int) {
	years := fullYearRe.FindAllString(text, -1)
	if len(years) > 0 {
		manufactured, _ = strconv.Atoi(years[0])
		model = manufactured
		if len(years) > 1 {
			model, _ = strconv.Atoi(years[1])
		}
		return manufactured, model
	}

	if m := shortYearRe.FindStringSubmatch(text); len(m) == 3 {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		if a >= 10 && a <= 29 && b >= 10 && b <= 29 {
			return 2000 + a, 2000 + b
		}
	}
	return 0, 0
}
