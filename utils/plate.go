package utils

import "regexp"

// PlateRe matches both the legacy (ABC1234) and Mercosul (ABC1D23) plate
// grammars: 3 letters, 1 digit, 1 alphanumeric, 2 digits. Plates are the
// only anchor that survives every source layout.
var PlateRe = regexp.MustCompile(`\b[A-Z]{3}[0-9][A-Z0-9][0-9]{2}\b`)

// FindPlate returns the first plate in s, or "".
func FindPlate(s string) string {
	return PlateRe.FindString(s)
}

// SplitOnPlates partitions text into plate/context pairs. The context of
// plate i runs until the next plate match (or end of text), so the pairs
// cover the whole document after the first plate.
func SplitOnPlates(text string) (plates, contexts []string) {
	parts := PlateRe.Split(text, -1)
	matches := PlateRe.FindAllString(text, -1)
	for i, plate := range matches {
		plates = append(plates, plate)
		// parts[0] is the preamble before the first plate.
		if i+1 < len(parts) {
			contexts = append(contexts, parts[i+1])
		} else {
			contexts = append(contexts, "")
		}
	}
	return plates, contexts
}
