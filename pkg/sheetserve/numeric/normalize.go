// Package numeric recognizes display-formatted numbers in grid cells and
// sums them across table rows.
package numeric

import (
	"strconv"
	"strings"

	"github.com/ukaji3/sheetserve/pkg/sheetserve/models"
)

// currencySymbols are the currency markers accepted before a number.
var currencySymbols = []string{"$", "€", "£", "¥"}

// Normalize extracts the numeric value a cell represents.
// Native numbers pass through unchanged. Text is cleaned of display
// formatting before parsing: surrounding whitespace, one trailing percent
// sign, one leading currency symbol and digit-grouping commas. The percent
// sign is dropped rather than divided out, so "5%" normalizes to 5.
// Empty cells and text that is not numeric under these rules report
// ok == false.
func Normalize(c models.Cell) (value float64, ok bool) {
	switch c.Kind {
	case models.CellNumber:
		return c.Number, true
	case models.CellText:
		return normalizeText(c.Raw)
	default:
		return 0, false
	}
}

// Sum adds the recognized numeric values of cells. Cells that do not
// normalize contribute zero, so a row with no numeric cells sums to 0.
func Sum(cells []models.Cell) float64 {
	var total float64
	for _, c := range cells {
		if v, ok := Normalize(c); ok {
			total += v
		}
	}
	return total
}

// normalizeText parses a display-formatted number out of raw text.
func normalizeText(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	if strings.HasSuffix(s, "%") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	}

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}
	for _, sym := range currencySymbols {
		if strings.HasPrefix(s, sym) {
			s = strings.TrimPrefix(s, sym)
			// The sign may also follow the currency symbol, as in "$-10"
			if !negative && strings.HasPrefix(s, "-") {
				negative = true
				s = s[1:]
			}
			break
		}
	}

	if !validDigits(s) {
		return 0, false
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	if negative {
		v = -v
	}
	return v, true
}

// validDigits checks that s is digits with at most one decimal point and
// well-placed grouping commas: when commas appear, the first group holds one
// to three digits and every later group exactly three, with no commas after
// the decimal point.
func validDigits(s string) bool {
	intPart, frac := s, ""
	hasDot := false
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		hasDot = true
		intPart, frac = s[:dot], s[dot+1:]
	}
	// A second dot or a comma lands in frac and fails here
	if !allDigits(frac) {
		return false
	}
	if intPart == "" {
		// Forms like ".5" carry the whole value in the fraction
		return hasDot && frac != ""
	}
	groups := strings.Split(intPart, ",")
	if len(groups) == 1 {
		return allDigits(groups[0])
	}
	for i, g := range groups {
		if !allDigits(g) || g == "" {
			return false
		}
		if i == 0 {
			if len(g) > 3 {
				return false
			}
		} else if len(g) != 3 {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
