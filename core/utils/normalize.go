package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RegionPrefix is the country prefix every region code carries.
const RegionPrefix = "USA-"

// NormalizeRegion turns a state code into the stored region code form ("ca" -> "USA-CA").
// Values that already carry the prefix are only uppercased.
func NormalizeRegion(region string) string {
	r := strings.ToUpper(strings.TrimSpace(region))
	if r == "" || strings.HasPrefix(r, RegionPrefix) {
		return r
	}
	return RegionPrefix + r
}

// NormalizeName turns a display name into a programmatic name.
// It lowercases, strips diacritics, drops apostrophes and other punctuation and
// joins words separated by spaces or hyphens with a single underscore:
// "Chuck-will's-widow" -> "chuck_wills_widow".
func NormalizeName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		folded = strings.ToLower(strings.TrimSpace(name))
	}

	var b strings.Builder
	pendingSep := false
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_' || unicode.IsSpace(r):
			pendingSep = true
		default:
			// apostrophes, periods and other punctuation vanish without splitting words
		}
	}
	return b.String()
}

// SplitNames splits a comma separated list and normalizes each entry.
// Entries that normalize to nothing are dropped.
func SplitNames(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	var names []string
	for _, raw := range strings.Split(list, ",") {
		if n := NormalizeName(raw); n != "" {
			names = append(names, n)
		}
	}
	return names
}
