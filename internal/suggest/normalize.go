package suggest

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// romanNumeralRegex matches Roman numerals II-IX when preceded by a space.
// Standalone "I" and "X" are excluded to avoid false positives like
// "I, Robot" or "American History X", as is the start of the string.
var romanNumeralRegex = regexp.MustCompile(`(?i) (ii|iii|iv|v|vi|vii|viii|ix)\b`)

var romanToArabic = map[string]string{
	"II": "2", "III": "3", "IV": "4", "V": "5",
	"VI": "6", "VII": "7", "VIII": "8", "IX": "9",
}

// NormalizeTitle folds a display title into a canonical matching key:
// lowercase, Roman numerals to Arabic, accents stripped, "&" spelled
// out, leading articles dropped, punctuation removed, whitespace
// collapsed. Titles from two metadata sources that refer to the same
// work should normalize to the same key.
func NormalizeTitle(title string) string {
	s := strings.ToLower(title)

	// Roman numerals before accent folding so the regex sees raw runes.
	s = romanNumeralRegex.ReplaceAllStringFunc(s, func(match string) string {
		roman := strings.ToUpper(strings.TrimSpace(match))
		if arabic, ok := romanToArabic[roman]; ok {
			return " " + arabic
		}
		return match
	})

	s = removeAccents(s)
	s = strings.ReplaceAll(s, "&", " and ")

	// Handle subtitles: strip a leading article from each colon part.
	parts := strings.Split(s, ":")
	for i, part := range parts {
		parts[i] = stripLeadingArticle(strings.TrimSpace(part))
	}
	s = strings.Join(parts, " ")

	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '.' || r == '/':
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

func stripLeadingArticle(s string) string {
	for _, art := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(s, art) {
			return strings.TrimPrefix(s, art)
		}
	}
	return s
}
