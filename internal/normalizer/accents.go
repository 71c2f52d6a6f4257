package normalizer

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripDiacritics removes combining marks, e.g. "Génératif" -> "Generatif"
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// Fold produces an ASCII, accent-free form of s for fuzzy comparison only.
// Salary computation never sees folded text.
func Fold(s string) string {
	return Normalize(strings.ToLower(unidecode.Unidecode(StripDiacritics(s))))
}
