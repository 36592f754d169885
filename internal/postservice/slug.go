package postservice

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent decomposes letters and strips their combining marks, so that
// "çédille" becomes "cedille" before the ASCII filter runs.
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify converts a post title into its URL-safe slug: lowercase ASCII
// letters, digits, and single hyphens only. Runs of whitespace, hyphens,
// and underscores collapse into one hyphen; accented letters are reduced
// to their base letter; anything else (emoji, punctuation, symbols) is
// dropped. The empty title maps to the empty slug.
//
// Slugify is pure and idempotent: applying it to its own output is a
// no-op, so a title that is already a slug keeps its address.
func Slugify(title string) string {
	s, _, err := transform.String(deaccent, title)
	if err != nil {
		s = title
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))

	pendingHyphen := false
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			pendingHyphen = true
		}
		// everything else is dropped without acting as a separator
	}

	return b.String()
}
