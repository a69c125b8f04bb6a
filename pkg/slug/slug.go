package slug

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// asciiFold decomposes accented characters and strips the combining marks,
// so "Café Déjà" folds to "Cafe Deja".
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make derives a URL-safe slug from a display name. Accents fold to ASCII,
// every run of characters outside [a-z0-9] collapses to a single dash, and
// leading/trailing dashes are trimmed.
func Make(name string) string {
	folded, _, err := transform.String(asciiFold, name)
	if err != nil {
		folded = name
	}
	s := strings.ToLower(folded)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// MakeUnique returns the first candidate slug not reported as taken, probing
// the base slug and then base-1, base-2, ... in order. The counter is
// unbounded. The caller owns atomicity between the probe and the insert; a
// unique index on the slug column catches the losing side of a race.
func MakeUnique(name string, taken func(slug string) (bool, error)) (string, error) {
	base := Make(name)
	candidate := base
	for counter := 1; ; counter++ {
		exists, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}
