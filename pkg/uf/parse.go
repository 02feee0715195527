package uf

import (
	"strings"
	"unicode"

	"github.com/rotisserie/eris"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalid marks identifiers that resolve to no federative unit.
var ErrInvalid = eris.New("invalid federative unit identifier")

// Parse resolves an identifier (sigla, full name or IBGE code) into its
// canonical Code. Matching ignores case, accents and surrounding
// whitespace. Extinct units are rejected; use ParseExtintos for those.
func Parse(s string) (Code, error) {
	return parse(s, false)
}

// ParseExtintos is Parse extended to the extinct units FN (Fernando de
// Noronha) and GB (Guanabara).
func ParseExtintos(s string) (Code, error) {
	return parse(s, true)
}

func parse(s string, extintos bool) (Code, error) {
	key := normalize(s)
	if key == "" {
		return "", eris.Wrap(ErrInvalid, "uf: empty identifier")
	}
	if c, ok := lookup[key]; ok {
		if unidades[c].extinta && !extintos {
			return "", eris.Wrapf(ErrInvalid, "uf: %q is extinct (valid: %s)", s, strings.Join(Siglas(false), ", "))
		}
		return c, nil
	}
	return "", eris.Wrapf(ErrInvalid, "uf: unknown federative unit %q (valid: %s)", s, strings.Join(Siglas(extintos), ", "))
}

// normalize lowercases, strips diacritics and collapses inner whitespace,
// so "São  Paulo" and "sao paulo" resolve identically.
func normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return strings.Join(strings.Fields(strings.ToLower(stripped)), " ")
}
