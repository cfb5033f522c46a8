package fileformat

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics убирает диакритику: "Société Générale" -> "Societe Generale".
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// isSEPAChar допустимый набор символов SEPA (латиница EPC).
func isSEPAChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	default:
		return strings.ContainsRune("/-?:().,'+ ", r)
	}
}

// sepaText приводит строку к набору SEPA и обрезает до maxLen символов.
func sepaText(s string, maxLen int) string {
	folded := foldDiacritics(s)
	out := strings.Map(func(r rune) rune {
		if isSEPAChar(r) {
			return r
		}
		return ' '
	}, folded)
	return truncate(strings.Join(strings.Fields(out), " "), maxLen)
}

// cfonbText приводит строку к верхнему регистру ASCII для записей CFONB.
func cfonbText(s string) string {
	folded := strings.ToUpper(foldDiacritics(s))
	return strings.Map(func(r rune) rune {
		if r >= 0x20 && r < 0x7f {
			return r
		}
		return ' '
	}, folded)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
