// Package slug genera identificadores URL-safe a partir de nombres.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone y elimina marcas diacríticas (á -> a, ñ -> n).
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make convierte un nombre en un slug: minúsculas, sin acentos, y grupos de
// caracteres no alfanuméricos colapsados a un solo guion.
func Make(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	// đ no lleva marca diacrítica; se mapea aparte.
	folded = strings.NewReplacer("đ", "d", "Đ", "D").Replace(folded)

	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		default:
			pendingDash = true
		}
	}
	return b.String()
}
