package kernel

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

// NormalizeBarcode returns the canonical form used for barcode comparison:
// surrounding whitespace removed, full-width characters folded to ASCII and
// letters upper-cased. Handheld scanners configured for East Asian keyboards
// emit full-width digits, which must match the stored narrow form.
func NormalizeBarcode(raw string) string {
	folded := width.Fold.String(strings.TrimSpace(raw))
	return cases.Upper(language.Und).String(strings.TrimSpace(folded))
}
