package source

import (
	"golang.org/x/text/unicode/norm"
)

// NormalizeIdent brings an identifier into NFC so that visually identical
// names written with different code point sequences compare equal.
func NormalizeIdent(name string) string {
	if norm.NFC.IsNormalString(name) {
		return name
	}
	return norm.NFC.String(name)
}
