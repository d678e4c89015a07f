package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent lower-cases an identifier and drops separators, so that
// "OrderID", "order_id" and "orderId" all fold to "orderid".
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// Tokens splits an identifier at separators and case changes and returns
// the lower-cased words: "getHTTPResponse" gives [get http response].
func Tokens(s string) []string {
	runes := []rune(s)

	var (
		out  []string
		word []rune
	)

	flush := func() {
		if len(word) > 0 {
			out = append(out, strings.ToLower(string(word)))
			word = word[:0]
		}
	}

	for i, r := range runes {
		if isSeparator(r) {
			flush()

			continue
		}

		if i > 0 && wordBoundary(runes, i) {
			flush()
		}

		word = append(word, r)
	}

	flush()

	return out
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// wordBoundary reports whether a new word starts at runes[i]: on a
// lower-to-upper transition, or at the last capital of an acronym that is
// followed by a lower-case letter ("XMLParser" splits before 'P').
func wordBoundary(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
