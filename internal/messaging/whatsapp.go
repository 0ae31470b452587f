// Package messaging builds deep links into the WhatsApp web entry point.
package messaging

import (
	"net/url"
	"strings"
	"unicode"
)

// Linker addresses every handoff to one consultancy number.
type Linker struct {
	baseURL string
	number  string
}

// NewLinker normalizes number to digits only, so "+90 533 285 30 31" and
// "905332853031" produce the same link.
func NewLinker(baseURL, number string) *Linker {
	return &Linker{
		baseURL: strings.TrimRight(baseURL, "/"),
		number:  digitsOnly(number),
	}
}

func (l *Linker) Number() string {
	return l.number
}

// Link returns https://<domain>/<number>?text=<message>.
func (l *Linker) Link(message string) string {
	return l.baseURL + "/" + l.number + "?text=" + Encode(message)
}

// Encode percent-encodes like encodeURIComponent: spaces become %20, not "+".
func Encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
