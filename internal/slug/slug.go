// Package slug builds SEO-friendly path segments of the form "<id>-<name>"
// for products and categories, and recovers the id from them.
package slug

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var ErrInvalidSlug = errors.New("invalid slug")

const (
	separator = '-'
	tatweel   = 'ـ'
)

// Encode joins id and a sanitised form of name. Arabic letters are kept as-is;
// diacritics, tatweel and punctuation are dropped.
func Encode(id int64, name string) string {
	base := strconv.FormatInt(id, 10)

	clean := sanitize(name)
	if clean == "" {
		return base
	}

	return base + string(separator) + clean
}

// Decode extracts the id from the leading numeric component.
func Decode(s string) (int64, error) {
	head, _, _ := strings.Cut(strings.TrimSpace(s), string(separator))
	if head == "" || head[0] == '0' || head[0] == '+' {
		return 0, ErrInvalidSlug
	}

	for _, r := range head {
		if r < '0' || r > '9' {
			return 0, ErrInvalidSlug
		}
	}

	id, err := strconv.ParseInt(head, 10, 64)
	if err != nil {
		return 0, ErrInvalidSlug
	}

	return id, nil
}

func sanitize(name string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	pendingSep := false

	for _, r := range strings.ToLower(folded) {
		switch {
		case r == tatweel:
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSep && b.Len() > 0 {
				b.WriteRune(separator)
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}

	return b.String()
}
