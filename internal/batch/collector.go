package batch

import (
	"strings"
	"unicode/utf8"
)

// Characters left untouched by NormalizeURL besides the unreserved set
const urlSafeChars = ":/?=&"

const upperHex = "0123456789ABCDEF"

// Collect splits raw multi-line text into normalized URLs, one per non-blank
// line, in input order. Duplicates are kept. It returns ErrNoURLs when nothing
// is left.
func Collect(raw string) ([]string, error) {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	urls := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		normalized := NormalizeURL(line)
		if strings.TrimSpace(normalized) == "" {
			continue
		}
		urls = append(urls, normalized)
	}

	if len(urls) == 0 {
		return nil, ErrNoURLs
	}
	return urls, nil
}

// NormalizeURL percent-encodes everything outside the unreserved set and
// ":/?=&", then decodes the result back. For valid UTF-8 input this is the
// identity; invalid byte sequences come back as U+FFFD. The function is
// idempotent.
func NormalizeURL(s string) string {
	return unquote(quote(s))
}

func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || strings.IndexByte(urlSafeChars, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}
	return b.String()
}

func unquote(s string) string {
	if !strings.Contains(s, "%") {
		return toValidUTF8(s)
	}

	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			hi, okHi := unhex(s[i+1])
			lo, okLo := unhex(s[i+2])
			if okHi && okLo {
				buf = append(buf, hi<<4|lo)
				i += 2
				continue
			}
		}
		buf = append(buf, s[i])
	}
	return toValidUTF8(string(buf))
}

func toValidUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '.', c == '_', c == '~':
		return true
	}
	return false
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
