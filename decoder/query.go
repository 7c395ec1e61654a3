package decoder

import (
	"strings"
	"unicode/utf8"
)

// DecodeQuery parses an application/x-www-form-urlencoded string. It never
// fails: malformed escapes are kept literally and invalid UTF-8 is replaced.
func DecodeQuery(raw string) *Values {
	values := NewValues()

	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}

		key, value := pair, ""
		if i := strings.IndexByte(pair, '='); i >= 0 {
			key, value = pair[:i], pair[i+1:]
		}

		values.add(unescape(key), unescape(value))
	}

	return values
}

func unescape(s string) string {
	if !strings.ContainsAny(s, "%+") {
		return toValidUTF8(s)
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}

	return toValidUTF8(b.String())
}

func toValidUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	return strings.ToValidUTF8(s, string(utf8.RuneError))
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
