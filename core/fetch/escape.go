package fetch

import (
	"fmt"
	"net/url"
	"strings"
)

// EscapeURL percent-encodes characters that are not legal in a URL
// (non-ASCII, spaces, quotes) while leaving reserved characters and
// existing escapes alone. Article lists are usually pasted from a browser
// address bar, so "https://ja.wikipedia.org/wiki/日本" must be accepted.
func EscapeURL(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("escaping URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("escaping URL %q: scheme and host required", rawURL)
	}
	u.RawQuery = escapeIllegal(u.RawQuery)
	return u.String(), nil
}

// escapeIllegal percent-encodes the bytes of s that may never appear
// unescaped in a URL component.
func escapeIllegal(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c > ' ' && c < 0x7f && !strings.ContainsRune(`"<>\^`+"`{|}", rune(c)) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}
