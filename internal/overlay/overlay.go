// Package overlay builds CDN text-overlay URLs. The CDN renders a
// caption on top of an image when a tr:l-text,... path segment is
// inserted between its endpoint prefix and the file path.
package overlay

import (
	"encoding/base64"
	"net/url"
	"strings"
)

// Directive layout around the encoded caption: offset N20/20, font
// size 100, white text on translucent black. External CDN contract,
// keep byte for byte.
const (
	directivePrefix = "tr:l-text,ie-"
	directiveSuffix = ",ly-N20,lx-20,fs-100,co-white,bg-000000A0,l-end"
)

// EncodeText turns caption text into the token embedded in the
// directive: standard base64 of the raw bytes, then percent-encoded.
// '/' stays literal because the CDN accepts it inside the segment;
// '+' and '=' become %2B and %3D. Empty text encodes to empty.
func EncodeText(text string) string {
	if text == "" {
		return ""
	}
	return quote(base64.StdEncoding.EncodeToString([]byte(text)))
}

// DecodeText reverses EncodeText.
func DecodeText(token string) (string, error) {
	if token == "" {
		return "", nil
	}
	unescaped, err := url.PathUnescape(token)
	if err != nil {
		return "", err
	}
	raw, err := base64.StdEncoding.DecodeString(unescaped)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// TransformURL inserts the caption overlay directive after the CDN
// endpoint prefix, i.e. scheme://host/<first-segment>. With an empty
// caption the URL is returned untouched. URLs that do not parse or
// carry no file path after the first segment are also returned
// untouched rather than producing a malformed address.
func TransformURL(originalURL, caption string) string {
	if caption == "" {
		return originalURL
	}
	u, err := url.Parse(originalURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return originalURL
	}
	segments := strings.Split(strings.TrimPrefix(u.EscapedPath(), "/"), "/")
	if len(segments) < 2 || segments[0] == "" {
		return originalURL
	}
	rest := strings.Join(segments[1:], "/")
	if rest == "" {
		return originalURL
	}
	prefix := u.Scheme + "://" + u.Host + "/" + segments[0]
	return prefix + "/" + directivePrefix + EncodeText(caption) + directiveSuffix + "/" + rest
}

// quote percent-encodes every byte outside the unreserved set,
// keeping '/' literal to match the directive the CDN expects.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || c == '/' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

func isUnreserved(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' ||
		'0' <= c && c <= '9' || c == '-' || c == '_' || c == '.' || c == '~'
}
