package httpbuster

import (
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// ParseHeaders parses headers given as "Name: Value" strings.
func ParseHeaders(headers []string) (http.Header, error) {
	parsed := http.Header{}
	for _, header := range headers {
		name, value, found := strings.Cut(header, ":")
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if !found || !httpguts.ValidHeaderFieldName(name) || !httpguts.ValidHeaderFieldValue(value) {
			return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, header)
		}

		parsed.Add(name, value)
	}
	return parsed, nil
}

// CookieHeader merges cookies given as "name=value" strings into a single Cookie header value.
// It returns an empty string when there are no cookies.
func CookieHeader(cookies []string) (string, error) {
	if len(cookies) == 0 {
		return "", nil
	}

	pairs := make([]string, 0, len(cookies))
	for _, cookie := range cookies {
		cookie = strings.TrimSuffix(strings.TrimSpace(cookie), ";")
		name, value, found := strings.Cut(cookie, "=")
		if !found || name == "" || !httpguts.ValidHeaderFieldValue(value) || strings.ContainsAny(name, " ;=") {
			return "", fmt.Errorf("%w: %q", ErrMalformedCookie, cookie)
		}

		pairs = append(pairs, name+"="+value)
	}

	return strings.Join(pairs, "; ") + ";", nil
}
