package httpbuster

import "errors"

var (
	// ErrMissingURL is returned when no target URL is configured.
	ErrMissingURL = errors.New("a target url is required")
	// ErrMissingWordlist is returned when no wordlist path is configured.
	ErrMissingWordlist = errors.New("a wordlist is required")
	// ErrMalformedHeader is returned for headers not in "Name: Value" form.
	ErrMalformedHeader = errors.New("malformed header")
	// ErrMalformedCookie is returned for cookies not in "name=value" form.
	ErrMalformedCookie = errors.New("malformed cookie")
)
