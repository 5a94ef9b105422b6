package httpbuster

import (
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "Mozilla/5.0"
	// DefaultWorkers is the default number of concurrent requests.
	DefaultWorkers = 10
	// DefaultTimeout is the default per-request timeout.
	DefaultTimeout = time.Second
)

// DefaultDiscard holds the status codes hidden from output unless configured otherwise.
var DefaultDiscard = []int{404}

// Config holds all run configuration.
// It is built once and passed by value; no component modifies it.
type Config struct {
	URL                string
	WordlistPath       string
	Permutations       PermutationSpec
	Workers            int
	Timeout            time.Duration
	InsecureSkipVerify bool
	UserAgent          string
	Headers            []string
	Cookies            []string
	AddSlash           bool
	RateLimit          float64
	RequestDelay       time.Duration
	Discard            []int
	Display            DisplayOptions
	Output             io.Writer
	ProgressOutput     io.Writer
	Logger             *logrus.Logger
}

// Validate checks that the configuration can start a run.
func (c Config) Validate() error {
	if c.URL == "" {
		return ErrMissingURL
	}

	if c.WordlistPath == "" {
		return ErrMissingWordlist
	}

	if c.Workers < 1 {
		return errors.New("at least one worker is required")
	}

	if _, err := ParseHeaders(c.Headers); err != nil {
		return err
	}

	_, err := CookieHeader(c.Cookies)
	return err
}

// discard returns the configured discard set, falling back to DefaultDiscard.
func (c Config) discard() []int {
	if c.Discard == nil {
		return DefaultDiscard
	}
	return c.Discard
}

func (c Config) logger() *logrus.Logger {
	if c.Logger == nil {
		return logrus.StandardLogger()
	}
	return c.Logger
}
