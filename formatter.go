package httpbuster

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// DisplayOptions controls which outcomes are printed and what each line shows.
type DisplayOptions struct {
	Quiet        bool
	Verbose      bool
	NoProgress   bool
	ShowLength   bool
	ShowRedirect bool
	Expand       bool
	HideStatus   bool
	ShowTitle    bool
	Color        bool
}

// Formatter decides which outcomes are kept and renders them as display lines.
type Formatter struct {
	Options  DisplayOptions
	AddSlash bool
	discard  map[int]struct{}
}

// NewFormatter creates a Formatter for the display options and discard set in config.
func NewFormatter(config Config) *Formatter {
	discard := map[int]struct{}{}
	for _, status := range config.discard() {
		discard[status] = struct{}{}
	}

	return &Formatter{
		Options:  config.Display,
		AddSlash: config.AddSlash,
		discard:  discard,
	}
}

// Discarded reports whether a status code is in the discard set.
func (f *Formatter) Discarded(status int) bool {
	_, found := f.discard[status]
	return found
}

// Format renders an outcome as a display line.
// It returns false when the outcome should not be printed: failed requests, and discarded statuses unless verbose.
func (f *Formatter) Format(outcome *Outcome) (string, bool) {
	if outcome.Err != nil || outcome.Response == nil {
		return "", false
	}

	response := outcome.Response
	discarded := f.Discarded(response.StatusCode)
	if discarded && !f.Options.Verbose {
		return "", false
	}

	var line strings.Builder
	if f.Options.Verbose {
		if discarded {
			line.WriteString("Drop: ")
		} else {
			line.WriteString("Keep: ")
		}
	}

	if f.Options.Expand {
		line.WriteString(response.URL)
	} else {
		line.WriteString("/" + outcome.Candidate)
		if f.AddSlash {
			line.WriteString("/")
		}
	}

	if !f.Options.HideStatus {
		line.WriteString(" " + f.status(response.StatusCode))
	}

	if f.Options.ShowLength {
		fmt.Fprintf(&line, " [%d]", response.ContentLength)
	}

	if f.Options.ShowRedirect && response.StatusCode == 301 && response.Location != "" {
		line.WriteString(" => " + response.Location)
	}

	if f.Options.ShowTitle && response.Title != "" {
		fmt.Fprintf(&line, " %q", response.Title)
	}

	return line.String(), true
}

func (f *Formatter) status(code int) string {
	status := fmt.Sprintf("(%d)", code)
	if !f.Options.Color {
		return status
	}

	switch {
	case code >= 500:
		return color.RedString(status)
	case code >= 400:
		return color.YellowString(status)
	case code >= 300:
		return color.CyanString(status)
	default:
		return color.GreenString(status)
	}
}
