package httpbuster

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const bannerWidth = 40

// WriteBanner prints the run summary shown before enumeration starts.
func WriteBanner(w io.Writer, config Config, wordlist *Wordlist) {
	label := fmt.Sprint
	if config.Display.Color {
		label = color.New(color.FgWhite, color.Bold).Sprint
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	rule := strings.Repeat("-", bannerWidth)
	rows := []struct {
		name  string
		value string
	}{
		{"Mode:", "dir"},
		{"User-Agent:", fmt.Sprintf("%q", userAgent)},
		{"URL:", config.URL},
		{"Wordlist:", fmt.Sprintf("%s (%d entries)", wordlist.Path, wordlist.BaseCount)},
		{"Count:", fmt.Sprint(wordlist.TotalCount())},
		{"Threads:", fmt.Sprint(config.Workers)},
		{"Discard:", fmt.Sprint(config.discard())},
		{"Prepend:", fmt.Sprintf("%q", wordlist.Spec.Prepend)},
		{"Append:", fmt.Sprintf("%q", wordlist.Spec.Append)},
		{"Swap:", fmt.Sprintf("%q", wordlist.Spec.Swap)},
		{"Ext:", fmt.Sprintf("%q", wordlist.Spec.Extensions)},
	}

	fmt.Fprintln(w, rule)
	for _, row := range rows {
		fmt.Fprintf(w, "[*] %s\t%s\n", label(row.name), row.value)
	}
	fmt.Fprintln(w, rule)
}
