package httpbuster

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// CompletionMessage is printed once every candidate has been requested.
const CompletionMessage = "[-] Enumeration complete"

// Run enumerates config.URL with every candidate generated from the wordlist and prints the kept results.
// Request failures never stop a run; invalid configuration and wordlist errors do.
func Run(ctx context.Context, config Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	logger := config.logger()
	out := config.Output
	if out == nil {
		out = os.Stdout
	}

	wordlist, err := OpenWordlist(config.WordlistPath, config.Permutations)
	if err != nil {
		return fmt.Errorf("unable to open wordlist: %w", err)
	}
	defer wordlist.Close()

	if !config.Display.Quiet {
		WriteBanner(out, config, wordlist)
	}

	client, err := NewClient(config)
	if err != nil {
		return err
	}

	sink := newSink(config, wordlist.TotalCount(), out, config.ProgressOutput)
	formatter := NewFormatter(config)

	outcomes, errs := NewDispatcher(config, client).Dispatch(ctx, wordlist)
	return report(outcomes, errs, sink, formatter, logger)
}

// report hands every outcome to the sink and finishes it once the dispatcher is drained.
// A source error clears the progress display before it is returned.
func report(outcomes <-chan *Outcome, errs <-chan error, sink Sink, formatter *Formatter, logger *logrus.Logger) error {
	for outcome := range outcomes {
		sink.Add(1)

		if outcome.Err != nil {
			logger.WithFields(logrus.Fields{"candidate": outcome.Candidate, "url": outcome.URL, "err": outcome.Err}).Debug("Request failed")
			continue
		}

		if line, keep := formatter.Format(outcome); keep {
			sink.Println(line)
		}
	}

	if err := <-errs; err != nil {
		sink.Abort()
		return fmt.Errorf("unable to read wordlist: %w", err)
	}

	sink.Finish(CompletionMessage)
	return nil
}

func newSink(config Config, total int, out, progressOut io.Writer) Sink {
	if config.Display.NoProgress {
		return NewPlainSink(out)
	}

	if progressOut == nil {
		progressOut = os.Stderr
	}
	return NewProgressSink(total, out, progressOut)
}
