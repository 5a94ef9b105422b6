package httpbuster

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Sink receives display lines and progress as outcomes are handled.
// Implementations must be safe for concurrent use and must not interleave lines.
type Sink interface {
	// Add advances progress by n outcomes.
	Add(n int)
	// Println prints a single display line.
	Println(line string)
	// Finish completes the progress display and prints a final message.
	Finish(message string)
	// Abort removes the progress display without printing a completion message.
	Abort()
}

// PlainSink writes lines straight to an output stream and ignores progress.
type PlainSink struct {
	out io.Writer
	mux sync.Mutex
}

// NewPlainSink creates a PlainSink writing to out.
func NewPlainSink(out io.Writer) *PlainSink {
	return &PlainSink{out: out}
}

func (s *PlainSink) Add(n int) {}

func (s *PlainSink) Println(line string) {
	s.mux.Lock()
	defer s.mux.Unlock()
	fmt.Fprintln(s.out, line)
}

func (s *PlainSink) Finish(message string) {
	s.Println(message)
}

func (s *PlainSink) Abort() {}

// ProgressSink draws a progress bar and prints lines above it without corrupting it.
type ProgressSink struct {
	bar   *progressbar.ProgressBar
	out   io.Writer
	total int
	count int
	mux   sync.Mutex
}

// NewProgressSink creates a ProgressSink expecting total outcomes.
// Lines are written to out and the bar is drawn on barOut.
func NewProgressSink(total int, out, barOut io.Writer) *ProgressSink {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(barOut),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "#",
			SaucerHead:    "#",
			SaucerPadding: "-",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	return &ProgressSink{bar: bar, out: out, total: total}
}

func (s *ProgressSink) Add(n int) {
	s.mux.Lock()
	defer s.mux.Unlock()

	// The total is only an estimate; grow it rather than let the bar finish early.
	s.count += n
	if s.count > s.total {
		s.total = s.count
		s.bar.ChangeMax(s.total)
	}
	_ = s.bar.Add(n)
}

func (s *ProgressSink) Println(line string) {
	s.mux.Lock()
	defer s.mux.Unlock()

	_ = s.bar.Clear()
	fmt.Fprintln(s.out, line)
	_ = s.bar.RenderBlank()
}

func (s *ProgressSink) Finish(message string) {
	s.mux.Lock()
	defer s.mux.Unlock()

	_ = s.bar.Finish()
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, message)
}

func (s *ProgressSink) Abort() {
	s.mux.Lock()
	defer s.mux.Unlock()

	_ = s.bar.Clear()
}
