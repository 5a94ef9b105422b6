package httpbuster

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
)

// syncBuffer is a bytes.Buffer that can be written to from several goroutines.
type syncBuffer struct {
	buf bytes.Buffer
	mux sync.Mutex
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mux.Lock()
	defer b.mux.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mux.Lock()
	defer b.mux.Unlock()
	return b.buf.String()
}

func TestPlainSinkDoesNotInterleaveLines(t *testing.T) {
	out := &syncBuffer{}
	sink := NewPlainSink(out)

	const lines = 50
	var waitGroup sync.WaitGroup
	for i := 0; i < lines; i++ {
		waitGroup.Add(1)
		go func(i int) {
			defer waitGroup.Done()
			sink.Add(1)
			sink.Println(fmt.Sprintf("/path-%d (200)", i))
		}(i)
	}
	waitGroup.Wait()
	sink.Finish(CompletionMessage)

	printed := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(printed) != lines+1 {
		t.Fatalf("Expected %d lines, got %d", lines+1, len(printed))
	}

	for _, line := range printed[:lines] {
		if !strings.HasPrefix(line, "/path-") || !strings.HasSuffix(line, " (200)") {
			t.Fatalf("Got corrupted line %q", line)
		}
	}

	if printed[lines] != CompletionMessage {
		t.Fatalf("Expected %q, got %q", CompletionMessage, printed[lines])
	}
}

func TestProgressSinkPrintsLinesToOutput(t *testing.T) {
	out := &syncBuffer{}
	sink := NewProgressSink(2, out, io.Discard)

	// More outcomes than estimated must not break the bar.
	for i := 0; i < 5; i++ {
		sink.Add(1)
	}
	sink.Println("/admin (200)")
	sink.Finish(CompletionMessage)

	printed := out.String()
	if !strings.Contains(printed, "/admin (200)\n") {
		t.Fatalf("Expected the result line in %q", printed)
	}

	if !strings.HasSuffix(printed, CompletionMessage+"\n") {
		t.Fatalf("Expected output to end with the completion message, got %q", printed)
	}
}
