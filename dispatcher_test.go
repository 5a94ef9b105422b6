package httpbuster

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func testLogger(t *testing.T) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(testWriter{t})
	logger.SetLevel(logrus.DebugLevel)
	return logger
}

type testWriter struct {
	t *testing.T
}

func (tw testWriter) Write(p []byte) (n int, err error) {
	tw.t.Log(string(p))
	return len(p), nil
}

type sliceSource struct {
	words   []string
	index   int
	current string
	err     error
}

func (s *sliceSource) Scan() bool {
	if s.index >= len(s.words) {
		return false
	}
	s.current = s.words[s.index]
	s.index++
	return true
}

func (s *sliceSource) Candidate() string {
	return s.current
}

func (s *sliceSource) Err() error {
	if s.index >= len(s.words) {
		return s.err
	}
	return nil
}

// slowTransport answers every request after a delay and records the most requests it saw at once.
type slowTransport struct {
	delay       time.Duration
	inFlight    int64
	maxInFlight int64
	failPath    string
}

func (s *slowTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	current := atomic.AddInt64(&s.inFlight, 1)
	defer atomic.AddInt64(&s.inFlight, -1)

	for {
		max := atomic.LoadInt64(&s.maxInFlight)
		if current <= max || atomic.CompareAndSwapInt64(&s.maxInFlight, max, current) {
			break
		}
	}

	time.Sleep(s.delay)

	if req.URL.Path == s.failPath {
		return nil, errors.New("connection reset by peer")
	}

	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader("ok")),
		Request:    req,
	}, nil
}

func testClient(transport http.RoundTripper) *Client {
	return &Client{
		Client: &http.Client{Transport: transport},
		Header: http.Header{},
	}
}

func collect(t *testing.T, outcomes <-chan *Outcome, errs <-chan error) ([]*Outcome, error) {
	t.Helper()
	collected := []*Outcome{}
	for outcome := range outcomes {
		collected = append(collected, outcome)
	}
	return collected, <-errs
}

func TestDispatcherNeverExceedsWorkerCount(t *testing.T) {
	const workers = 3
	words := []string{}
	for i := 0; i < 20; i++ {
		words = append(words, strings.Repeat("a", i+1))
	}

	transport := &slowTransport{delay: 20 * time.Millisecond}
	config := Config{URL: "http://x/", Workers: workers, Logger: testLogger(t)}
	dispatcher := NewDispatcher(config, testClient(transport))

	results, errs := dispatcher.Dispatch(context.Background(), &sliceSource{words: words})
	outcomes, err := collect(t, results, errs)
	if err != nil {
		t.Fatal(err)
	}

	if transport.maxInFlight > workers {
		t.Fatalf("Expected at most %d requests in flight, got %d", workers, transport.maxInFlight)
	}

	if len(outcomes) != len(words) {
		t.Fatalf("Expected %d outcomes, got %d", len(words), len(outcomes))
	}

	// Every outcome must be tagged with the candidate it was requested for.
	candidates := []string{}
	for _, outcome := range outcomes {
		if outcome.URL != "http://x/"+outcome.Candidate {
			t.Fatalf("Outcome for %s has URL %s", outcome.Candidate, outcome.URL)
		}
		candidates = append(candidates, outcome.Candidate)
	}

	sort.Strings(candidates)
	sort.Strings(words)
	for i := range words {
		if candidates[i] != words[i] {
			t.Fatalf("Expected candidate %s, got %s", words[i], candidates[i])
		}
	}
}

func TestDispatcherReportsTransportFailures(t *testing.T) {
	transport := &slowTransport{failPath: "/broken"}
	config := Config{URL: "http://x", Workers: 2, Logger: testLogger(t)}
	dispatcher := NewDispatcher(config, testClient(transport))

	source := &sliceSource{words: []string{"admin", "broken", "login"}}
	results, errs := dispatcher.Dispatch(context.Background(), source)
	outcomes, err := collect(t, results, errs)
	if err != nil {
		t.Fatal(err)
	}

	if len(outcomes) != 3 {
		t.Fatalf("Expected %d outcomes, got %d", 3, len(outcomes))
	}

	for _, outcome := range outcomes {
		if outcome.Candidate == "broken" {
			if outcome.Err == nil || outcome.Response != nil {
				t.Fatalf("Expected a failed outcome for broken, got %+v", outcome)
			}
			continue
		}

		if outcome.Err != nil {
			t.Fatalf("Unexpected error for %s: %v", outcome.Candidate, outcome.Err)
		}

		if outcome.Response.StatusCode != http.StatusOK {
			t.Fatalf("Expected %d, got %d", http.StatusOK, outcome.Response.StatusCode)
		}
	}
}

func TestDispatcherReturnsSourceError(t *testing.T) {
	readErr := errors.New("read failed")
	config := Config{URL: "http://x/", Workers: 2, Logger: testLogger(t)}
	dispatcher := NewDispatcher(config, testClient(&slowTransport{}))

	source := &sliceSource{words: []string{"admin"}, err: readErr}
	results, errs := dispatcher.Dispatch(context.Background(), source)
	outcomes, err := collect(t, results, errs)
	if !errors.Is(err, readErr) {
		t.Fatalf("Expected %v, got %v", readErr, err)
	}

	if len(outcomes) != 1 {
		t.Fatalf("Expected requests sent before the error to complete, got %d outcomes", len(outcomes))
	}
}

func TestDispatcherAddsTrailingSlash(t *testing.T) {
	config := Config{URL: "http://x", Workers: 1, AddSlash: true, Logger: testLogger(t)}
	dispatcher := NewDispatcher(config, testClient(&slowTransport{}))

	results, errs := dispatcher.Dispatch(context.Background(), &sliceSource{words: []string{"admin"}})
	outcomes, err := collect(t, results, errs)
	if err != nil {
		t.Fatal(err)
	}

	if outcomes[0].URL != "http://x/admin/" {
		t.Fatalf("Expected %s, got %s", "http://x/admin/", outcomes[0].URL)
	}
}

func TestDispatcherStopsWhenContextCancelled(t *testing.T) {
	config := Config{URL: "http://x/", Workers: 1, RateLimit: 1, Logger: testLogger(t)}
	dispatcher := NewDispatcher(config, testClient(&slowTransport{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, errs := dispatcher.Dispatch(ctx, &sliceSource{words: []string{"admin", "login"}})
	_, err := collect(t, results, errs)
	if err == nil {
		t.Fatal("expected error")
	}
}
