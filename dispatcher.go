package httpbuster

import (
	"context"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Outcome is the result of requesting a single candidate.
// Exactly one of Response and Err is set.
type Outcome struct {
	Candidate string
	URL       string
	Response  *Response
	Err       error
}

// Dispatcher requests candidates concurrently, keeping at most Config.Workers requests in flight.
// It uses the producer-consumer pattern: one goroutine reads the candidate source and hands candidates to a fixed pool of workers.
type Dispatcher struct {
	Config
	client  *Client
	limiter *rate.Limiter
}

// NewDispatcher creates a Dispatcher that sends its requests through client.
func NewDispatcher(config Config, client *Client) *Dispatcher {
	dispatcher := &Dispatcher{Config: config, client: client}
	if config.RateLimit > 0 {
		dispatcher.limiter = rate.NewLimiter(rate.Limit(config.RateLimit), 1)
	}
	return dispatcher
}

// Dispatch starts requesting every candidate from source and returns outcomes in the order requests complete.
// The outcomes channel is closed once every request has finished.
// Callers must drain outcomes before reading the error channel, which carries the source's read error, if any.
func (d *Dispatcher) Dispatch(ctx context.Context, source CandidateSource) (<-chan *Outcome, <-chan error) {
	workers := d.Workers
	if workers < 1 {
		workers = 1
	}

	outcomes := make(chan *Outcome, workers)
	errs := make(chan error, 1)

	go func() {
		defer close(errs)
		logger := d.logger()

		var waitGroup sync.WaitGroup
		pool, err := ants.NewPoolWithFunc(workers, func(payload interface{}) {
			defer waitGroup.Done()
			outcomes <- d.request(ctx, payload.(string))
		}, ants.WithLogger(logger), ants.WithPanicHandler(func(p interface{}) {
			logger.WithField("panic", p).Warn("Request worker failed")
		}))
		if err != nil {
			close(outcomes)
			errs <- err
			return
		}

		sourceErr := d.produce(ctx, source, pool, &waitGroup, logger)

		waitGroup.Wait()
		pool.Release()
		close(outcomes)

		if sourceErr != nil {
			errs <- sourceErr
		}
	}()

	return outcomes, errs
}

// produce submits candidates to the pool until the source is exhausted.
// Invoke blocks while every worker is busy, which is what caps the number of requests in flight.
func (d *Dispatcher) produce(ctx context.Context, source CandidateSource, pool *ants.PoolWithFunc, waitGroup *sync.WaitGroup, logger *logrus.Logger) error {
	for source.Scan() {
		candidate := source.Candidate()

		if err := d.throttle(ctx); err != nil {
			return err
		}

		waitGroup.Add(1)
		if err := pool.Invoke(candidate); err != nil {
			waitGroup.Done()
			logger.WithFields(logrus.Fields{"candidate": candidate, "err": err}).Warn("Unable to schedule request")
		}
	}

	return source.Err()
}

// throttle waits for the rate limiter and request delay before the next request is submitted.
func (d *Dispatcher) throttle(ctx context.Context) error {
	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	if d.RequestDelay > 0 {
		timer := time.NewTimer(d.RequestDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	return ctx.Err()
}

func (d *Dispatcher) request(ctx context.Context, candidate string) *Outcome {
	target := TargetURL(d.URL, candidate, d.AddSlash)
	response, err := d.client.Get(ctx, target)
	return &Outcome{
		Candidate: candidate,
		URL:       target,
		Response:  response,
		Err:       err,
	}
}
