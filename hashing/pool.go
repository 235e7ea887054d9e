package hashing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// PoolOptions configures a [Pool].
type PoolOptions struct {
	// MaxConcurrent bounds the number of hashes running at once.
	// Default (0): runtime.GOMAXPROCS(0).
	MaxConcurrent int

	// SlowThreshold makes the pool log, at debug level, any operation that
	// takes longer. Zero disables the log line.
	SlowThreshold time.Duration

	// Logger receives the pool's log lines. Default: a logger that discards
	// everything.
	Logger logrus.FieldLogger

	// Metrics receives counters and timings. Default: none.
	Metrics *PoolMetrics
}

// DefaultPoolOptions returns PoolOptions sized to the available CPUs with a
// 1s slow-operation threshold.
func DefaultPoolOptions() PoolOptions {
	return PoolOptions{
		MaxConcurrent: runtime.GOMAXPROCS(0),
		SlowThreshold: time.Second,
	}
}

// Pool runs a [Hasher] off the caller's goroutine with a bound on how many
// hashes run at once.
//
// bcrypt cannot be interrupted once started. When ctx is cancelled Pool
// stops waiting and returns ctx.Err(), but the hash itself runs to
// completion in the background and keeps its slot until it does, so the
// bound reflects real CPU use.
type Pool struct {
	hasher  Hasher
	sem     *semaphore.Weighted
	limit   int
	slow    time.Duration
	log     logrus.FieldLogger
	metrics *PoolMetrics
}

// NewPool wraps h. It returns [ErrNilHasher] for a nil h and
// [ErrInvalidOption] for a negative MaxConcurrent.
func NewPool(h Hasher, opts PoolOptions) (*Pool, error) {
	if h == nil {
		return nil, ErrNilHasher
	}
	if opts.MaxConcurrent < 0 {
		return nil, fmt.Errorf("%w: pool size %d must not be negative", ErrInvalidOption, opts.MaxConcurrent)
	}
	if opts.MaxConcurrent == 0 {
		opts.MaxConcurrent = runtime.GOMAXPROCS(0)
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Logger = l
	}
	return &Pool{
		hasher:  h,
		sem:     semaphore.NewWeighted(int64(opts.MaxConcurrent)),
		limit:   opts.MaxConcurrent,
		slow:    opts.SlowThreshold,
		log:     opts.Logger.WithField("driver", h.Driver()),
		metrics: opts.Metrics,
	}, nil
}

// Hasher returns the wrapped hasher.
func (p *Pool) Hasher() Hasher { return p.hasher }

// Make hashes password on a pool worker.
func (p *Pool) Make(ctx context.Context, password string) (string, error) {
	hash, err := dispatch(ctx, p, opMake, func() (string, error) {
		return p.hasher.Make(password)
	})
	switch {
	case isCanceled(err):
		p.metrics.count(opMake, resultCanceled)
	case err != nil:
		p.metrics.count(opMake, resultError)
		p.log.WithError(err).Warn("hash failed")
	default:
		p.metrics.count(opMake, resultOK)
	}
	return hash, err
}

// Check verifies password against hash on a pool worker.
func (p *Pool) Check(ctx context.Context, password, hash string) (bool, error) {
	ok, err := dispatch(ctx, p, opCheck, func() (bool, error) {
		return p.hasher.Check(password, hash)
	})
	switch {
	case isCanceled(err):
		p.metrics.count(opCheck, resultCanceled)
	case err != nil:
		p.metrics.count(opCheck, resultError)
		p.log.WithError(err).Warn("verify failed")
	case !ok:
		p.metrics.count(opCheck, resultMismatch)
	default:
		p.metrics.count(opCheck, resultOK)
	}
	return ok, err
}

// MakeAll hashes every password, at most MaxConcurrent at a time, and
// returns the hashes in input order. The first error cancels the rest.
func (p *Pool) MakeAll(ctx context.Context, passwords []string) ([]string, error) {
	hashes := make([]string, len(passwords))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.limit)
	for i, pw := range passwords {
		i, pw := i, pw
		g.Go(func() error {
			h, err := p.Make(gctx, pw)
			if err != nil {
				return fmt.Errorf("password %d: %w", i, err)
			}
			hashes[i] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return hashes, nil
}

type outcome[T any] struct {
	val T
	err error
}

// dispatch runs fn once a slot is free and waits for it or for ctx.
func dispatch[T any](ctx context.Context, p *Pool, op string, fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return zero, err
	}

	done := make(chan outcome[T], 1)
	start := time.Now()
	p.metrics.started()
	go func() {
		defer p.sem.Release(1)
		defer p.metrics.finished()
		v, err := fn()
		done <- outcome[T]{v, err}
	}()

	select {
	case o := <-done:
		elapsed := time.Since(start)
		p.metrics.observe(op, elapsed)
		if p.slow > 0 && elapsed > p.slow {
			p.log.WithFields(logrus.Fields{"op": op, "elapsed": elapsed}).Debug("slow hash operation")
		}
		return o.val, o.err
	case <-ctx.Done():
		p.log.WithField("op", op).Debug("caller gave up; hash continues in background")
		return zero, ctx.Err()
	}
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
