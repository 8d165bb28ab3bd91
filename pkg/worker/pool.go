package worker

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

var (
	ErrPoolClosed = errors.New("pool is closed")
)

// Pool limits the number of jobs running at the same time.
type Pool struct {
	limit   int
	tickets chan int
	running atomic.Int32
	closed  atomic.Bool
}

// New creates a pool running at most limit jobs at once
func New(limit int) *Pool {
	if limit <= 0 {
		limit = 10
	}

	p := &Pool{
		limit:   limit,
		tickets: make(chan int, limit),
	}

	for i := 0; i < limit; i++ {
		p.tickets <- i
	}

	return p
}

// Go runs job on the pool, blocking until a slot is free or ctx is done.
// A panicking job is recovered and logged so the slot is always returned.
func (p *Pool) Go(ctx context.Context, job func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var ticket int
	select {
	case <-ctx.Done():
		return ctx.Err()
	case t, ok := <-p.tickets:
		if !ok {
			return ErrPoolClosed
		}
		ticket = t
	}

	p.running.Add(1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Int("ticket", ticket).Msg("worker job panicked")
			}
			p.running.Add(-1)
			p.tickets <- ticket
		}()
		if job != nil {
			job()
		}
	}()

	return nil
}

// Wait waits for all running jobs and closes the pool.
func (p *Pool) Wait() {
	if !p.closed.CompareAndSwap(false, true) {
		return
	}
	for i := 0; i < p.limit; i++ {
		<-p.tickets
	}
	close(p.tickets)
}

// Running returns the number of jobs in progress
func (p *Pool) Running() int {
	return int(p.running.Load())
}

// Limit returns the maximum number of concurrent jobs
func (p *Pool) Limit() int {
	return p.limit
}
