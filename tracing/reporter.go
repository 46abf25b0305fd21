package tracing

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aalemi-dev/tracekit/logger"
	"github.com/aalemi-dev/tracekit/observability"
)

// Reporter is the asynchronous export adapter between span recording and the
// sender. Report enqueues into a bounded buffer and returns immediately; a
// single background goroutine drains the buffer and delivers batches through
// the sender.
//
// Backpressure policy: when the buffer is full, the newest spans are dropped
// rather than blocking the caller. Tracing must never add latency or failure
// risk to the primary data path, so transport errors are logged and observed
// but never propagated to the recording goroutines.
type Reporter struct {
	sender        Sender
	batchSize     int
	flushInterval time.Duration
	sendTimeout   time.Duration
	log           logger.Logger
	observer      observability.Observer

	queue   chan []byte
	flushCh chan chan struct{}
	done    chan struct{}

	// dropped counts spans discarded since the last delivery; surfaced in a
	// single warning per drain cycle instead of one log line per span.
	dropped      atomic.Uint64
	droppedTotal atomic.Uint64

	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// newReporter starts the background drain goroutine.
func newReporter(sender Sender, opts *buildOptions) *Reporter {
	r := &Reporter{
		sender:        sender,
		batchSize:     opts.batchSize,
		flushInterval: opts.flushInterval,
		sendTimeout:   opts.sendTimeout,
		log:           opts.log,
		observer:      opts.observer,
		queue:         make(chan []byte, opts.queueCapacity),
		flushCh:       make(chan chan struct{}),
		done:          make(chan struct{}),
	}
	r.wg.Add(1)
	go r.loop()
	return r
}

// Report enqueues one encoded span for delivery. Never blocks: when the
// buffer is full the span is dropped and counted.
func (r *Reporter) Report(encoded []byte) {
	r.mu.RLock()
	closed := r.closed
	r.mu.RUnlock()
	if closed {
		return
	}

	select {
	case r.queue <- encoded:
		r.observeOperation("report", 0, nil, int64(len(encoded)))
	default:
		r.dropped.Add(1)
		r.droppedTotal.Add(1)
		r.observeOperation("drop", 0, nil, 1)
	}
}

// Dropped returns the total number of spans discarded because the buffer
// was full.
func (r *Reporter) Dropped() uint64 {
	return r.droppedTotal.Load()
}

// Flush delivers everything currently buffered and waits for the delivery to
// finish or ctx to expire.
func (r *Reporter) Flush(ctx context.Context) error {
	ack := make(chan struct{})
	select {
	case r.flushCh <- ack:
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-ack:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the background goroutine after a final drain, then closes the
// sender. Safe to call more than once.
func (r *Reporter) Close(ctx context.Context) error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	r.closeOnce.Do(func() { close(r.done) })

	finished := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(finished)
	}()
	select {
	case <-finished:
	case <-ctx.Done():
		return ctx.Err()
	}
	return r.sender.Close()
}

// loop is the single consumer of the queue. It accumulates spans into a
// batch and delivers when the batch is full, on the flush interval, on an
// explicit Flush, and once more on shutdown.
func (r *Reporter) loop() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.flushInterval)
	defer ticker.Stop()

	batch := make([][]byte, 0, r.batchSize)

	for {
		select {
		case span := <-r.queue:
			batch = append(batch, span)
			if len(batch) >= r.batchSize {
				r.send(batch)
				batch = batch[:0]
			}

		case <-ticker.C:
			if len(batch) > 0 {
				r.send(batch)
				batch = batch[:0]
			}

		case ack := <-r.flushCh:
			batch = r.drain(batch)
			if len(batch) > 0 {
				r.send(batch)
				batch = batch[:0]
			}
			close(ack)

		case <-r.done:
			batch = r.drain(batch)
			if len(batch) > 0 {
				r.send(batch)
			}
			return
		}
	}
}

// drain moves everything currently queued into batch without blocking,
// delivering intermediate full batches along the way.
func (r *Reporter) drain(batch [][]byte) [][]byte {
	for {
		select {
		case span := <-r.queue:
			batch = append(batch, span)
			if len(batch) >= r.batchSize {
				r.send(batch)
				batch = batch[:0]
			}
		default:
			return batch
		}
	}
}

// send delivers one batch through the sender. Errors stay on this path.
func (r *Reporter) send(batch [][]byte) {
	ctx, cancel := context.WithTimeout(context.Background(), r.sendTimeout)
	defer cancel()

	start := time.Now()
	err := r.sender.Send(ctx, batch)
	r.observeOperation("send", time.Since(start), err, int64(len(batch)))

	if err != nil && r.log != nil {
		r.log.Error("failed to deliver span batch", err, map[string]interface{}{
			"batch_size": len(batch),
		})
	}

	if dropped := r.dropped.Swap(0); dropped > 0 && r.log != nil {
		r.log.Warn("spans dropped, reporter queue full", nil, map[string]interface{}{
			"dropped": dropped,
		})
	}
}
