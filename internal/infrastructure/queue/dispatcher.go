package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/fortune-labs/task-tracker/internal/api/metrics"
	"github.com/fortune-labs/task-tracker/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256

	// processTimeout bounds a single audit insert so a hung store cannot
	// block shutdown drain indefinitely.
	processTimeout = 5 * time.Second
)

// Dispatcher routes auth events to a fixed set of workers using consistent
// hashing on the user id, guaranteeing per-user event ordering in the
// audit trail. Stop drains every buffered event before returning.
type Dispatcher struct {
	workers []chan ports.AuthEventInput
	service ports.AuditService
	log     zerolog.Logger

	wg      sync.WaitGroup
	mu      sync.RWMutex
	stopped bool
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.AuditService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.AuthEventInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.AuthEventInput, channelBuffer)
	}
	return d
}

// Start launches the worker goroutines. They run until Stop closes their
// channels.
func (d *Dispatcher) Start() {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(i, ch)
	}
}

// Stop closes the worker channels and blocks until every buffered event
// has been processed. Events enqueued after Stop are dropped and counted.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	d.mu.Unlock()

	for _, ch := range d.workers {
		close(ch)
	}
	d.wg.Wait()
}

// Enqueue hands an event to the worker responsible for its user id. It
// never blocks the calling request: when the worker's buffer is full the
// event is dropped and counted, since losing an audit entry must not fail
// a sign-in.
func (d *Dispatcher) Enqueue(event ports.AuthEventInput) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		metrics.AuditEventsErrorsTotal.WithLabelValues("stopped").Inc()
		d.log.Warn().
			Str("user_id", event.UserID).
			Str("kind", event.Kind).
			Msg("dispatcher stopped, event dropped")
		return
	}

	idx := d.shardIndex(event.UserID)
	select {
	case d.workers[idx] <- event:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.AuditEventsErrorsTotal.WithLabelValues("queue_full").Inc()
		d.log.Warn().
			Str("user_id", event.UserID).
			Str("kind", event.Kind).
			Int("worker_id", idx).
			Msg("audit queue full, event dropped")
	}
}

// shardIndex maps a user id deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(id int, ch <-chan ports.AuthEventInput) {
	defer d.wg.Done()

	worker := strconv.Itoa(id)
	for event := range ch {
		metrics.AuditQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))

		ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
		err := d.service.Process(ctx, event)
		cancel()
		if err != nil {
			metrics.AuditEventsErrorsTotal.WithLabelValues("insert_failed").Inc()
			d.log.Error().Err(err).
				Str("user_id", event.UserID).
				Str("kind", event.Kind).
				Int("worker_id", id).
				Msg("auth event processing failed")
			continue
		}
		metrics.AuditEventsProcessedTotal.WithLabelValues(event.Kind).Inc()
	}
	metrics.AuditQueueDepth.WithLabelValues(worker).Set(0)
}
