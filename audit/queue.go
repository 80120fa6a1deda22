package audit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"kaudit/metrics"
	"kaudit/ocsf"
)

var (
	ErrQueueRunning    = errors.New("audit queue is already running")
	ErrQueueNotRunning = errors.New("audit queue is not running")
)

// QueueConfig sizes the coalescing buffer and the background flush cadence.
type QueueConfig struct {
	// Capacity is the maximum number of coalesced entries held before the
	// oldest entry is serialized out to make room.
	Capacity int
	// FlushInterval is the period of the background flush loop; zero
	// disables the loop and leaves flushing to the caller.
	FlushInterval time.Duration
}

// DefaultQueueConfig mirrors the buffer sizing used on the broker shards.
func DefaultQueueConfig() QueueConfig {
	return QueueConfig{
		Capacity:      1024,
		FlushInterval: 500 * time.Millisecond,
	}
}

// Queue is the deduplicating audit buffer for one shard. All methods are
// safe for concurrent use; the mutex stands in for the shard-locality the
// hosting runtime provides on the broker.
type Queue struct {
	mu      sync.Mutex
	entries *lru.Cache[uint64, ocsf.Event]
	// evicted holds records serialized out of the buffer (capacity
	// eviction or drain) awaiting the next ship.
	evicted [][]byte

	sink     Sink
	logger   *zap.SugaredLogger
	dropWarn *rate.Limiter

	flushInterval time.Duration
	stopCh        chan struct{}
	wg            sync.WaitGroup
	running       bool
}

// NewQueue creates an audit queue shipping to sink. A nil logger defaults
// to a no-op logger.
func NewQueue(cfg QueueConfig, sink Sink, logger *zap.SugaredLogger) (*Queue, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if cfg.Capacity <= 0 {
		return nil, fmt.Errorf("invalid queue capacity %d", cfg.Capacity)
	}

	q := &Queue{
		sink:          sink,
		logger:        logger,
		dropWarn:      rate.NewLimiter(rate.Every(10*time.Second), 1),
		flushInterval: cfg.FlushInterval,
		stopCh:        make(chan struct{}),
	}

	entries, err := lru.NewWithEvict[uint64, ocsf.Event](cfg.Capacity, q.onEvict)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit buffer: %w", err)
	}
	q.entries = entries
	return q, nil
}

// onEvict serializes an entry leaving the buffer. Runs under q.mu: the lru
// only mutates inside Submit and drain, both of which hold the lock.
func (q *Queue) onEvict(_ uint64, ev ocsf.Event) {
	record, err := ocsf.Marshal(ev)
	if err != nil {
		// Cannot happen for constructed events; keep the counter honest.
		q.logger.Errorw("Failed to serialize audit event", "error", err)
		metrics.AuditEventsDropped.Inc()
		return
	}
	q.evicted = append(q.evicted, record)
}

// Submit offers an event to the queue. If an entry with the same key is
// already buffered the event is folded into it via Increment and Submit
// reports true; otherwise the event is inserted and Submit reports false.
// Submissions are observed in order: probing never disturbs the buffer's
// insertion order, so Flush drains oldest-first.
func (q *Queue) Submit(ev ocsf.Event) bool {
	class := classLabel(ev)
	metrics.AuditEventsSubmitted.WithLabelValues(class).Inc()

	q.mu.Lock()
	defer q.mu.Unlock()

	key := ev.Key()
	if existing, ok := q.entries.Peek(key); ok {
		existing.Increment(ev.Timestamp())
		metrics.AuditEventsCoalesced.WithLabelValues(class).Inc()
		return true
	}

	q.entries.Add(key, ev)
	metrics.AuditQueueEntries.Set(float64(q.entries.Len()))
	return false
}

// Len returns the number of coalesced entries currently buffered.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.entries.Len()
}

// drain serializes every buffered entry, oldest first, and returns the
// pending records. Capacity-evicted records precede the drained entries:
// they left the buffer earlier.
func (q *Queue) drain() [][]byte {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.entries.Len() > 0 {
		q.entries.RemoveOldest()
	}
	records := q.evicted
	q.evicted = nil
	metrics.AuditQueueEntries.Set(0)
	return records
}

// Flush drains the queue and ships the records to the sink. A sink failure
// drops the batch: the emitter never blocks or aborts the request pipeline
// on audit backpressure.
func (q *Queue) Flush(ctx context.Context) error {
	records := q.drain()
	if len(records) == 0 {
		return nil
	}

	start := time.Now()
	err := q.sink.Ship(ctx, records)
	metrics.AuditFlushDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.AuditEventsDropped.Add(float64(len(records)))
		if q.dropWarn.Allow() {
			q.logger.Warnw("Dropped audit records after sink failure",
				"error", err,
				"records", len(records))
		}
		return fmt.Errorf("failed to ship audit batch: %w", err)
	}

	metrics.AuditEventsShipped.Add(float64(len(records)))
	return nil
}

// Start launches the background flush loop.
func (q *Queue) Start(ctx context.Context) error {
	q.mu.Lock()
	if q.running {
		q.mu.Unlock()
		return ErrQueueRunning
	}
	if q.flushInterval <= 0 {
		q.mu.Unlock()
		return fmt.Errorf("invalid flush interval %v", q.flushInterval)
	}
	q.running = true
	q.mu.Unlock()

	q.wg.Add(1)
	go q.flushLoop(ctx)
	return nil
}

func (q *Queue) flushLoop(ctx context.Context) {
	defer q.wg.Done()

	ticker := time.NewTicker(q.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// Failures are already counted and logged inside Flush.
			_ = q.Flush(ctx)
		case <-ctx.Done():
			return
		case <-q.stopCh:
			return
		}
	}
}

// Stop halts the flush loop and performs a final synchronous flush.
func (q *Queue) Stop(ctx context.Context) error {
	q.mu.Lock()
	if !q.running {
		q.mu.Unlock()
		return ErrQueueNotRunning
	}
	q.running = false
	q.mu.Unlock()

	close(q.stopCh)
	q.wg.Wait()
	return q.Flush(ctx)
}

// classLabel maps an event to its metrics label.
func classLabel(ev ocsf.Event) string {
	switch ev.(type) {
	case *ocsf.APIActivity:
		return "api_activity"
	case *ocsf.Authentication:
		return "authentication"
	case *ocsf.ApplicationLifecycle:
		return "application_lifecycle"
	default:
		return "unknown"
	}
}
