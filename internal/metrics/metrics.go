package metrics

import (
	"sync"
	"time"

	"binance-futures-client/internal/logger"
)

const defaultBatchSize = 500

// Tracker collects request latency statistics and logs a summary every
// BatchSize observations.
type Tracker struct {
	mu         sync.Mutex
	minTime    time.Duration
	maxTime    time.Duration
	totalTime  time.Duration
	count      int64
	errors     int64
	batchCount int
	batchSize  int
	startTime  time.Time
}

// Snapshot is a point-in-time copy of the tracker state.
type Snapshot struct {
	Count   int64
	Errors  int64
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Elapsed time.Duration
}

func NewTracker(batchSize int) *Tracker {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Tracker{
		minTime:   time.Duration(1<<63 - 1),
		batchSize: batchSize,
		startTime: time.Now(),
	}
}

// Track records one request of the given endpoint.
func (t *Tracker) Track(endpoint string, duration time.Duration, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.count++
	t.batchCount++
	t.totalTime += duration
	if err != nil {
		t.errors++
	}
	if duration < t.minTime {
		t.minTime = duration
	}
	if duration > t.maxTime {
		t.maxTime = duration
	}

	if t.batchCount >= t.batchSize {
		s := t.snapshotLocked()
		logger.Info("Request Metrics",
			"last_endpoint", endpoint,
			"requests", s.Count,
			"errors", s.Errors,
			"min_ms", s.Min.Milliseconds(),
			"max_ms", s.Max.Milliseconds(),
			"avg_ms", s.Avg.Milliseconds(),
		)
		t.batchCount = 0
	}
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *Tracker) snapshotLocked() Snapshot {
	s := Snapshot{
		Count:   t.count,
		Errors:  t.errors,
		Max:     t.maxTime,
		Elapsed: time.Since(t.startTime),
	}
	if t.count > 0 {
		s.Min = t.minTime
		s.Avg = t.totalTime / time.Duration(t.count)
	}
	return s
}
