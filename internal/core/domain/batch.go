package domain

import (
	"fmt"
	"time"
)

// BatchStatus is the processing state of a batch.
type BatchStatus string

const (
	BatchPending    BatchStatus = "pending"
	BatchProcessing BatchStatus = "processing"
	BatchCompleted  BatchStatus = "completed"
	BatchFailed     BatchStatus = "failed"
)

// BatchEvent drives a batch from one status to the next.
type BatchEvent string

const (
	BatchEventStart    BatchEvent = "start"
	BatchEventComplete BatchEvent = "complete"
	BatchEventFail     BatchEvent = "fail"
	BatchEventRetry    BatchEvent = "retry"
)

var batchTransitions = map[BatchStatus]map[BatchEvent]BatchStatus{
	BatchPending: {
		BatchEventStart: BatchProcessing,
		BatchEventFail:  BatchFailed,
	},
	BatchProcessing: {
		BatchEventComplete: BatchCompleted,
		BatchEventFail:     BatchFailed,
	},
	BatchFailed: {
		BatchEventRetry: BatchPending,
	},
}

// NextBatchStatus looks up the transition table. It does not know about
// retry budgets; Batch.Fail does.
func NextBatchStatus(from BatchStatus, ev BatchEvent) (BatchStatus, error) {
	if next, ok := batchTransitions[from][ev]; ok {
		return next, nil
	}
	return from, fmt.Errorf("%w: %s on %s", ErrInvalidBatchTransition, ev, from)
}

// Batch is one bounded, dated, numbered unit of campaign work.
// (CampaignID, BatchDate, BatchNumber) is unique.
type Batch struct {
	ID               int64
	CampaignID       int64
	BatchDate        time.Time
	BatchNumber      int
	BatchSize        int
	Status           BatchStatus
	ScheduledAt      time.Time
	StartedAt        *time.Time
	CompletedAt      *time.Time
	TargetsProcessed int
	TargetsContacted int
	TargetsFailed    int
	ErrorMessage     string
	RetryCount       int
	MaxRetries       int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// BatchResult is what a worker reports when a batch finishes.
type BatchResult struct {
	Processed int
	Contacted int
	Failed    int
}

func (b *Batch) apply(ev BatchEvent, now time.Time) error {
	next, err := NextBatchStatus(b.Status, ev)
	if err != nil {
		return err
	}
	b.Status = next
	b.UpdatedAt = now
	return nil
}

// Start moves a pending batch to processing.
func (b *Batch) Start(now time.Time) error {
	if err := b.apply(BatchEventStart, now); err != nil {
		return err
	}
	b.StartedAt = &now
	return nil
}

// Complete records the worker's counts and finishes the batch.
func (b *Batch) Complete(now time.Time, res BatchResult) error {
	if res.Processed < 0 || res.Contacted < 0 || res.Failed < 0 {
		return fmt.Errorf("%w: negative count", ErrInvalidBatchResult)
	}
	if err := b.apply(BatchEventComplete, now); err != nil {
		return err
	}
	b.CompletedAt = &now
	b.TargetsProcessed = res.Processed
	b.TargetsContacted = res.Contacted
	b.TargetsFailed = res.Failed
	b.ErrorMessage = ""
	return nil
}

// CanRetry reports whether a failure would put the batch back to pending.
func (b *Batch) CanRetry() bool {
	return b.RetryCount < min(max(b.MaxRetries, 0), MaxBatchRetries)
}

// Fail records reason and, while the retry budget lasts, reschedules the
// batch at now + backoff*retryCount. The returned bool is true when the
// batch went back to pending.
func (b *Batch) Fail(now time.Time, reason string, backoff time.Duration) (bool, error) {
	if err := b.apply(BatchEventFail, now); err != nil {
		return false, err
	}
	b.ErrorMessage = reason
	b.CompletedAt = &now
	if !b.CanRetry() {
		return false, nil
	}
	if err := b.apply(BatchEventRetry, now); err != nil {
		return false, err
	}
	b.RetryCount++
	b.ScheduledAt = now.Add(backoff * time.Duration(b.RetryCount))
	b.StartedAt = nil
	b.CompletedAt = nil
	return true, nil
}
