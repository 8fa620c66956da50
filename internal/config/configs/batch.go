package configs

import "time"

// Batch configures batch retries and worker polling.
type Batch struct {
	// RetryBackoff is multiplied by the retry count when a failed batch is
	// rescheduled.
	RetryBackoff time.Duration `env:"RETRY_BACKOFF" envDefault:"5m"`
	// PendingLimit is the default page size for pending batch queries.
	PendingLimit int `env:"PENDING_LIMIT" envDefault:"100"`
}
