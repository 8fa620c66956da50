package domain

import "errors"

// Domain errors are compared with errors.Is. Infrastructure failures are
// wrapped by the adapters and never use these values.
var (
	ErrNotFound                  = errors.New("not found")
	ErrInvalidBatchTransition    = errors.New("invalid batch transition")
	ErrInvalidBatchResult        = errors.New("invalid batch result")
	ErrInvalidCampaignTransition = errors.New("invalid campaign status transition")
	ErrInvalidBatchSettings      = errors.New("invalid batch settings")
	ErrUniverseInUse             = errors.New("universe is referenced by active campaigns")
	ErrPassInProgress            = errors.New("scheduling pass already in progress")
)
