package plans

import "errors"

var (
	ErrNotFound       = errors.New("plan not found")
	ErrEmptyBatch     = errors.New("batch contains no surveys")
	ErrBatchTooLarge  = errors.New("batch exceeds maximum size")
	ErrProfileMissing = errors.New("profile id is required")
)
