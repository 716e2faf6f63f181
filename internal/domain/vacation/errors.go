package vacation

import "errors"

var (
	ErrRequestNotFound         = errors.New("vacation request not found")
	ErrRequestAlreadyProcessed = errors.New("vacation request already processed")
	ErrInvalidStatusTransition = errors.New("invalid vacation status transition")
	ErrInvalidDateRange        = errors.New("vacation end date must not be before start date")
)
