package store

import "errors"

// The original UI swallowed these conditions as silent no-ops; the store
// boundary surfaces them instead. A miss never touches state.
var (
	ErrTeacherNotFound   = errors.New("teacher not found")
	ErrSlotNotFound      = errors.New("availability slot not found")
	ErrSlotUnavailable   = errors.New("slot is no longer available")
	ErrClassNotFound     = errors.New("class not found")
	ErrClassNotCompleted = errors.New("class is not completed yet")
	ErrAlreadyReviewed   = errors.New("class already has a review")
	ErrInvalidTransition = errors.New("invalid class status transition")
)
