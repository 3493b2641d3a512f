// Package services defines the business logic for batch chat messages and
// their visibility scoping. This file centralizes common service-level error
// values so that they can be consistently returned by service methods and
// checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the
// handler layer.
package services

import "errors"

var (
	// ErrEmptyText is returned when a create or update request carries no
	// message text after trimming.
	ErrEmptyText = errors.New("text is empty")

	// ErrMissingBatch is returned when a create request does not name the
	// owning batch.
	ErrMissingBatch = errors.New("batch_id is required")

	// ErrMessageNotFound indicates that the targeted message does not exist.
	// Update and delete report this instead of succeeding silently with zero
	// affected rows.
	ErrMessageNotFound = errors.New("message not found")
)
