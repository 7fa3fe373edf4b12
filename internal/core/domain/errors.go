package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity or stored blob does not exist.
	ErrNotFound = errors.New("not found")

	// ErrIntakeInProgress indicates a scan is already running or a draft
	// is awaiting confirmation. Only one intake flow runs at a time.
	ErrIntakeInProgress = errors.New("intake already in progress")

	// ErrIntakeNotActive indicates Confirm was called with no draft pending.
	ErrIntakeNotActive = errors.New("no intake awaiting confirmation")

	// ErrCaptureCancelled indicates the user dismissed the capture step.
	ErrCaptureCancelled = errors.New("capture cancelled")

	// ErrCameraUnavailable indicates no camera source could be opened.
	ErrCameraUnavailable = errors.New("camera unavailable")
)
