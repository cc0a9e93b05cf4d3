// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrProfilePrivate     = errors.New("this profile is private")
	ErrCannotBanAdmin     = errors.New("cannot ban admin users")
)

// Auth errors
var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInvalidToken  = errors.New("invalid token")
	ErrAdminOnly     = errors.New("admin privileges required")
	ErrAccountBanned = errors.New("account is inactive or banned")
)

// Swap request errors
var (
	// ErrSwapNotFound covers both a missing request and a request not in the
	// state the transition requires. The lookup is scoped by id, actor, and
	// expected status, so the two cases are indistinguishable to callers.
	ErrSwapNotFound          = errors.New("swap request not found or already processed")
	ErrSelfSwap              = errors.New("cannot create swap request with yourself")
	ErrProviderNotFound      = errors.New("provider not found or inactive")
	ErrSkillNotOffered       = errors.New("provider does not offer the requested skill")
	ErrDuplicatePending      = errors.New("you already have a pending request for this skill exchange")
	ErrScheduledDateRequired = errors.New("scheduled date is required when accepting a swap request")
)

// Meeting errors
var (
	ErrMeetingNotFound   = errors.New("meeting not found")
	ErrMeetingGeneration = errors.New("failed to generate meeting link")
)

// Rating errors
var (
	ErrCompletedSwapNotFound = errors.New("completed swap request not found")
	ErrAlreadyRated          = errors.New("you have already rated this swap")
	ErrRatingNotFound        = errors.New("rating not found or you are not authorized to update it")
)

// Admin errors
var (
	ErrMessageNotFound = errors.New("platform message not found")
)

// ErrInvalidID marks a malformed ObjectID in a path or body parameter.
var ErrInvalidID = errors.New("invalid id format")
