package service

import "errors"

// Common service-layer errors.
var (
	// ErrInvalidCredentials is returned when login fails because the
	// email is unknown or the password does not match. The two cases are
	// deliberately indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnknownTopic is returned when an operation references a topic id
	// that is not in the catalog.
	ErrUnknownTopic = errors.New("unknown topic")

	// ErrNotEligible is returned when mastery is declared for a subject
	// whose topics are not all completed, or which has no topics at all.
	ErrNotEligible = errors.New("not eligible for mastery")

	// ErrAlreadyMastered is returned when mastery is declared for a
	// subject the user has already mastered.
	ErrAlreadyMastered = errors.New("subject already mastered")

	// ErrMediaDisabled is returned when a media upload is requested but
	// no uploader is configured.
	ErrMediaDisabled = errors.New("media uploads are not configured")
)
