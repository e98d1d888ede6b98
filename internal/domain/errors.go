package domain

import "errors"

var (
	// ErrMissingText is returned when an extraction request carries no text
	ErrMissingText = errors.New("no text provided for extraction")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCompletionFailure is returned when the text-completion service fails
	ErrCompletionFailure = errors.New("text completion request failed")

	// ErrCompletionRateLimited is returned when the completion service rejects
	// the request due to rate limiting
	ErrCompletionRateLimited = errors.New("text completion rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
