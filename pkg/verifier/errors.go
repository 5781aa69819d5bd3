package verifier

import "errors"

var (
	// ErrUnavailable indicates the verifier could not produce a
	// judgment (network failure, timeout, quota, malformed output).
	ErrUnavailable = errors.New("verifier unavailable")

	// ErrRateLimited indicates the local call budget was exhausted.
	ErrRateLimited = errors.New("verifier call budget exhausted")
)
