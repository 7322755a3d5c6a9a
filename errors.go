package cidrset

import "errors"

// Error kinds per the error-handling design: InvalidInput, LimitExceeded,
// IOFailure, and ParseTail. ParseTail is non-fatal: the JSON reader returns
// it alongside whatever it parsed before the tail broke, rather than
// discarding that partial result.
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrLimitExceeded  = errors.New("limit exceeded")
	ErrIOFailure      = errors.New("i/o failure")
	ErrParseTail      = errors.New("malformed trailing data")
	ErrUnsupportedLen = errors.New("target length must be >= source length")
)
