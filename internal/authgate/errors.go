package authgate

import "errors"

// ErrMalformedCode indicates a submission that is not a 4-digit code.
var ErrMalformedCode = errors.New("malformed access code")
