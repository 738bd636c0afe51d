package service

import "errors"

// ErrValidation marks rejected input: malformed line items, missing header
// fields, an empty draft on submit, or an illegal status transition. Handlers
// map it to a 400 response.
var ErrValidation = errors.New("validation failed")
