package domain

import "errors"

// ErrNotFound is returned when the requested resource does not exist, either
// in the compiled-in catalog (area, node, day, event) or in the database
// (stay, checklist item, cached suggestion).
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing name, check-out not after check-in).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrDateParse is returned when a calendar date is not in the fixed
// YYYY-MM-DD form. Handlers should map this to HTTP 400.
var ErrDateParse = errors.New("invalid date")

// ErrConflict is returned when a new or updated hotel stay would overlap a
// stay that is already stored. Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrDataInconsistency marks stored data that breaks an invariant the
// system tolerates but reports, such as two stays covering the same night.
var ErrDataInconsistency = errors.New("data inconsistency")

// ErrUnsupportedVersion is returned when a backup document was written by a
// newer schema than this server understands.
var ErrUnsupportedVersion = errors.New("unsupported schema version")

// ErrAuthRequired is returned when the generative-text credential is missing
// or rejected by the upstream API. It is never retried.
var ErrAuthRequired = errors.New("auth required")

// ErrUpstream is returned when the generative-text API fails for a reason
// other than authentication.
var ErrUpstream = errors.New("upstream error")

// ErrEmptyResponse is returned when the generative-text API answers
// successfully but without any text.
var ErrEmptyResponse = errors.New("empty response")
