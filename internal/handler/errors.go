package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/pkordes/trip-planner/internal/domain"
)

// ErrorDetail is the code/message pair of every error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

func errorBody(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// errorStatuses maps domain sentinels to HTTP responses, checked in order.
// ErrNotFound is handled separately because its message comes from the handler.
var errorStatuses = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrDateParse, http.StatusBadRequest, "invalid_date"},
	{domain.ErrValidation, http.StatusUnprocessableEntity, "validation_error"},
	{domain.ErrConflict, http.StatusConflict, "conflict"},
	{domain.ErrUnsupportedVersion, http.StatusUnprocessableEntity, "unsupported_version"},
	{domain.ErrAuthRequired, http.StatusUnauthorized, "auth_required"},
	{domain.ErrUpstream, http.StatusBadGateway, "upstream_error"},
	{domain.ErrEmptyResponse, http.StatusBadGateway, "empty_response"},
}

// requestError is a malformed request rejected before reaching the service
// layer: a path or query parameter that does not bind, or an unreadable body.
type requestError struct {
	status int
	code   string
	msg    string
}

func (e *requestError) Error() string { return e.msg }

// writeError translates err into a JSON error response.
// notFound is the message used for domain.ErrNotFound, because the handler
// is the layer that knows what was being looked up.
// Anything unrecognised is logged and returned as a bare 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		writeJSON(w, reqErr.status, errorBody(reqErr.code, reqErr.msg))
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorBody("not_found", notFound))
		return
	}
	for _, m := range errorStatuses {
		if errors.Is(err, m.err) {
			writeJSON(w, m.status, errorBody(m.code, unwrapMessage(err)))
			return
		}
	}
	s.log.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	writeJSON(w, http.StatusInternalServerError, errorBody("internal_error", "internal server error"))
}

// sentinelText is the Error() text of each domain sentinel.
var sentinelText = map[string]bool{
	domain.ErrNotFound.Error():           true,
	domain.ErrValidation.Error():         true,
	domain.ErrDateParse.Error():          true,
	domain.ErrConflict.Error():           true,
	domain.ErrDataInconsistency.Error():  true,
	domain.ErrUnsupportedVersion.Error(): true,
	domain.ErrAuthRequired.Error():       true,
	domain.ErrUpstream.Error():           true,
	domain.ErrEmptyResponse.Error():      true,
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.StayService.Create: validation error: name is required" → "name is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for {
		head, rest, ok := strings.Cut(msg, ": ")
		if !ok || !isWrapPrefix(head) {
			return msg
		}
		msg = rest
	}
}

// isWrapPrefix reports whether s is a "pkg.Type.Method" location or a
// sentinel's own text.
func isWrapPrefix(s string) bool {
	if sentinelText[s] {
		return true
	}
	return strings.Contains(s, ".") && !strings.ContainsAny(s, " \"'")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
