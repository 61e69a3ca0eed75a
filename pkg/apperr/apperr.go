// Package apperr defines the error taxonomy shared by usecases and the HTTP
// layer. Usecases return these sentinels (possibly wrapped); handlers map
// them to a status code in one place instead of switching ad hoc.
package apperr

import (
	"errors"
	"net/http"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrBlogNotFound       = errors.New("blog not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrNotAuthorized      = errors.New("account is not the author of the resource")

	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenSignature = errors.New("token signature is invalid")
	ErrTokenExpired   = errors.New("token is expired")
)

// Status maps a usecase error to the HTTP status the boundary reports.
// Token errors are collapsed to 401 regardless of which check failed.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrBlogNotFound),
		errors.Is(err, ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrTokenMalformed),
		errors.Is(err, ErrTokenSignature),
		errors.Is(err, ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUsernameTaken):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
