package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vos-crm/crm/internal/crm/address"
	"github.com/vos-crm/crm/internal/crm/service"
	"github.com/vos-crm/crm/pkg/httpx"
	"github.com/vos-crm/crm/pkg/slogx"
)

// Error codes used in ErrorResponse.Error.
const (
	codeInvalidRequest     = "invalid_request"
	codeInvalidCredentials = "invalid_credentials"
	codeForbidden          = "forbidden"
	codeNotFound           = "not_found"
	codeConflict           = "conflict"
	codeGone               = "gone"
	codeTooLarge           = "file_too_large"
	codeUpstream           = "upstream_error"
	codeInternal           = "internal_error"
)

// writeServiceError translates a service error into the API status codes.
// Anything unrecognised is logged and answered with a generic 500; msg is
// the log message for that case.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, httpx.ErrBadJSON):
		httpx.WriteError(w, http.StatusBadRequest, codeInvalidRequest, "Invalid JSON body")
	case errors.Is(err, service.ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, codeInvalidRequest, service.Message(err))
	case errors.Is(err, service.ErrSelfDemotion):
		httpx.WriteError(w, http.StatusBadRequest, codeInvalidRequest, err.Error())

	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, codeInvalidCredentials, "Invalid email or password")
	case errors.Is(err, service.ErrWrongPassword):
		httpx.WriteError(w, http.StatusUnauthorized, codeInvalidCredentials, "Current password is incorrect")

	case errors.Is(err, service.ErrForbidden):
		httpx.WriteError(w, http.StatusForbidden, codeForbidden, "You are not allowed to do this")

	case errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrDocumentNotFound),
		errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, service.ErrNoteNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, address.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, codeNotFound, capitalize(err.Error()))

	case errors.Is(err, service.ErrCustomerExists),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrStageInUse):
		httpx.WriteError(w, http.StatusConflict, codeConflict, capitalize(err.Error()))

	case errors.Is(err, service.ErrInviteGone):
		httpx.WriteError(w, http.StatusGone, codeGone, "Invite is invalid, already used or expired")
	case errors.Is(err, service.ErrFileGone):
		httpx.WriteError(w, http.StatusGone, codeGone, "File is no longer available")

	case errors.Is(err, service.ErrFileTooLarge):
		httpx.WriteError(w, http.StatusRequestEntityTooLarge, codeTooLarge, "File exceeds the upload limit")

	case errors.Is(err, service.ErrMailFailed):
		httpx.WriteError(w, http.StatusBadGateway, codeUpstream, "Invite mail could not be sent")
	case errors.Is(err, address.ErrUpstream):
		httpx.WriteError(w, http.StatusBadGateway, codeUpstream, "Address lookup service unavailable")

	default:
		slogx.FromContext(r.Context()).Error(msg, slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, codeInternal, "Internal server error")
	}
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	httpx.WriteError(w, http.StatusBadRequest, codeInvalidRequest, msg)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}
