package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/inkwell/internal/blog/service"
	"github.com/aussiebroadwan/inkwell/pkg/blogsdk"
	"github.com/aussiebroadwan/inkwell/pkg/slogx"
)

// writeError maps a service error onto the wire. Unclassified errors are
// logged and reported as server_error without detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var se *service.Error
	if !errors.As(err, &se) {
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		blogsdk.ErrServerError.WriteError(w)
		return
	}

	switch se.Kind {
	case service.KindInvalid:
		if len(se.Fields) > 0 {
			blogsdk.WriteValidationError(w, se.Fields)
			return
		}
		blogsdk.ErrInvalidRequest.WithDescription(se.Message).WriteError(w)

	case service.KindUnauthenticated:
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			blogsdk.ErrInvalidCredentials.WriteError(w)
		case errors.Is(err, service.ErrBootstrapUnauthorized):
			blogsdk.ErrUnauthenticated.WithDescription(se.Message).WriteError(w)
		default:
			blogsdk.ErrUnauthenticated.WriteError(w)
		}

	case service.KindForbidden:
		blogsdk.ErrForbidden.WithDescription(se.Message).WriteError(w)

	case service.KindNotFound:
		blogsdk.ErrNotFound.WithDescription(se.Message).WriteError(w)

	case service.KindConflict:
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			blogsdk.ErrUsernameTaken.WriteError(w)
		case errors.Is(err, service.ErrEmailTaken):
			blogsdk.ErrEmailTaken.WriteError(w)
		case errors.Is(err, service.ErrPhoneTaken):
			blogsdk.ErrPhoneTaken.WriteError(w)
		default:
			blogsdk.ErrConflict.WithDescription(se.Message).WriteError(w)
		}

	default:
		slogx.FromContext(r.Context()).Error("unmapped service error", slog.Any("error", err))
		blogsdk.ErrServerError.WriteError(w)
	}
}

// invalidBody reports a body that could not be decoded.
func invalidBody(w http.ResponseWriter, err error) {
	blogsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
}
