package http

import (
	"net/http"

	"github.com/aussiebroadwan/inkwell/internal/blog/domain"
	"github.com/aussiebroadwan/inkwell/internal/blog/service"
	"github.com/aussiebroadwan/inkwell/pkg/blogsdk"
	"github.com/aussiebroadwan/inkwell/pkg/httpx"
	"github.com/aussiebroadwan/inkwell/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
}

// ServeHTTP handles the bootstrap endpoint for initial system setup.
//
//	@Summary		Bootstrap the blog
//	@Description	Creates the first owner account. Only available when a bootstrap token is configured, and only while no account exists.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string							true	"Bootstrap token"
//	@Param			request				body		blogsdk.BootstrapRequest		true	"Owner account"
//	@Success		201					{object}	blogsdk.BootstrapResponse		"Created owner"
//	@Failure		400					{object}	blogsdk.ValidationErrorResponse	"Invalid request body or validation failed"
//	@Failure		401					{object}	blogsdk.ErrorResponse			"Missing or invalid bootstrap token"
//	@Failure		404					{object}	blogsdk.ErrorResponse			"Bootstrap not enabled"
//	@Failure		409					{object}	blogsdk.ErrorResponse			"Already bootstrapped"
//	@Router			/v1/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	if !h.BootstrapService.Enabled() {
		blogsdk.ErrNotFound.WithDescription("bootstrap endpoint is not enabled").WriteError(w)
		return
	}

	token := r.Header.Get("X-Bootstrap-Token")
	if token == "" {
		blogsdk.ErrUnauthenticated.WithDescription("bootstrap token is required in X-Bootstrap-Token header").WriteError(w)
		return
	}

	var req blogsdk.BootstrapRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		invalidBody(w, err)
		return
	}

	owner, err := h.BootstrapService.Bootstrap(r.Context(), token, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	l.Info("bootstrap complete")
	httpx.WriteJSON(w, http.StatusCreated, blogsdk.BootstrapResponse{
		Owner: accountView(owner, domain.TierOwner),
	})
}
