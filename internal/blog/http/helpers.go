package http

import (
	"net/http"

	"github.com/aussiebroadwan/inkwell/internal/blog/domain"
	"github.com/aussiebroadwan/inkwell/internal/blog/service"
	"github.com/aussiebroadwan/inkwell/pkg/blogsdk"
	"github.com/aussiebroadwan/inkwell/pkg/httpx"
)

// callerFrom returns the account resolved by the authn middleware.
func callerFrom(w http.ResponseWriter, r *http.Request) (domain.Account, bool) {
	caller, ok := service.CallerFromContext(r.Context())
	if !ok {
		blogsdk.ErrUnauthenticated.WriteError(w)
	}
	return caller, ok
}

func pageFrom(w http.ResponseWriter, r *http.Request) (domain.Page, bool) {
	offset, err := httpx.QueryInt(r, "offset", 0)
	if err != nil {
		blogsdk.WriteValidationError(w, map[string]string{"offset": "must be an integer"})
		return domain.Page{}, false
	}
	limit, err := httpx.QueryInt(r, "limit", domain.DefaultPageLimit)
	if err != nil {
		blogsdk.WriteValidationError(w, map[string]string{"limit": "must be an integer"})
		return domain.Page{}, false
	}
	if limit < 1 {
		blogsdk.WriteValidationError(w, map[string]string{"limit": "must be between 1 and 100"})
		return domain.Page{}, false
	}
	return domain.Page{Offset: offset, Limit: limit}, true
}

func idFrom(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := httpx.PathInt64(r, "id")
	if err != nil || id <= 0 {
		blogsdk.ErrNotFound.WriteError(w)
		return 0, false
	}
	return id, true
}
