package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/inkwell/internal/blog/domain"
	"github.com/aussiebroadwan/inkwell/internal/blog/service"
	"github.com/aussiebroadwan/inkwell/pkg/blogsdk"
	"github.com/aussiebroadwan/inkwell/pkg/httpx"
)

type AccountsHandler struct {
	AccountService *service.AccountService
}

// HandleSignup registers a normal account.
//
//	@Summary		Sign up
//	@Description	Creates a normal, active account. No authentication is required.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		blogsdk.CreateAccountRequest	true	"New account"
//	@Success		201		{object}	blogsdk.AccountView				"Created account"
//	@Failure		400		{object}	blogsdk.ValidationErrorResponse	"Validation failed"
//	@Failure		409		{object}	blogsdk.ErrorResponse			"Username, email or phone number taken"
//	@Router			/v1/users/signup [post].
func (h *AccountsHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req blogsdk.CreateAccountRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		invalidBody(w, err)
		return
	}

	a, err := h.AccountService.Signup(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, accountView(a, domain.TierNormal))
}

// HandleCreateStaff creates a staff account.
//
//	@Summary		Create staff
//	@Description	Creates a staff account. Requires a superuser.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		blogsdk.CreateAccountRequest	true	"New account"
//	@Success		201		{object}	blogsdk.AccountView				"Created account"
//	@Failure		400		{object}	blogsdk.ValidationErrorResponse	"Validation failed"
//	@Failure		401		{object}	blogsdk.ErrorResponse			"Missing or invalid token"
//	@Failure		403		{object}	blogsdk.ErrorResponse			"Caller is not a superuser"
//	@Failure		409		{object}	blogsdk.ErrorResponse			"Username, email or phone number taken"
//	@Security		BearerAuth
//	@Router			/v1/staff [post].
func (h *AccountsHandler) HandleCreateStaff(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.AccountService.CreateStaff)
}

// HandleCreateSuperuser creates a superuser account.
//
//	@Summary		Create superuser
//	@Description	Creates a superuser account with staff and superuser flags set. Requires an owner.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		blogsdk.CreateAccountRequest	true	"New account"
//	@Success		201		{object}	blogsdk.AccountView				"Created account"
//	@Failure		400		{object}	blogsdk.ValidationErrorResponse	"Validation failed"
//	@Failure		401		{object}	blogsdk.ErrorResponse			"Missing or invalid token"
//	@Failure		403		{object}	blogsdk.ErrorResponse			"Caller is not an owner"
//	@Failure		409		{object}	blogsdk.ErrorResponse			"Username, email or phone number taken"
//	@Security		BearerAuth
//	@Router			/v1/superusers [post].
func (h *AccountsHandler) HandleCreateSuperuser(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, h.AccountService.CreateSuperuser)
}

type createFunc func(ctx context.Context, caller domain.Account, req blogsdk.CreateAccountRequest) (domain.Account, error)

func (h *AccountsHandler) create(w http.ResponseWriter, r *http.Request, fn createFunc) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req blogsdk.CreateAccountRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		invalidBody(w, err)
		return
	}

	a, err := fn(r.Context(), caller, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, accountView(a, caller.Tier()))
}

// HandleMe returns the caller.
//
//	@Summary		Current account
//	@Description	Returns the authenticated account, projected at its own clearance.
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{object}	blogsdk.AccountView		"Caller"
//	@Failure		401	{object}	blogsdk.ErrorResponse	"Missing or invalid token"
//	@Security		BearerAuth
//	@Router			/v1/me [get].
func (h *AccountsHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	httpx.WriteJSON(w, http.StatusOK, accountView(caller, caller.Tier()))
}

// HandleRoster lists the accounts of one tier, taken from the last path
// segment.
//
//	@Summary		List accounts by tier
//	@Description	Lists accounts whose highest role is exactly the requested tier. The caller's clearance must be at least that tier.
//	@Tags			Accounts
//	@Produce		json
//	@Param			offset	query		int						false	"Offset"	minimum(0)	default(0)
//	@Param			limit	query		int						false	"Limit"		minimum(1)	maximum(100)	default(100)
//	@Success		200		{array}		blogsdk.AccountView		"Accounts"
//	@Failure		401		{object}	blogsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403		{object}	blogsdk.ErrorResponse	"Insufficient clearance"
//	@Security		BearerAuth
//	@Router			/v1/users [get]
//	@Router			/v1/staff [get]
//	@Router			/v1/superusers [get]
//	@Router			/v1/owners [get].
func (h *AccountsHandler) HandleRoster(tier domain.Tier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerFrom(w, r)
		if !ok {
			return
		}
		page, ok := pageFrom(w, r)
		if !ok {
			return
		}

		list, err := h.AccountService.List(r.Context(), caller, tier, page)
		if err != nil {
			writeError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, accountViews(list, caller.Tier()))
	}
}

// HandleGet returns one account.
//
//	@Summary		Get account
//	@Description	Returns an account if the caller's clearance is at least the account's tier.
//	@Tags			Accounts
//	@Produce		json
//	@Param			id	path		int						true	"Account id"
//	@Success		200	{object}	blogsdk.AccountView		"Account"
//	@Failure		401	{object}	blogsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403	{object}	blogsdk.ErrorResponse	"Insufficient clearance"
//	@Failure		404	{object}	blogsdk.ErrorResponse	"No such account"
//	@Security		BearerAuth
//	@Router			/v1/accounts/{id} [get].
func (h *AccountsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := idFrom(w, r)
	if !ok {
		return
	}

	a, err := h.AccountService.Get(r.Context(), caller, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, accountView(a, caller.Tier()))
}

// HandleUpdate applies a partial update.
//
//	@Summary		Update account
//	@Description	Partially updates an account. Omitted fields are left unchanged. Role flags require matching clearance.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Account id"
//	@Param			request	body		blogsdk.UpdateAccountRequest	true	"Fields to change"
//	@Success		200		{object}	blogsdk.AccountView				"Updated account"
//	@Failure		400		{object}	blogsdk.ValidationErrorResponse	"Validation failed"
//	@Failure		401		{object}	blogsdk.ErrorResponse			"Missing or invalid token"
//	@Failure		403		{object}	blogsdk.ErrorResponse			"Not allowed to modify the account or a field"
//	@Failure		404		{object}	blogsdk.ErrorResponse			"No such account"
//	@Failure		409		{object}	blogsdk.ErrorResponse			"Email or phone number taken"
//	@Security		BearerAuth
//	@Router			/v1/accounts/{id} [patch].
func (h *AccountsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := idFrom(w, r)
	if !ok {
		return
	}

	var req blogsdk.UpdateAccountRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		invalidBody(w, err)
		return
	}

	a, err := h.AccountService.Update(r.Context(), caller, id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, accountView(a, caller.Tier()))
}

// HandleDelete removes an account.
//
//	@Summary		Delete account
//	@Description	Permanently deletes an account. Requires a superuser or owner who may modify the target. Posts by the account are handled per the configured author policy.
//	@Tags			Accounts
//	@Param			id	path	int	true	"Account id"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	blogsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403	{object}	blogsdk.ErrorResponse	"Not allowed to delete the account"
//	@Failure		404	{object}	blogsdk.ErrorResponse	"No such account"
//	@Security		BearerAuth
//	@Router			/v1/accounts/{id} [delete].
func (h *AccountsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := idFrom(w, r)
	if !ok {
		return
	}

	if err := h.AccountService.Delete(r.Context(), caller, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
