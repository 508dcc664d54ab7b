package http

import (
	"mime"
	"net/http"

	"github.com/aussiebroadwan/inkwell/internal/blog/service"
	"github.com/aussiebroadwan/inkwell/pkg/blogsdk"
	"github.com/aussiebroadwan/inkwell/pkg/httpx"
)

type TokenHandler struct {
	AccountService *service.AccountService
}

// ServeHTTP exchanges a username and password for an access token.
//
//	@Summary		Log in
//	@Description	Exchanges a username and password for a bearer access token. Accepts a JSON body or an application/x-www-form-urlencoded form.
//	@Tags			Auth
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			request	body		blogsdk.LoginRequest				true	"Credentials"
//	@Success		200		{object}	blogsdk.TokenResponse				"Access token"
//	@Failure		400		{object}	blogsdk.ValidationErrorResponse		"Missing username or password"
//	@Failure		401		{object}	blogsdk.ErrorResponse				"Incorrect username or password"
//	@Failure		429		{object}	blogsdk.ErrorResponse				"Rate limit exceeded"
//	@Router			/v1/auth/token [post].
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := decodeLogin(w, r)
	if err != nil {
		invalidBody(w, err)
		return
	}
	if errs := blogsdk.Validate(req); errs != nil {
		blogsdk.WriteValidationError(w, errs)
		return
	}

	res, err := h.AccountService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, blogsdk.TokenResponse{
		AccessToken: res.AccessToken,
		TokenType:   "bearer",
		ExpiresIn:   int(res.ExpiresIn.Seconds()),
	})
}

func decodeLogin(w http.ResponseWriter, r *http.Request) (blogsdk.LoginRequest, error) {
	var req blogsdk.LoginRequest

	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mt == "application/json" {
		err := httpx.DecodeJSON(w, r, &req)
		return req, err
	}

	r.Body = http.MaxBytesReader(w, r.Body, httpx.MaxBodyBytes)
	if err := r.ParseForm(); err != nil {
		return req, err
	}
	req.Username = r.PostForm.Get("username")
	req.Password = r.PostForm.Get("password")
	return req, nil
}
