package http

import (
	"net/http"

	"github.com/aussiebroadwan/inkwell/internal/blog/domain"
	"github.com/aussiebroadwan/inkwell/internal/blog/service"
	"github.com/aussiebroadwan/inkwell/pkg/blogsdk"
	"github.com/aussiebroadwan/inkwell/pkg/httpx"
)

type PostsHandler struct {
	PostService *service.PostService
	Resolver    *service.IdentityResolver
}

// HandleList lists posts.
//
//	@Summary		List posts
//	@Description	Lists live posts. Staff may pass include_deleted=true with a bearer token to include soft-deleted posts.
//	@Tags			Posts
//	@Produce		json
//	@Param			offset			query		int						false	"Offset"	minimum(0)	default(0)
//	@Param			limit			query		int						false	"Limit"		minimum(1)	maximum(100)	default(100)
//	@Param			include_deleted	query		bool					false	"Include soft-deleted posts (staff only)"
//	@Success		200				{array}		blogsdk.PostView		"Posts"
//	@Failure		401				{object}	blogsdk.ErrorResponse	"include_deleted without a valid token"
//	@Failure		403				{object}	blogsdk.ErrorResponse	"include_deleted by a non-staff caller"
//	@Router			/v1/posts [get].
func (h *PostsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, ok := pageFrom(w, r)
	if !ok {
		return
	}

	includeDeleted := r.URL.Query().Get("include_deleted") == "true"
	var caller *domain.Account
	if includeDeleted {
		if raw, ok := httpx.BearerToken(r); ok {
			a, err := h.Resolver.Resolve(r.Context(), raw)
			if err != nil {
				writeError(w, r, err)
				return
			}
			caller = &a
		}
	}

	list, err := h.PostService.List(r.Context(), caller, page, includeDeleted)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, postViews(list))
}

// HandleGet returns a live post.
//
//	@Summary		Get post
//	@Tags			Posts
//	@Produce		json
//	@Param			id	path		int						true	"Post id"
//	@Success		200	{object}	blogsdk.PostView		"Post"
//	@Failure		404	{object}	blogsdk.ErrorResponse	"No such post, or soft-deleted"
//	@Router			/v1/posts/{id} [get].
func (h *PostsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := idFrom(w, r)
	if !ok {
		return
	}

	p, err := h.PostService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, postView(p))
}

// HandleCreate creates a post.
//
//	@Summary		Create post
//	@Description	Creates a post. Requires staff. The author defaults to the caller.
//	@Tags			Posts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		blogsdk.CreatePostRequest		true	"New post"
//	@Success		201		{object}	blogsdk.PostView				"Created post"
//	@Failure		400		{object}	blogsdk.ValidationErrorResponse	"Validation failed or unknown author"
//	@Failure		401		{object}	blogsdk.ErrorResponse			"Missing or invalid token"
//	@Failure		403		{object}	blogsdk.ErrorResponse			"Caller is not staff"
//	@Security		BearerAuth
//	@Router			/v1/posts [post].
func (h *PostsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req blogsdk.CreatePostRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		invalidBody(w, err)
		return
	}

	p, err := h.PostService.Create(r.Context(), caller, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, postView(p))
}

// HandleUpdate partially updates a post.
//
//	@Summary		Update post
//	@Description	Partially updates a post. Setting is_delete soft-deletes or restores it. Requires staff.
//	@Tags			Posts
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Post id"
//	@Param			request	body		blogsdk.UpdatePostRequest		true	"Fields to change"
//	@Success		200		{object}	blogsdk.PostView				"Updated post"
//	@Failure		400		{object}	blogsdk.ValidationErrorResponse	"Validation failed"
//	@Failure		401		{object}	blogsdk.ErrorResponse			"Missing or invalid token"
//	@Failure		403		{object}	blogsdk.ErrorResponse			"Caller is not staff"
//	@Failure		404		{object}	blogsdk.ErrorResponse			"No such post"
//	@Security		BearerAuth
//	@Router			/v1/posts/{id} [patch].
func (h *PostsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := idFrom(w, r)
	if !ok {
		return
	}

	var req blogsdk.UpdatePostRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		invalidBody(w, err)
		return
	}

	p, err := h.PostService.Update(r.Context(), caller, id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, postView(p))
}

// HandleDelete permanently removes a post.
//
//	@Summary		Delete post
//	@Tags			Posts
//	@Param			id	path	int	true	"Post id"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	blogsdk.ErrorResponse	"Missing or invalid token"
//	@Failure		403	{object}	blogsdk.ErrorResponse	"Caller is not staff"
//	@Failure		404	{object}	blogsdk.ErrorResponse	"No such post"
//	@Security		BearerAuth
//	@Router			/v1/posts/{id} [delete].
func (h *PostsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}
	id, ok := idFrom(w, r)
	if !ok {
		return
	}

	if err := h.PostService.Delete(r.Context(), caller, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
