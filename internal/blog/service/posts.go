package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/aussiebroadwan/inkwell/internal/blog/authz"
	"github.com/aussiebroadwan/inkwell/internal/blog/domain"
	"github.com/aussiebroadwan/inkwell/internal/blog/metrics"
	"github.com/aussiebroadwan/inkwell/internal/blog/store"
	"github.com/aussiebroadwan/inkwell/pkg/blogsdk"
	"github.com/aussiebroadwan/inkwell/pkg/slogx"
)

type PostService struct {
	Store     store.Store
	Sanitizer *Sanitizer
	Metrics   metrics.Recorder
}

func (s *PostService) recorder() metrics.Recorder {
	if s.Metrics == nil {
		return metrics.Noop{}
	}
	return s.Metrics
}

var defaultSanitizer = sync.OnceValue(NewSanitizer)

func (s *PostService) sanitizer() *Sanitizer {
	if s.Sanitizer == nil {
		return defaultSanitizer()
	}
	return s.Sanitizer
}

func (s *PostService) requireManager(ctx context.Context, action string, caller domain.Account) error {
	allowed := authz.CanManagePosts(caller.Roles)
	s.recorder().RecordDecision(action, allowed)
	if !allowed {
		slogx.FromContext(ctx).Info("access denied",
			slog.String("action", action),
			slog.Int64("caller_id", caller.ID),
		)
		return ErrForbidden
	}
	return nil
}

// List returns live posts. Soft-deleted posts are only listed for a staff
// caller that asks for them.
func (s *PostService) List(ctx context.Context, caller *domain.Account, page domain.Page, includeDeleted bool) ([]domain.Post, error) {
	if includeDeleted {
		if caller == nil {
			return nil, ErrUnauthenticated
		}
		if err := s.requireManager(ctx, "post.list_deleted", *caller); err != nil {
			return nil, err
		}
	}
	page, err := NormalizePage(page)
	if err != nil {
		return nil, err
	}
	out, err := s.Store.Posts().ListPosts(ctx, page, includeDeleted)
	return out, translate(err)
}

// Get returns a live post. Soft-deleted posts are reported as not found.
func (s *PostService) Get(ctx context.Context, id int64) (domain.Post, error) {
	p, err := s.Store.Posts().GetPostByID(ctx, id)
	if err != nil {
		return domain.Post{}, translate(err)
	}
	if p.IsDelete {
		return domain.Post{}, ErrNotFound
	}
	return p, nil
}

// Create stores a new post. The author defaults to the caller and must name
// an existing account when given.
func (s *PostService) Create(ctx context.Context, caller domain.Account, req blogsdk.CreatePostRequest) (domain.Post, error) {
	if err := s.requireManager(ctx, "post.create", caller); err != nil {
		return domain.Post{}, err
	}
	if errs := req.Validate(); errs != nil {
		return domain.Post{}, Invalid("validation failed", errs)
	}

	author := caller.ID
	if req.Author != nil && *req.Author != caller.ID {
		if _, err := s.Store.Accounts().GetAccountByID(ctx, *req.Author); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Post{}, Invalid("unknown author", map[string]string{"author": "no such account"})
			}
			return domain.Post{}, err
		}
		author = *req.Author
	}

	san := s.sanitizer()
	title := san.Plain(req.Title)
	if title == "" {
		return domain.Post{}, Invalid("validation failed", map[string]string{"title": "required"})
	}
	p := domain.Post{
		Title:            title,
		Slug:             req.Slug,
		Text:             san.Body(req.Text),
		BlogPhoto:        optional(req.BlogPhoto),
		ShortDescription: sanitizeOptional(san, req.ShortDescription),
		SaveType:         req.SaveType,
		Author:           &author,
	}

	created, err := s.Store.Posts().CreatePost(ctx, p)
	if err != nil {
		return domain.Post{}, translate(err)
	}

	s.recorder().RecordPostWrite("create")
	slogx.FromContext(ctx).Info("post created", slog.Int64("post_id", created.ID), slog.Int64("author", author))
	return created, nil
}

// Update applies a partial update. Setting is_delete soft-deletes or
// restores the post.
func (s *PostService) Update(ctx context.Context, caller domain.Account, id int64, req blogsdk.UpdatePostRequest) (domain.Post, error) {
	if err := s.requireManager(ctx, "post.update", caller); err != nil {
		return domain.Post{}, err
	}
	if errs := req.Validate(); errs != nil {
		return domain.Post{}, Invalid("validation failed", errs)
	}

	san := s.sanitizer()
	var title *string
	if req.Title != nil {
		t := san.Plain(*req.Title)
		if t == "" {
			return domain.Post{}, Invalid("validation failed", map[string]string{"title": "required"})
		}
		title = &t
	}
	patch := domain.PostPatch{
		Title:            title,
		Slug:             req.Slug,
		BlogPhoto:        req.BlogPhoto,
		ShortDescription: sanitizeOptional(san, req.ShortDescription),
		SaveType:         req.SaveType,
		IsDelete:         req.IsDelete,
	}
	if req.Text != nil {
		t := san.Body(*req.Text)
		patch.Text = &t
	}

	updated, err := s.Store.Posts().UpdatePost(ctx, id, patch)
	if err != nil {
		return domain.Post{}, translate(err)
	}

	op := "update"
	if req.IsDelete != nil && *req.IsDelete {
		op = "soft_delete"
	}
	s.recorder().RecordPostWrite(op)
	slogx.FromContext(ctx).Info("post updated", slog.Int64("post_id", id), slog.String("op", op))
	return updated, nil
}

// Delete removes a post permanently.
func (s *PostService) Delete(ctx context.Context, caller domain.Account, id int64) error {
	if err := s.requireManager(ctx, "post.delete", caller); err != nil {
		return err
	}
	if err := s.Store.Posts().DeletePost(ctx, id); err != nil {
		return translate(err)
	}
	s.recorder().RecordPostWrite("delete")
	slogx.FromContext(ctx).Info("post deleted", slog.Int64("post_id", id))
	return nil
}

func sanitizeOptional(san *Sanitizer, s *string) *string {
	if s == nil {
		return nil
	}
	v := san.Plain(*s)
	return &v
}
