package http

import (
	"github.com/aussiebroadwan/inkwell/internal/blog/domain"
	"github.com/aussiebroadwan/inkwell/pkg/blogsdk"
)

// accountView projects a to what a caller of the given clearance may see.
// Each role flag is only included once the clearance reaches its tier.
func accountView(a domain.Account, clearance domain.Tier) blogsdk.AccountView {
	v := blogsdk.AccountView{
		ID:           a.ID,
		CustomUserID: a.CustomUserID.String(),
		Username:     a.Username,
		Email:        a.Email,
		PhoneNumber:  a.PhoneNumber,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Gender:       a.Gender,
		Bio:          a.Bio,
		IsActive:     a.IsActive,
		DateJoined:   a.DateJoined,
		LastLogin:    a.LastLogin,
	}
	if clearance.AtLeast(domain.TierStaff) {
		v.IsStaff = boolPtr(a.IsStaff)
	}
	if clearance.AtLeast(domain.TierSuperuser) {
		v.IsSuperuser = boolPtr(a.IsSuperuser)
	}
	if clearance.AtLeast(domain.TierOwner) {
		v.IsOwner = boolPtr(a.IsOwner)
	}
	return v
}

func accountViews(as []domain.Account, clearance domain.Tier) []blogsdk.AccountView {
	out := make([]blogsdk.AccountView, len(as))
	for i, a := range as {
		out[i] = accountView(a, clearance)
	}
	return out
}

func postView(p domain.Post) blogsdk.PostView {
	return blogsdk.PostView{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		Text:             p.Text,
		BlogPhoto:        p.BlogPhoto,
		ShortDescription: p.ShortDescription,
		SaveType:         p.SaveType,
		Author:           p.Author,
		Created:          p.Created,
		Modified:         p.Modified,
		IsDelete:         p.IsDelete,
	}
}

func postViews(ps []domain.Post) []blogsdk.PostView {
	out := make([]blogsdk.PostView, len(ps))
	for i, p := range ps {
		out[i] = postView(p)
	}
	return out
}

func boolPtr(b bool) *bool { return &b }
