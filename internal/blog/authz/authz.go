// Package authz decides what a caller may do to accounts and posts.
//
// Every decision is a pure function of the caller's and target's role flags,
// so callers must load fresh flags from the store before asking.
package authz

import (
	"errors"

	"github.com/aussiebroadwan/inkwell/internal/blog/domain"
)

// ErrForbidden is returned by CheckUpdate when a decision denies.
var ErrForbidden = errors.New("authz: forbidden")

// CanModify reports whether caller may change or remove target.
//
// Owners may modify anyone. Superusers may modify anyone who is not an
// owner. Staff may modify accounts that are neither owners nor superusers.
func CanModify(caller, target domain.Roles) bool {
	switch {
	case caller.IsOwner:
		return true
	case caller.IsSuperuser:
		return !target.IsOwner
	case caller.IsStaff:
		return !target.IsOwner && !target.IsSuperuser
	default:
		return false
	}
}

// CanCreateStaff reports whether caller may mint staff accounts.
func CanCreateStaff(caller domain.Roles) bool { return caller.IsSuperuser }

// CanCreateSuperuser reports whether caller may mint superuser accounts.
func CanCreateSuperuser(caller domain.Roles) bool { return caller.IsOwner }

// CanDelete reports whether caller may hard delete target.
func CanDelete(caller, target domain.Roles) bool {
	return (caller.IsSuperuser || caller.IsOwner) && CanModify(caller, target)
}

// CanView reports whether caller may read accounts of the given tier.
func CanView(caller domain.Roles, tier domain.Tier) bool {
	return caller.Tier().AtLeast(tier)
}

// CanManagePosts reports whether caller may create, edit or delete posts.
func CanManagePosts(caller domain.Roles) bool {
	return caller.Tier().AtLeast(domain.TierStaff)
}

// Field names a gated account attribute in a patch.
type Field string

const (
	FieldProfile     Field = "profile"
	FieldPassword    Field = "password"
	FieldIsActive    Field = "is_active"
	FieldIsStaff     Field = "is_staff"
	FieldIsSuperuser Field = "is_superuser"
	FieldIsOwner     Field = "is_owner"
)

// CanSetField reports whether caller may supply f in an update. It does not
// include the CanModify check against the target.
func CanSetField(caller domain.Roles, f Field) bool {
	switch f {
	case FieldProfile, FieldPassword:
		return true
	case FieldIsActive:
		return caller.Tier().AtLeast(domain.TierStaff)
	case FieldIsStaff, FieldIsSuperuser:
		return caller.IsSuperuser || caller.IsOwner
	case FieldIsOwner:
		return caller.IsOwner
	default:
		return false
	}
}

// PatchFields lists the gated fields a patch touches, in a stable order.
func PatchFields(p domain.AccountPatch) []Field {
	var fs []Field
	if p.Email != nil || p.PhoneNumber != nil || p.FirstName != nil ||
		p.LastName != nil || p.Gender != nil || p.Bio != nil {
		fs = append(fs, FieldProfile)
	}
	if p.PasswordHash != nil {
		fs = append(fs, FieldPassword)
	}
	if p.IsActive != nil {
		fs = append(fs, FieldIsActive)
	}
	if p.IsStaff != nil {
		fs = append(fs, FieldIsStaff)
	}
	if p.IsSuperuser != nil {
		fs = append(fs, FieldIsSuperuser)
	}
	if p.IsOwner != nil {
		fs = append(fs, FieldIsOwner)
	}
	return fs
}

// FieldError reports the first patch field the caller is not cleared for.
type FieldError struct {
	Field Field
}

func (e *FieldError) Error() string { return "authz: not allowed to set " + string(e.Field) }
func (e *FieldError) Unwrap() error { return ErrForbidden }

// CheckUpdate authorizes caller applying p to target. It returns
// ErrForbidden when CanModify denies and a *FieldError when a supplied field
// is beyond the caller's clearance.
func CheckUpdate(caller, target domain.Roles, p domain.AccountPatch) error {
	if !CanModify(caller, target) {
		return ErrForbidden
	}
	for _, f := range PatchFields(p) {
		if !CanSetField(caller, f) {
			return &FieldError{Field: f}
		}
	}
	return nil
}
