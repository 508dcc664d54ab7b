package domain

import (
	"time"

	"github.com/google/uuid"
)

// Roles are the independent privilege flags of an account. Owner does not
// imply the other flags are set; the tier is derived from all three.
type Roles struct {
	IsStaff     bool
	IsSuperuser bool
	IsOwner     bool
}

// Tier returns the highest tier the flags grant.
func (r Roles) Tier() Tier {
	switch {
	case r.IsOwner:
		return TierOwner
	case r.IsSuperuser:
		return TierSuperuser
	case r.IsStaff:
		return TierStaff
	default:
		return TierNormal
	}
}

// Account is the only privileged entity.
type Account struct {
	ID           int64
	CustomUserID uuid.UUID
	Username     string
	Email        *string
	PhoneNumber  *string
	FirstName    *string
	LastName     *string
	Gender       string
	Bio          *string
	PasswordHash string // argon2id PHC string, or a legacy bcrypt digest
	IsActive     bool
	Roles
	DateJoined time.Time
	LastLogin  *time.Time
}

// DefaultGender is stored when signup omits a gender.
const DefaultGender = "m"

// AccountPatch is a partial update; nil fields are left as they are.
type AccountPatch struct {
	Email        *string
	PhoneNumber  *string
	FirstName    *string
	LastName     *string
	Gender       *string
	Bio          *string
	PasswordHash *string

	IsActive    *bool
	IsStaff     *bool
	IsSuperuser *bool
	IsOwner     *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p AccountPatch) IsEmpty() bool {
	return p == AccountPatch{}
}

// Apply returns a copy of a with the patch merged in.
func (p AccountPatch) Apply(a Account) Account {
	setPtr(&a.Email, p.Email)
	setPtr(&a.PhoneNumber, p.PhoneNumber)
	setPtr(&a.FirstName, p.FirstName)
	setPtr(&a.LastName, p.LastName)
	setPtr(&a.Bio, p.Bio)
	set(&a.Gender, p.Gender)
	set(&a.PasswordHash, p.PasswordHash)
	set(&a.IsActive, p.IsActive)
	set(&a.IsStaff, p.IsStaff)
	set(&a.IsSuperuser, p.IsSuperuser)
	set(&a.IsOwner, p.IsOwner)
	return a
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setPtr[T any](dst **T, v *T) {
	if v != nil {
		cp := *v
		*dst = &cp
	}
}
