package blogsdk

import "time"

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the JSON body of every error except validation failures.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ValidationErrorResponse is returned when request validation fails.
type ValidationErrorResponse struct {
	// Code is always "validation_error"
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details maps JSON field names to the reason they were rejected
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Token Types
// ============================================================================

// LoginRequest is accepted by POST /v1/auth/token as JSON or as an
// application/x-www-form-urlencoded body.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Password string `json:"password" validate:"required,max=128"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	// AccessToken is the signed bearer token
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime of the token in seconds
	ExpiresIn int `json:"expires_in"`
}

// ============================================================================
// Account Types
// ============================================================================

// Roster tiers accepted by ListAccounts.
const (
	TierUsers      = "users"
	TierStaff      = "staff"
	TierSuperusers = "superusers"
	TierOwners     = "owners"
)

// CreateAccountRequest is used for signup and for privileged staff and
// superuser creation. Role flags are never taken from the body; they follow
// from the endpoint.
type CreateAccountRequest struct {
	Username    string  `json:"username" validate:"required,min=3,max=150,username"`
	Password    string  `json:"password" validate:"required,min=8,max=128"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,e164"`
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,max=150"`
	Gender      string  `json:"gender,omitempty" validate:"omitempty,oneof=m f o"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=4000"`
}

// Validate returns field errors, or nil when the request is valid.
func (r CreateAccountRequest) Validate() map[string]string { return Validate(r) }

// UpdateAccountRequest is a partial update: nil fields are left untouched.
// Which fields a caller may set depends on its clearance.
type UpdateAccountRequest struct {
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,e164"`
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,max=150"`
	Gender      *string `json:"gender,omitempty" validate:"omitempty,oneof=m f o"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=4000"`
	Password    *string `json:"password,omitempty" validate:"omitempty,min=8,max=128"`

	IsActive    *bool `json:"is_active,omitempty"`
	IsStaff     *bool `json:"is_staff,omitempty"`
	IsSuperuser *bool `json:"is_superuser,omitempty"`
	IsOwner     *bool `json:"is_owner,omitempty"`
}

// Validate returns field errors, or nil when the request is valid.
func (r UpdateAccountRequest) Validate() map[string]string { return Validate(r) }

// AccountView is an account projected to the caller's clearance: role
// flags above the caller's own tier are omitted.
type AccountView struct {
	ID           int64      `json:"id"`
	CustomUserID string     `json:"custom_user_id"`
	Username     string     `json:"username"`
	Email        *string    `json:"email"`
	PhoneNumber  *string    `json:"phone_number"`
	FirstName    *string    `json:"first_name"`
	LastName     *string    `json:"last_name"`
	Gender       string     `json:"gender"`
	Bio          *string    `json:"bio"`
	IsActive     bool       `json:"is_active"`
	DateJoined   time.Time  `json:"date_joined"`
	LastLogin    *time.Time `json:"last_login"`

	IsStaff     *bool `json:"is_staff,omitempty"`
	IsSuperuser *bool `json:"is_superuser,omitempty"`
	IsOwner     *bool `json:"is_owner,omitempty"`
}

// ============================================================================
// Post Types
// ============================================================================

// CreatePostRequest creates a post. Author defaults to the caller.
type CreatePostRequest struct {
	Title            string  `json:"title" validate:"required,max=200"`
	Slug             string  `json:"slug" validate:"required,max=200,slug"`
	Text             string  `json:"text" validate:"required"`
	BlogPhoto        *string `json:"blog_photo,omitempty" validate:"omitempty,max=2048"`
	ShortDescription *string `json:"short_description,omitempty" validate:"omitempty,max=500"`
	SaveType         string  `json:"save_type,omitempty" validate:"omitempty,max=8"`
	Author           *int64  `json:"author,omitempty" validate:"omitempty,gt=0"`
}

// Validate returns field errors, or nil when the request is valid.
func (r CreatePostRequest) Validate() map[string]string { return Validate(r) }

// UpdatePostRequest is a partial update. Setting is_delete soft-deletes or
// restores the post.
type UpdatePostRequest struct {
	Title            *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Slug             *string `json:"slug,omitempty" validate:"omitempty,max=200,slug"`
	Text             *string `json:"text,omitempty" validate:"omitempty,min=1"`
	BlogPhoto        *string `json:"blog_photo,omitempty" validate:"omitempty,max=2048"`
	ShortDescription *string `json:"short_description,omitempty" validate:"omitempty,max=500"`
	SaveType         *string `json:"save_type,omitempty" validate:"omitempty,max=8"`
	IsDelete         *bool   `json:"is_delete,omitempty"`
}

// Validate returns field errors, or nil when the request is valid.
func (r UpdatePostRequest) Validate() map[string]string { return Validate(r) }

// PostView is the public representation of a post.
type PostView struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Text             string    `json:"text"`
	BlogPhoto        *string   `json:"blog_photo"`
	ShortDescription *string   `json:"short_description"`
	SaveType         string    `json:"save_type"`
	Author           *int64    `json:"author"`
	Created          time.Time `json:"created"`
	Modified         time.Time `json:"modified"`
	IsDelete         bool      `json:"is_delete"`
}

// ============================================================================
// Bootstrap Types
// ============================================================================

// BootstrapRequest creates the first owner account. It is only accepted
// while no account exists.
type BootstrapRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=150,username"`
	Password string  `json:"password" validate:"required,min=8,max=128"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
}

// Validate returns field errors, or nil when the request is valid.
func (r BootstrapRequest) Validate() map[string]string { return Validate(r) }

// BootstrapResponse returns the created owner.
type BootstrapResponse struct {
	Owner AccountView `json:"owner"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
