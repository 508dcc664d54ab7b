package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/inkwell/internal/blog/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// ConflictError reports which unique column rejected a write. It matches
// ErrAlreadyExists with errors.Is.
type ConflictError struct {
	Column string // e.g. "username", "email", "phone_number"
}

func (e *ConflictError) Error() string { return "store: already exists: " + e.Column }
func (e *ConflictError) Unwrap() error { return ErrAlreadyExists }

// Store is the root data access interface. Concrete drivers implement it and
// expose sub-repositories so a transaction hands out the same repos bound to
// the transaction.
type Store interface {
	Accounts() Accounts
	Posts() Posts

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn within a transaction. It commits when fn returns nil and
	// rolls back on error or panic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// AccountMatch selects accounts for the uniqueness pre-check. Empty or nil
// fields never match.
type AccountMatch struct {
	Username    string
	Email       *string
	PhoneNumber *string

	// ExcludeID skips the account being updated. Zero excludes nothing.
	ExcludeID int64
}

type Accounts interface {
	GetAccountByID(ctx context.Context, id int64) (domain.Account, error)

	// GetAccountByUsername is used by login and token resolution.
	GetAccountByUsername(ctx context.Context, username string) (domain.Account, error)

	// FindFirstMatching returns one account matching any field of m,
	// preferring a username match, then email, then phone number.
	FindFirstMatching(ctx context.Context, m AccountMatch) (domain.Account, error)

	// CreateAccount inserts a and returns it with its id assigned.
	CreateAccount(ctx context.Context, a domain.Account) (domain.Account, error)

	// UpdateAccount applies the patch and returns the stored result.
	UpdateAccount(ctx context.Context, id int64, p domain.AccountPatch) (domain.Account, error)

	// TouchLastLogin sets last_login to the current time.
	TouchLastLogin(ctx context.Context, id int64) error

	DeleteAccount(ctx context.Context, id int64) error

	// ListAccounts lists accounts whose derived tier equals tier, by id.
	ListAccounts(ctx context.Context, tier domain.Tier, page domain.Page) ([]domain.Account, error)

	// IsEmpty returns true if there are no accounts.
	IsEmpty(ctx context.Context) (bool, error)
}

type Posts interface {
	GetPostByID(ctx context.Context, id int64) (domain.Post, error)

	// ListPosts lists posts by id. Soft-deleted posts are only included when
	// includeDeleted is set.
	ListPosts(ctx context.Context, page domain.Page, includeDeleted bool) ([]domain.Post, error)

	CreatePost(ctx context.Context, p domain.Post) (domain.Post, error)

	// UpdatePost applies the patch, bumps modified and returns the result.
	UpdatePost(ctx context.Context, id int64, p domain.PostPatch) (domain.Post, error)

	DeletePost(ctx context.Context, id int64) error

	// NullifyAuthor clears the author of every post by authorID.
	NullifyAuthor(ctx context.Context, authorID int64) (int64, error)

	// DeleteByAuthor deletes every post by authorID.
	DeleteByAuthor(ctx context.Context, authorID int64) (int64, error)
}
