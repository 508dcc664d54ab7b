package domain

import (
	"fmt"
	"time"
)

// DefaultSaveType is stored when a post is created without a save type.
const DefaultSaveType = "N"

type Post struct {
	ID               int64
	Title            string
	Slug             string
	Text             string
	BlogPhoto        *string
	ShortDescription *string
	SaveType         string
	Author           *int64 // account id; not enforced by the database
	Created          time.Time
	Modified         time.Time
	IsDelete         bool
}

// PostPatch is a partial update; nil fields are left as they are.
type PostPatch struct {
	Title            *string
	Slug             *string
	Text             *string
	BlogPhoto        *string
	ShortDescription *string
	SaveType         *string
	IsDelete         *bool
}

// AuthorPolicy decides what happens to posts when their author is deleted.
type AuthorPolicy string

const (
	// AuthorOrphan keeps posts pointing at the deleted account id.
	AuthorOrphan AuthorPolicy = "orphan"
	// AuthorNullify clears the author of the posts.
	AuthorNullify AuthorPolicy = "nullify"
	// AuthorCascade deletes the posts.
	AuthorCascade AuthorPolicy = "cascade"
)

// ParseAuthorPolicy validates a configured policy name.
func ParseAuthorPolicy(s string) (AuthorPolicy, error) {
	switch p := AuthorPolicy(s); p {
	case AuthorOrphan, AuthorNullify, AuthorCascade:
		return p, nil
	default:
		return "", fmt.Errorf("unknown author policy %q (want orphan, nullify or cascade)", s)
	}
}

// Page bounds in list queries.
const (
	DefaultPageLimit = 100
	MaxPageLimit     = 100
)

// Page selects a window of a listing.
type Page struct {
	Offset int
	Limit  int
}
