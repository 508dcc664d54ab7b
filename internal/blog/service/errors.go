package service

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/inkwell/internal/blog/authz"
	"github.com/aussiebroadwan/inkwell/internal/blog/store"
)

// Kind classifies service errors for the transport layer.
type Kind int

const (
	KindInvalid Kind = iota + 1
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a classified failure. Two errors match with errors.Is when their
// kinds are equal and the target either has no code or the same code.
type Error struct {
	Kind    Kind
	Code    string
	Message string

	// Fields holds per-field reasons for KindInvalid.
	Fields map[string]string
}

func (e *Error) Error() string {
	if e.Code != "" {
		return e.Code + ": " + e.Message
	}
	return e.Kind.String() + ": " + e.Message
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Code == "" || t.Code == e.Code)
}

var (
	ErrInvalid         = &Error{Kind: KindInvalid, Message: "invalid request"}
	ErrUnauthenticated = &Error{Kind: KindUnauthenticated, Message: "could not validate credentials"}
	ErrForbidden       = &Error{Kind: KindForbidden, Message: "insufficient privileges"}
	ErrNotFound        = &Error{Kind: KindNotFound, Message: "resource not found"}
	ErrConflict        = &Error{Kind: KindConflict, Message: "resource conflicts with existing state"}

	ErrInvalidToken       = &Error{Kind: KindUnauthenticated, Code: "invalid_token", Message: "could not validate credentials"}
	ErrInvalidCredentials = &Error{Kind: KindUnauthenticated, Code: "invalid_credentials", Message: "incorrect username or password"}

	ErrUsernameTaken = &Error{Kind: KindConflict, Code: "username_taken", Message: "username already registered"}
	ErrEmailTaken    = &Error{Kind: KindConflict, Code: "email_taken", Message: "email already registered"}
	ErrPhoneTaken    = &Error{Kind: KindConflict, Code: "phone_taken", Message: "phone number already registered"}
)

// Invalid builds a KindInvalid error, optionally with field details.
func Invalid(msg string, fields map[string]string) *Error {
	return &Error{Kind: KindInvalid, Message: msg, Fields: fields}
}

// translate maps store and authz errors onto service errors. Anything else
// is returned unchanged and ends up as a server error.
func translate(err error) error {
	var ce *store.ConflictError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &ce):
		return conflictForColumn(ce.Column)
	case errors.Is(err, store.ErrAlreadyExists):
		return ErrConflict
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, authz.ErrForbidden):
		return ErrForbidden
	default:
		return err
	}
}

func conflictForColumn(col string) error {
	switch col {
	case "username":
		return ErrUsernameTaken
	case "email":
		return ErrEmailTaken
	case "phone_number":
		return ErrPhoneTaken
	default:
		return ErrConflict
	}
}
