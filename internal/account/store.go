package account

import (
	"context"
	"errors"
)

var (
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
)

type User struct {
	ID       int
	Username string
	Email    string
	Hash     []byte
}

// NewUser is a signup request as seen by the store; Password is the
// plaintext secret, hashed before it is kept anywhere.
type NewUser struct {
	Username string
	Password string
	Email    string
}

// Store holds user accounts. Username matching is case-sensitive and
// exact; both username and email are unique.
type Store interface {
	Create(ctx context.Context, nu NewUser) (User, error)
	GetByUsername(ctx context.Context, username string) (User, bool, error)
	Ping(ctx context.Context) error
}
