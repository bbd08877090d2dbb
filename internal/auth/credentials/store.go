package credentials

import (
	"context"
	"errors"
)

var (
	ErrNotFound          = errors.New("credentials: not found")
	ErrAlreadyRegistered = errors.New("credentials: username already exists")
	ErrUnknownRole       = errors.New("credentials: unknown role")
)

// NewUser describes a staff account to provision. The password is
// hashed before it reaches the store.
type NewUser struct {
	FirstName string
	LastName  string
	Email     string
	Username  string
	Password  string
	Role      string
}

// Store is the credential store contract.
//
// FindByUsername matches exactly: lookups run against the store's own
// collation, which for this deployment (Postgres, default collation)
// is case-sensitive. Usernames are therefore case-sensitive; do not
// assume otherwise when seeding accounts.
type Store interface {
	FindByUsername(ctx context.Context, username string) (*Credential, error)
	CreateUser(ctx context.Context, u NewUser) (userID string, err error)
}
