package credentials

import (
	"context"
	"database/sql"
	"fmt"

	"clinic-portal/internal/db"

	"github.com/google/uuid"
)

type DBStore struct {
	db *db.DB
}

func NewDBStore(db *db.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) FindByUsername(
	ctx context.Context,
	username string,
) (*Credential, error) {

	var (
		userID       uuid.UUID
		passwordHash string
		roleName     string
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT u.id, l.password_hash, r.name
		FROM user_login_info l
		JOIN users u ON u.id = l.user_id
		JOIN roles r ON r.id = u.role_id
		WHERE l.username = $1
	`, username).Scan(&userID, &passwordHash, &roleName)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("credentials: lookup failed: %w", err)
	}

	return &Credential{
		UserID:       userID.String(),
		Username:     username,
		PasswordHash: passwordHash,
		RoleName:     roleName,
	}, nil
}

func (s *DBStore) CreateUser(ctx context.Context, u NewUser) (string, error) {

	// 1. Resolve the role
	var roleID int
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM roles WHERE name = $1
	`, u.Role).Scan(&roleID)

	if err == sql.ErrNoRows {
		return "", ErrUnknownRole
	}
	if err != nil {
		return "", err
	}

	// 2. Reject duplicate usernames up front
	var exists bool
	err = s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM user_login_info WHERE username = $1
		)
	`, u.Username).Scan(&exists)

	if err != nil {
		return "", err
	}

	if exists {
		return "", ErrAlreadyRegistered
	}

	// 3. Hash password
	hash, version, err := HashPassword(u.Password)
	if err != nil {
		return "", err
	}

	// 4. Insert user + login info atomically
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	var userID uuid.UUID
	err = tx.QueryRowContext(ctx, `
		INSERT INTO users (first_name, last_name, email, role_id)
		VALUES ($1, $2, NULLIF($3, ''), $4)
		RETURNING id
	`, u.FirstName, u.LastName, u.Email, roleID).Scan(&userID)

	if err != nil {
		return "", err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO user_login_info (user_id, username, password_hash, hash_version)
		VALUES ($1, $2, $3, $4)
	`, userID, u.Username, hash, version)

	if err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	return userID.String(), nil
}
