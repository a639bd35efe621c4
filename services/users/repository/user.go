package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/tumpang/internal/pkg/database"
	"github.com/piresc/tumpang/internal/pkg/models"
)

// CreateAccount inserts an account and its profile in one transaction
func (r *UserRepo) CreateAccount(ctx context.Context, account *models.Account, profile *models.Profile) error {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	now := models.Now()
	account.CreatedAt = now
	profile.ID = account.ID
	profile.CreatedAt = now
	profile.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO accounts (id, email, password_hash, provider, created_at)
		VALUES (:id, :email, :password_hash, :provider, :created_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, account); err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("email already registered: %w", models.ErrConflict)
		}
		return fmt.Errorf("failed to insert account: %w", err)
	}

	query = `
		INSERT INTO profiles (id, full_name, phone_number, avatar_url, created_at, updated_at)
		VALUES (:id, :full_name, :phone_number, :avatar_url, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, profile); err != nil {
		return fmt.Errorf("failed to insert profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetAccountByEmail looks an account up by case-insensitive email
func (r *UserRepo) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `
		SELECT id, email, password_hash, provider, created_at
		FROM accounts
		WHERE lower(email) = lower($1)
	`

	var account models.Account
	if err := r.db.GetContext(ctx, &account, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account not found: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &account, nil
}

// GetAccountByID retrieves an account by id
func (r *UserRepo) GetAccountByID(ctx context.Context, id string) (*models.Account, error) {
	query := `
		SELECT id, email, password_hash, provider, created_at
		FROM accounts
		WHERE id = $1
	`

	var account models.Account
	if err := r.db.GetContext(ctx, &account, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account not found: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &account, nil
}

// GetProfile retrieves the profile of a user
func (r *UserRepo) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	query := `
		SELECT id, full_name, phone_number, avatar_url, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	var profile models.Profile
	if err := r.db.GetContext(ctx, &profile, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile not found: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

// UpdateProfile writes the editable profile columns
func (r *UserRepo) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	profile.UpdatedAt = models.Now()

	query := `
		UPDATE profiles
		SET full_name = :full_name, phone_number = :phone_number, updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, profile)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return expectOneRow(result, "profile")
}

// UpdateAvatar stores the public URL of a freshly uploaded avatar
func (r *UserRepo) UpdateAvatar(ctx context.Context, id, avatarURL string) error {
	query := `UPDATE profiles SET avatar_url = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, avatarURL, models.Now())
	if err != nil {
		return fmt.Errorf("failed to update avatar: %w", err)
	}

	return expectOneRow(result, "profile")
}

func expectOneRow(result sql.Result, entity string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%s not found: %w", entity, models.ErrNotFound)
	}
	return nil
}
