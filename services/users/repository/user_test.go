package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/tumpang/internal/pkg/models"
)

func setupUserRepoTest(t *testing.T) (*UserRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewUserRepo(&models.Config{}, sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func strPtr(s string) *string { return &s }

func TestCreateAccount(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, account *models.Account, profile *models.Profile, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO accounts").
					WithArgs(sqlmock.AnyArg(), "rider@example.com", "hash", "email", sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO profiles").
					WithArgs(sqlmock.AnyArg(), "Rina Rider", "+628123456789", "", sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			assertFunc: func(t *testing.T, account *models.Account, profile *models.Profile, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, account.ID)
				assert.Equal(t, account.ID, profile.ID)
				assert.False(t, profile.CreatedAt.IsZero())
			},
		},
		{
			name: "Duplicate email",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO accounts").
					WillReturnError(&pgconn.PgError{Code: "23505"})
				mock.ExpectRollback()
			},
			assertFunc: func(t *testing.T, _ *models.Account, _ *models.Profile, err error) {
				assert.ErrorIs(t, err, models.ErrConflict)
			},
		},
		{
			name: "Profile insert fails",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO accounts").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO profiles").
					WillReturnError(errors.New("boom"))
				mock.ExpectRollback()
			},
			assertFunc: func(t *testing.T, _ *models.Account, _ *models.Profile, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to insert profile")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			account := &models.Account{Email: "rider@example.com", PasswordHash: strPtr("hash"), Provider: "email"}
			profile := &models.Profile{FullName: "Rina Rider", PhoneNumber: "+628123456789"}
			err := repo.CreateAccount(context.Background(), account, profile)

			tc.assertFunc(t, account, profile, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetAccountByEmail(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "provider", "created_at"}).
		AddRow("u1", "rider@example.com", "hash", "email", time.Now())
	mock.ExpectQuery("^SELECT (.+) FROM accounts WHERE lower\\(email\\)").
		WithArgs("Rider@Example.com").
		WillReturnRows(rows)

	account, err := repo.GetAccountByEmail(context.Background(), "Rider@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", account.ID)
	require.NotNil(t, account.PasswordHash)
	assert.Equal(t, "hash", *account.PasswordHash)

	mock.ExpectQuery("^SELECT (.+) FROM accounts WHERE lower\\(email\\)").
		WithArgs("missing@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.GetAccountByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAccountByID_OAuthAccount(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "provider", "created_at"}).
		AddRow("u2", "g@example.com", nil, "google", time.Now())
	mock.ExpectQuery("^SELECT (.+) FROM accounts WHERE id").
		WithArgs("u2").
		WillReturnRows(rows)

	account, err := repo.GetAccountByID(context.Background(), "u2")
	require.NoError(t, err)
	assert.Nil(t, account.PasswordHash)
	assert.Equal(t, "google", account.Provider)
}

func TestGetProfile(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, profile *models.Profile, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "full_name", "phone_number", "avatar_url", "created_at", "updated_at"}).
					AddRow("u1", "Rina Rider", "+628123456789", "", time.Now(), time.Now())
				mock.ExpectQuery("^SELECT (.+) FROM profiles WHERE id").
					WithArgs("u1").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, profile *models.Profile, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Rina Rider", profile.FullName)
			},
		},
		{
			name: "Not found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM profiles WHERE id").
					WithArgs("u1").
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, profile *models.Profile, err error) {
				assert.Nil(t, profile)
				assert.ErrorIs(t, err, models.ErrNotFound)
			},
		},
		{
			name: "Database error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM profiles WHERE id").
					WithArgs("u1").
					WillReturnError(errors.New("connection reset"))
			},
			assertFunc: func(t *testing.T, profile *models.Profile, err error) {
				assert.Nil(t, profile)
				assert.Error(t, err)
				assert.NotErrorIs(t, err, models.ErrNotFound)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			profile, err := repo.GetProfile(context.Background(), "u1")

			tc.assertFunc(t, profile, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE profiles SET full_name").
		WithArgs("New Name", "+628111111111", sqlmock.AnyArg(), "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateProfile(context.Background(), &models.Profile{ID: "u1", FullName: "New Name", PhoneNumber: "+628111111111"})
	assert.NoError(t, err)

	mock.ExpectExec("UPDATE profiles SET full_name").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateProfile(context.Background(), &models.Profile{ID: "ghost"})
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAvatar(t *testing.T) {
	repo, mock, cleanup := setupUserRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE profiles SET avatar_url").
		WithArgs("u1", "https://cdn/avatar.png", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateAvatar(context.Background(), "u1", "https://cdn/avatar.png"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
