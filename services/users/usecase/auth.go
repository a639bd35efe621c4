package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	jwtpkg "github.com/piresc/tumpang/internal/pkg/jwt"
	"github.com/piresc/tumpang/internal/pkg/logger"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

var errBadCredentials = fmt.Errorf("invalid email or password: %w", models.ErrUnauthorized)

// SignUp creates an email account with its profile and opens a session.
// A new account has no driver profile yet, so the driver app gate is not
// applied here; the driver registers through RegisterDriver afterwards.
func (uc *UserUC) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.AuthResponse, error) {
	email := utils.NormalizeEmail(req.Email)
	fullName := utils.SanitizeString(req.FullName)
	app := defaultApp(req.App)

	fields := make(map[string]string)
	if !utils.IsValidEmail(email) {
		fields["email"] = "must be a valid email address"
	}
	if len(req.Password) < minPasswordLength {
		fields["password"] = fmt.Sprintf("must be at least %d characters", minPasswordLength)
	}
	if fullName == "" {
		fields["full_name"] = "is required"
	}
	phone, err := utils.NormalizePhone(req.PhoneNumber)
	if err != nil {
		fields["phone_number"] = err.Error()
	}
	if !app.Valid() {
		fields["app"] = "must be driver or passenger"
	}
	if err := models.NewValidationError(fields); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	account := &models.Account{Email: email, PasswordHash: &passwordHash, Provider: providerEmail}
	profile := &models.Profile{FullName: fullName, PhoneNumber: phone}
	if err := uc.userRepo.CreateAccount(ctx, account, profile); err != nil {
		return nil, err
	}

	logger.Info("Account created",
		logger.String("user_id", account.ID),
		logger.String("email", utils.MaskEmail(email)))

	return uc.issueSession(account, app, profile)
}

// SignIn checks an email and password and opens a session for the requested app
func (uc *UserUC) SignIn(ctx context.Context, req *models.SignInRequest) (*models.AuthResponse, error) {
	app := defaultApp(req.App)
	if !app.Valid() {
		return nil, models.NewValidationError(map[string]string{"app": "must be driver or passenger"})
	}

	account, err := uc.userRepo.GetAccountByEmail(ctx, utils.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, errBadCredentials
		}
		return nil, err
	}

	if account.PasswordHash == nil {
		return nil, fmt.Errorf("account uses %s sign-in: %w", account.Provider, models.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errBadCredentials
	}

	if err := uc.checkAppAccess(ctx, account.ID, app); err != nil {
		return nil, err
	}

	profile, err := uc.userRepo.GetProfile(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	return uc.issueSession(account, app, profile)
}

// SignOut revokes the session token until it would have expired anyway
func (uc *UserUC) SignOut(ctx context.Context, claims *models.TokenClaims) error {
	if claims == nil || claims.TokenID == "" {
		return nil
	}

	ttl := time.Unix(claims.ExpiresAt, 0).Sub(uc.now())
	if err := uc.sessionRepo.RevokeToken(ctx, claims.TokenID, ttl); err != nil {
		return err
	}

	logger.Info("Session signed out", logger.String("user_id", claims.UserID))
	return nil
}

// GetSession describes the current caller
func (uc *UserUC) GetSession(ctx context.Context, claims *models.TokenClaims) (*models.Session, error) {
	profile, err := uc.userRepo.GetProfile(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	driver, err := uc.userRepo.GetDriverProfile(ctx, claims.UserID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	return &models.Session{
		UserID:        claims.UserID,
		Email:         claims.Email,
		Role:          claims.Role,
		App:           claims.App,
		Greeting:      utils.Greeting(uc.now().Hour()),
		Profile:       profile,
		DriverProfile: driver,
	}, nil
}

// IsTokenRevoked reports whether a session token was signed out
func (uc *UserUC) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	return uc.sessionRepo.IsTokenRevoked(ctx, tokenID)
}

// checkAppAccess applies the app gate: the driver app needs a driver profile
// and the passenger app refuses driver accounts
func (uc *UserUC) checkAppAccess(ctx context.Context, userID string, app models.App) error {
	_, err := uc.userRepo.GetDriverProfile(ctx, userID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return err
	}
	isDriver := err == nil

	switch {
	case app == models.AppDriver && !isDriver:
		return models.ErrDriverProfileRequired
	case app == models.AppPassenger && isDriver:
		return fmt.Errorf("driver accounts must use the driver app: %w", models.ErrForbidden)
	}
	return nil
}

func (uc *UserUC) issueSession(account *models.Account, app models.App, profile *models.Profile) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(account.ID, account.Email, app, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		UserID:    account.ID,
		Role:      app.Role(),
		ExpiresAt: expiresAt,
		Profile:   profile,
	}, nil
}

func defaultApp(app models.App) models.App {
	if app == "" {
		return models.AppPassenger
	}
	return app
}
