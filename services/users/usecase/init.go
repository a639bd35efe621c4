package usecase

import (
	"time"

	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/services/users"
	"golang.org/x/crypto/bcrypt"
)

const providerEmail = "email"

type UserUC struct {
	cfg         *models.Config
	userRepo    users.UserRepo
	sessionRepo users.SessionRepo
	userGW      users.UserGW

	bcryptCost int
	now        func() time.Time
}

// NewUserUC creates a new user usecase instance
func NewUserUC(
	cfg *models.Config,
	userRepo users.UserRepo,
	sessionRepo users.SessionRepo,
	userGW users.UserGW,
) *UserUC {
	return &UserUC{
		cfg:         cfg,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		userGW:      userGW,
		bcryptCost:  bcrypt.DefaultCost,
		now:         time.Now,
	}
}
