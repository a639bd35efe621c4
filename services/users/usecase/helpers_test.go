package usecase

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/piresc/tumpang/services/users/mocks"
	"golang.org/x/crypto/bcrypt"
)

type testDeps struct {
	repo    *mocks.MockUserRepo
	session *mocks.MockSessionRepo
	gw      *mocks.MockUserGW
}

var fixedNow = time.Date(2024, 5, 1, 13, 30, 0, 0, time.UTC)

func newTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "tumpang-test",
		},
		OAuth: models.OAuthConfig{
			AllowedRedirects: []string{"tumpang://", "https://app.example.com/auth"},
			Providers: map[string]models.OAuthProvider{
				"google": {
					Name:        "google",
					ClientID:    "client-id",
					AuthURL:     "https://accounts.example.com/o/oauth2/auth",
					TokenURL:    "https://accounts.example.com/token",
					UserInfoURL: "https://accounts.example.com/userinfo",
					RedirectURL: "http://localhost:8080/auth/oauth/callback",
					Scopes:      []string{"openid", "email"},
				},
			},
		},
		Cache: models.CacheConfig{OAuthStateTTL: 600},
	}
}

func newTestUC(t *testing.T) (*UserUC, testDeps) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	deps := testDeps{
		repo:    mocks.NewMockUserRepo(ctrl),
		session: mocks.NewMockSessionRepo(ctrl),
		gw:      mocks.NewMockUserGW(ctrl),
	}

	uc := NewUserUC(newTestConfig(), deps.repo, deps.session, deps.gw)
	uc.bcryptCost = bcrypt.MinCost
	uc.now = func() time.Time { return fixedNow }
	return uc, deps
}

func hashPassword(t *testing.T, password string) *string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	s := string(hash)
	return &s
}
