package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/piresc/tumpang/internal/pkg/models"
	"github.com/spf13/cast"
)

// GenerateToken issues a session token for the given account and app
func GenerateToken(userID, email string, app models.App, cfg *models.Config) (string, int64, error) {
	expiresAt := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute).Unix()

	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    app.Role(),
		"app":     string(app),
		"jti":     uuid.NewString(),
		"exp":     expiresAt,
		"iat":     time.Now().Unix(),
		"iss":     cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a session token and returns the claims
func ValidateToken(tokenString string, secret string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// ParseClaims validates tokenString and decodes it into models.TokenClaims
func ParseClaims(tokenString string, secret string) (*models.TokenClaims, error) {
	mc, err := ValidateToken(tokenString, secret)
	if err != nil {
		return nil, err
	}
	claims := *mc

	tc := &models.TokenClaims{
		UserID:    cast.ToString(claims["user_id"]),
		Email:     cast.ToString(claims["email"]),
		Role:      cast.ToString(claims["role"]),
		App:       models.App(cast.ToString(claims["app"])),
		TokenID:   cast.ToString(claims["jti"]),
		ExpiresAt: cast.ToInt64(claims["exp"]),
	}
	if tc.UserID == "" {
		return nil, fmt.Errorf("token has no user_id")
	}
	return tc, nil
}
