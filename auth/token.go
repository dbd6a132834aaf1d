package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// jwtKey signs and verifies tokens. Deployments override it through
// JWT_SECRET at startup; the default keeps local tooling and tests working
// without configuration.
var jwtKey = []byte("my_strong_and_long_secret_key_2026")

// SetSigningKey installs the signing secret from configuration. Call once at
// startup, before any token is issued or validated. An empty secret keeps
// the built-in development key.
func SetSigningKey(secret string) {
	if secret != "" {
		jwtKey = []byte(secret)
	}
}

// CustomClaims is the payload carried inside a bearer token. TeamIDs lists
// every team the user belongs to; mutations check it before touching a
// team's documents.
type CustomClaims struct {
	UserID  string   `json:"user_id"`
	TeamIDs []string `json:"team_ids"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed HS256 token for a user and their teams.
func GenerateToken(userID string, teamIDs []string,
	authTokenDuration time.Duration) (string, error) {
	expirationTime := time.Now().Add(authTokenDuration)

	claims := &CustomClaims{
		UserID:  userID,
		TeamIDs: teamIDs,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "huddle",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ValidateToken checks the signature and expiration of a token string and
// returns its claims.
func ValidateToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (any, error) {
		return jwtKey, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
