package models

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rohanthewiz/serr"

	"mizan/auth"
)

const (
	// TokenLifetime is how long a portal session lasts
	TokenLifetime = 12 * time.Hour

	// TokenIssuer identifies the application that issued the token
	TokenIssuer = "mizan"

	// MinSecretLength is the minimum acceptable length for the JWT secret
	MinSecretLength = 32
)

var (
	jwtSecret []byte
	jwtMu     sync.RWMutex
)

// TokenClaims carries the session user in the cookie so pages can render
// the account area without a database read.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserGUID  string `json:"user_guid"`
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
}

// InitJWT sets the signing key. Must be called before any token operation.
func InitJWT(secret string) error {
	if len(secret) < MinSecretLength {
		return serr.New("JWT secret must be at least 32 characters")
	}
	jwtMu.Lock()
	jwtSecret = []byte(secret)
	jwtMu.Unlock()
	return nil
}

func signingKey() ([]byte, error) {
	jwtMu.RLock()
	defer jwtMu.RUnlock()
	if len(jwtSecret) == 0 {
		return nil, serr.New("JWT not initialized - call InitJWT first")
	}
	return jwtSecret, nil
}

// GenerateToken creates a signed JWT for the authenticated user.
func GenerateToken(user *User) (string, error) {
	key, err := signingKey()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   user.GUID,
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		UserGUID:  user.GUID,
		Username:  user.Username,
		FirstName: user.FirstName,
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", serr.Wrap(err, "failed to sign token")
	}
	return tokenString, nil
}

// ValidateToken parses a token and returns its claims if the signature,
// issuer and validity window all check out.
func ValidateToken(tokenString string) (*TokenClaims, error) {
	key, err := signingKey()
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, serr.New("unexpected signing method")
		}
		return key, nil
	}, jwt.WithIssuer(TokenIssuer))
	if err != nil {
		return nil, serr.Wrap(err, "failed to parse token")
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, serr.New("invalid token claims")
	}
	return claims, nil
}

// View converts the claims into the session view used by the pages.
func (c *TokenClaims) View() auth.View {
	return auth.Member(auth.User{GUID: c.UserGUID, Username: c.Username, FirstName: c.FirstName})
}
