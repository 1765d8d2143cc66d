package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the typ claim. Access tokens grant API access;
// refresh tokens are accepted only by the token refresh endpoint.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// tokenIssuer identifies tokens minted by this platform. Validation rejects
// tokens claiming any other issuer even when the signature checks out.
const tokenIssuer = "bhv360"

// ErrInvalidToken is returned when a JWT cannot be parsed or has expired.
var ErrInvalidToken = errors.New("auth: invalid or expired token")

// Claims is the token payload: the organization (tid) and user (uid) the
// token was issued for, the user's role at issue time, and the token type.
// The UUID fields marshal as their canonical string form.
type Claims struct {
	jwt.RegisteredClaims
	TenantID  uuid.UUID `json:"tid"`
	UserID    uuid.UUID `json:"uid"`
	Role      string    `json:"role"`
	TokenType string    `json:"typ"`
}

// IssueAccessToken creates a signed JWT access token.
func IssueAccessToken(secret string, tenantID, userID uuid.UUID, role string, ttl time.Duration) (string, error) {
	return issueToken(secret, tenantID, userID, role, TokenTypeAccess, ttl)
}

// IssueRefreshToken creates a signed JWT refresh token.
func IssueRefreshToken(secret string, tenantID, userID uuid.UUID, role string, ttl time.Duration) (string, error) {
	return issueToken(secret, tenantID, userID, role, TokenTypeRefresh, ttl)
}

func issueToken(secret string, tenantID, userID uuid.UUID, role, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    tokenIssuer,
		},
		TenantID:  tenantID,
		UserID:    userID,
		Role:      role,
		TokenType: tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("auth.issueToken: %w", err)
	}

	return signed, nil
}

// ValidateToken parses a JWT and verifies its HS256 signature, expiry, and
// issuer. Claims from a token that fails any check are never returned.
func ValidateToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, fmt.Errorf("auth.ValidateToken: %w", ErrInvalidToken)
	}

	if !token.Valid {
		return nil, fmt.Errorf("auth.ValidateToken: %w", ErrInvalidToken)
	}

	return claims, nil
}
