// Package auth issues and verifies admin bearer tokens and handles the
// admin login endpoint.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// JwtIssuer identifies tokens minted by this service.
const JwtIssuer = "CommonJobs"

// RoleAdmin is the only role this system issues.
const RoleAdmin = "admin"

// AdminClaims is the signed token payload: a role claim plus the registered
// expiry/issuer set.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IssueAdminToken signs a time-limited admin token with HS256. The JWT
// encoding gives the base64url payload + HMAC signature shape, and the
// library compares signatures in constant time during verification.
func IssueAdminToken(secret string, ttl time.Duration) (string, error) {
	claims := AdminClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    JwtIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyAdminToken parses and validates a bearer token: HMAC signature,
// unexpired, issued here, carrying the admin role.
func VerifyAdminToken(encoded, secret string) error {
	token, err := jwt.ParseWithClaims(encoded, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return fmt.Errorf("invalid access token")
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok {
		return fmt.Errorf("invalid token claims")
	}
	if claims.Issuer != JwtIssuer {
		return fmt.Errorf("invalid token issuer")
	}
	if claims.Role != RoleAdmin {
		return fmt.Errorf("token does not carry the admin role")
	}
	return nil
}
