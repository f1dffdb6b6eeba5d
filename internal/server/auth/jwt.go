// Package auth issues and parses the HS256 tokens used by the server: owner
// access tokens and viewer tickets handed out after OTP verification.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/imagekeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

const viewerAudience = "viewer"

// Claims are the owner access token claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// ViewerClaims bind a verified viewer email to one grant.
type ViewerClaims struct {
	jwt.RegisteredClaims
	GrantID string `json:"gid"`
	Email   string `json:"email"`
}

func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}
	if err := parse(tokenString, claims, secretKey); err != nil {
		return "", err
	}
	if claims.UserID == "" {
		return "", common.ErrInvalidToken
	}
	return claims.UserID, nil
}

func GenerateViewerTicket(grantID, email string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ViewerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{viewerAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		GrantID: grantID,
		Email:   email,
	})
	return token.SignedString(secretKey)
}

// ParseViewerTicket validates a ticket and returns its claims. Owner access
// tokens are rejected.
func ParseViewerTicket(tokenString string, secretKey []byte) (*ViewerClaims, error) {
	claims := &ViewerClaims{}
	if err := parse(tokenString, claims, secretKey, jwt.WithAudience(viewerAudience)); err != nil {
		return nil, err
	}
	return claims, nil
}

func parse(tokenString string, claims jwt.Claims, secretKey []byte, opts ...jwt.ParserOption) error {
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return common.ErrTokenExpired
		}
		return common.ErrInvalidToken
	}

	if !token.Valid {
		return common.ErrInvalidToken
	}
	return nil
}
