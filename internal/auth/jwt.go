// Package auth validates the HS256 access tokens the identity provider
// issues. Token issuing itself lives outside this service.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	id "certflow/pkg/domain"
	dErrors "certflow/pkg/domain-errors"
	mwauth "certflow/pkg/platform/middleware/auth"
)

// JWTValidator checks token signatures and extracts the applicant identity.
type JWTValidator struct {
	signingKey []byte
}

func NewJWTValidator(signingKey string) *JWTValidator {
	return &JWTValidator{signingKey: []byte(signingKey)}
}

type accessClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// ValidateToken parses and verifies an access token. The subject claim is
// the user ID; the sid claim, when present, is the identity provider's
// session ID.
func (v *JWTValidator) ValidateToken(tokenString string) (*mwauth.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.signingKey, nil
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnauthorized, "invalid token")
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}

	userID, err := id.ParseUserID(claims.Subject)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnauthorized, "token subject is not a user id")
	}

	result := &mwauth.Claims{UserID: userID}
	if claims.SessionID != "" {
		sessionID, err := id.ParseSessionID(claims.SessionID)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeUnauthorized, "token session id is invalid")
		}
		result.SessionID = sessionID
	}
	return result, nil
}
