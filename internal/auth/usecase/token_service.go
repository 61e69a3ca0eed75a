package usecase

import (
	"errors"
	"time"

	"blogapp-backend/pkg/apperr"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates stateless HS256 bearer tokens. The
// secret is fixed at construction and validation never touches storage, so
// both operations are pure apart from reading the clock.
type TokenService struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

// Issue signs a token for the given account id with exp = now + expiry.
func (s *TokenService) Issue(accountID string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": accountID,
		"iat": now.Unix(),
		"exp": now.Add(s.expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate verifies the signature and expiry and returns the embedded
// account id. Failures are discriminated so the caller can log the reason;
// the boundary collapses all three to an unauthenticated response.
func (s *TokenService) Validate(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", apperr.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", apperr.ErrTokenSignature
		default:
			return "", apperr.ErrTokenMalformed
		}
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", apperr.ErrTokenMalformed
	}

	return sub, nil
}
