package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer = "expense-tracker-api"
	tokenTTL    = 8 * time.Hour
)

// TokenPayload is the application data carried inside a session token.
type TokenPayload struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type sessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// VerifyResult is a tagged result: callers branch on Valid instead of
// handling an error. The failure arm carries a client-safe message.
type VerifyResult struct {
	Valid   bool
	Payload TokenPayload
	Error   string
}

// TokenService signs and verifies stateless session tokens with a shared
// HMAC secret. Tokens are never stored server-side; the embedded expiry
// bounds their lifetime.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs the payload plus issuer and an 8-hour expiry.
func (s *TokenService) Issue(payload TokenPayload) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		UserID: payload.UserID,
		Email:  payload.Email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry. It never returns a Go error; expired
// tokens, malformed tokens and bad signatures each get a fixed message, and
// any other failure embeds its cause.
func (s *TokenService) Verify(tokenString string) VerifyResult {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})

	switch {
	case err == nil && token.Valid:
		return VerifyResult{
			Valid:   true,
			Payload: TokenPayload{UserID: claims.UserID, Email: claims.Email},
		}
	case errors.Is(err, jwt.ErrTokenExpired):
		return VerifyResult{Error: "Token has expired"}
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return VerifyResult{Error: "Invalid token"}
	case err != nil:
		return VerifyResult{Error: fmt.Sprintf("Token verification failed: %v", err)}
	default:
		return VerifyResult{Error: "Invalid token"}
	}
}
