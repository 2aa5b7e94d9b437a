package auth

import (
	"chat-hub/domain"
	"chat-hub/errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuerName = "chat-hub"

// CustomClaims defines the structure of the data stored inside the JWT.
// Subject carries the username, UserID the stable identity.
type CustomClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Token is what a successful login hands back to the client.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Issuer signs and verifies HS256 tokens with a shared secret.
// It satisfies contract.TokenVerifier.
type Issuer struct {
	secret   []byte
	duration time.Duration
	now      func() time.Time
}

func NewIssuer(secret string, duration time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), duration: duration, now: time.Now}
}

// Issue creates a signed JWT for a specific user.
func (i *Issuer) Issue(userID domain.UserID, username string) (Token, error) {
	now := i.now()
	claims := &CustomClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(i.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuerName,
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return Token{}, fmt.Errorf("%w: %v", errors.ErrTokenGeneration, err)
	}
	return Token{AccessToken: signed, TokenType: "bearer"}, nil
}

// VerifyToken parses and validates the signature and expiration of a JWT string
// and returns the identity it was issued for.
func (i *Issuer) VerifyToken(tokenString string) (domain.UserID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuerName),
		jwt.WithTimeFunc(i.now))
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", errors.ErrInvalidToken
	}
	return domain.UserID(claims.UserID), nil
}
