package services

import (
	"errors"
	"fmt"
	"time"

	"main/model"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "notes-api"

var (
	// ErrNoToken means no token was presented at all.
	ErrNoToken = errors.New("token not provided")
	// ErrInvalidToken covers malformed, badly signed, and expired tokens.
	ErrInvalidToken = errors.New("invalid token")
)

// TokenService issues and verifies stateless HS256 session tokens. There is
// no revocation list; the embedded expiry is the only invalidation.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token embedding the identity with an absolute
// expiry of issuance time + ttl.
func (s *TokenService) Issue(identity model.Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  identity.UserID,
		"username": identity.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
		"iss":      tokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

// Verify parses the token and returns the embedded identity. Expiry and
// signature checks are done by the jwt library; issuer is checked here.
func (s *TokenService) Verify(tokenString string) (*model.Identity, error) {
	if tokenString == "" {
		return nil, ErrNoToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	if iss, ok := claims["iss"].(string); !ok || iss != tokenIssuer {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, ErrInvalidToken
	}
	username, _ := claims["username"].(string)

	return &model.Identity{UserID: userID, Username: username}, nil
}
