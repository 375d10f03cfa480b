package token

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/resource-server/internal/model"
)

// DefaultTTL is the access token lifetime when none is configured.
const DefaultTTL = 7 * 24 * time.Hour

// Claims represents JWT claims carrying the caller identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// Validate checks that the decoded payload has the identity shape.
func (c Claims) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.UserID, validation.Required, is.UUID),
		validation.Field(&c.Email, validation.Required),
		validation.Field(&c.Name, validation.Required),
	)
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	ttl       time.Duration
	now       func() time.Time
}

// NewJWT creates a new JWT token manager with the provided secret key and lifetime.
func NewJWT(secretKey string, ttl time.Duration) *JWT {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &JWT{secretKey: secretKey, ttl: ttl, now: time.Now}
}

var _ model.TokenManager = (*JWT)(nil)

// GenerateAccessToken signs a token embedding the identity.
func (j *JWT) GenerateAccessToken(identity model.Identity) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		UserID: identity.ID.String(),
		Email:  identity.Email,
		Name:   identity.Name,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// ParseAccessToken verifies signature and expiry and decodes the identity.
func (j *JWT) ParseAccessToken(tokenString string) (model.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return model.Identity{}, fmt.Errorf("failed to parse access token: %w", err)
	}
	if !token.Valid {
		return model.Identity{}, fmt.Errorf("access token is invalid")
	}
	if err := claims.Validate(); err != nil {
		return model.Identity{}, fmt.Errorf("malformed token payload: %w", err)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return model.Identity{}, fmt.Errorf("malformed user id: %w", err)
	}

	return model.Identity{ID: userID, Email: claims.Email, Name: claims.Name}, nil
}
