package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"film_api/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long an issued token stays valid unless configured otherwise
const DefaultTokenTTL = time.Hour

var (
	ErrTokenMissing = errors.New("token missing")
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

// JWTClaims custom claims for JWT
type JWTClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Identity rebuilds the caller identity embedded in the token
func (c *JWTClaims) Identity() model.Identity {
	return model.Identity{ID: c.UserID, Username: c.Username, Role: c.Role}
}

// JWTUtil provides JWT generation and validation
type JWTUtil struct {
	secretKey string
	ttl       time.Duration
	now       func() time.Time
}

// NewJWTUtil creates a new JWTUtil. A non-positive ttl falls back to DefaultTokenTTL.
func NewJWTUtil(secretKey string, ttl time.Duration) *JWTUtil {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTUtil{secretKey: secretKey, ttl: ttl, now: time.Now}
}

// TTL reports the lifetime given to issued tokens
func (ju *JWTUtil) TTL() time.Duration {
	return ju.ttl
}

// GenerateToken signs a token carrying the identity, expiring ttl from now
func (ju *JWTUtil) GenerateToken(identity model.Identity) (string, error) {
	now := ju.now()
	claims := &JWTClaims{
		UserID:   identity.ID,
		Username: identity.Username,
		Role:     identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ju.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   strconv.FormatInt(identity.ID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(ju.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken verifies signature and expiry. The returned error always
// matches one of ErrTokenMissing, ErrTokenInvalid or ErrTokenExpired.
func (ju *JWTUtil) ValidateToken(tokenString string) (*JWTClaims, error) {
	if tokenString == "" {
		return nil, ErrTokenMissing
	}

	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ju.secretKey), nil
	}, jwt.WithTimeFunc(ju.now), jwt.WithExpirationRequired())

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.UserID == 0 || claims.Role == "" {
		return nil, fmt.Errorf("%w: identity claims missing", ErrTokenInvalid)
	}
	return claims, nil
}
