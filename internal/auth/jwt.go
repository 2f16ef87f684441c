// internal/auth/jwt.go
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

type Claims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	Type   string `json:"typ"` // "access" | "refresh"
	jwt.RegisteredClaims
}

type Pair struct {
	Access    string
	Refresh   string
	AccessExp time.Time
}

// GeneratePair signs an access and a refresh token for the same identity.
func (tm *TokenManager) GeneratePair(userID, role string) (Pair, error) {
	now := time.Now()

	access, accessExp, err := tm.sign(userID, role, TokenAccess, now, tm.accessTTL, tm.accessSecret)
	if err != nil {
		return Pair{}, err
	}
	refresh, _, err := tm.sign(userID, role, TokenRefresh, now, tm.refreshTTL, tm.refreshSecret)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Access: access, Refresh: refresh, AccessExp: accessExp}, nil
}

func (tm *TokenManager) sign(userID, role, typ string, now time.Time, ttl time.Duration, secret []byte) (string, time.Time, error) {
	exp := now.Add(ttl)
	claims := Claims{
		UserID: userID,
		Role:   role,
		Type:   typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	return s, exp, err
}

// ParseAccess accepts only access tokens.
func (tm *TokenManager) ParseAccess(tokenStr string) (*Claims, error) {
	return parse(tokenStr, tm.accessSecret, TokenAccess)
}

// ParseRefresh accepts only refresh tokens.
func (tm *TokenManager) ParseRefresh(tokenStr string) (*Claims, error) {
	return parse(tokenStr, tm.refreshSecret, TokenRefresh)
}

func parse(tokenStr string, secret []byte, typ string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if claims.Type != typ || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
