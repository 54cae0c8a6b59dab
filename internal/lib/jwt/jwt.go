package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Generator issues and parses the HS256 token pair that backs the
// authentication gate.
type Generator struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewGenerator(secret string, accessTTL, refreshTTL time.Duration) *Generator {
	return &Generator{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GeneratePair returns an access and a refresh token for the user.
func (g *Generator) GeneratePair(userID string) (accessToken string, refreshToken string, err error) {
	const op = "jwt.Generator.GeneratePair"

	accessToken, err = g.sign(userID, "access", g.accessTTL)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}

	refreshToken, err = g.sign(userID, "refresh", g.refreshTTL)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}

	return accessToken, refreshToken, nil
}

// Parse validates an access token and returns its subject. Refresh tokens
// carry a longer TTL and are only ever exchanged, so any token not stamped as
// an access token is rejected here.
func (g *Generator) Parse(tokenString string) (string, error) {
	const op = "jwt.Generator.Parse"

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if typ, _ := claims["typ"].(string); typ != "access" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return sub, nil
}

func (g *Generator) sign(userID, typ string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub": userID,
		"typ": typ,
		"iat": now.Unix(),
	}
	if ttl > 0 {
		claims["exp"] = now.Add(ttl).Unix()
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
}
