package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shenikar/civic_gateway/internal/models"
)

const devTokenIssuer = "civic-gateway-dev"

// jwtClaims повторяет поля ID-токена Firebase, uid хранится в sub
type jwtClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email,omitempty"`
	Name          string `json:"name,omitempty"`
	EmailVerified bool   `json:"email_verified,omitempty"`
	Picture       string `json:"picture,omitempty"`
	AuthTime      int64  `json:"auth_time,omitempty"`
}

// JWTVerifier проверяет локально подписанные HS256 токены (AUTH_PROVIDER=jwt)
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(_ context.Context, idToken string) (*models.Claims, error) {
	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(idToken, claims, func(_ *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, &AuthenticationError{Cause: err}
	}
	if !token.Valid {
		return nil, &AuthenticationError{Cause: errors.New("token is invalid")}
	}
	if claims.Subject == "" {
		return nil, &AuthenticationError{Cause: errors.New("token has no subject")}
	}

	result := &models.Claims{
		UID:           claims.Subject,
		Email:         claims.Email,
		Name:          claims.Name,
		EmailVerified: claims.EmailVerified,
		Picture:       claims.Picture,
		AuthTime:      claims.AuthTime,
		Issuer:        claims.Issuer,
		Provider:      models.ProviderInfo{SignInProvider: "custom"},
	}
	if len(claims.Audience) > 0 {
		result.Audience = claims.Audience[0]
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Unix()
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Unix()
	}
	return result, nil
}

// SignDevToken выпускает токен для локальной разработки без Firebase
func SignDevToken(secret string, identity models.Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UID,
			Issuer:    devTokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:         identity.Email,
		Name:          identity.Name,
		EmailVerified: identity.EmailVerified,
		Picture:       identity.Picture,
		AuthTime:      now.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign dev token: %w", err)
	}
	return signed, nil
}
