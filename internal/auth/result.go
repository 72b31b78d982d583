package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/shenikar/civic_gateway/internal/models"
)

const bearerPrefix = "bearer "

// State - исход аутентификации запроса
type State int

const (
	// NoToken - заголовок Authorization отсутствует или не в формате Bearer
	NoToken State = iota
	// Invalid - токен предъявлен, но провайдер его отклонил
	Invalid
	// Verified - токен проверен, Claims заполнены
	Verified
)

func (s State) String() string {
	switch s {
	case NoToken:
		return "no_token"
	case Invalid:
		return "invalid"
	case Verified:
		return "verified"
	}
	return "unknown"
}

// Result явно различает "токена нет" и "токен невалиден"
type Result struct {
	State  State
	Claims *models.Claims
	Err    error
}

// Authenticated сообщает, есть ли у запроса проверенная личность
func (r Result) Authenticated() bool {
	return r.State == Verified && r.Claims != nil
}

// BearerToken извлекает токен из значения заголовка Authorization
func BearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", false
	}
	return token, true
}

// Authenticate выполняет один синхронный вызов провайдера без повторов
func Authenticate(ctx context.Context, verifier TokenVerifier, header string) Result {
	token, ok := BearerToken(header)
	if !ok {
		return Result{State: NoToken}
	}

	claims, err := verifier.Verify(ctx, token)
	if err != nil {
		var authErr *AuthenticationError
		if !errors.As(err, &authErr) {
			err = &AuthenticationError{Cause: err}
		}
		return Result{State: Invalid, Err: err}
	}
	if claims == nil || claims.UID == "" {
		return Result{State: Invalid, Err: &AuthenticationError{Cause: errors.New("token has no uid")}}
	}

	return Result{State: Verified, Claims: claims}
}
