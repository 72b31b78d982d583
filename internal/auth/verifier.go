package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/civic_gateway/internal/models"
)

// ErrProviderUnavailable возвращается, когда провайдер идентификации не был инициализирован
var ErrProviderUnavailable = errors.New("identity provider is not configured")

// TokenVerifier проверяет bearer-токен у внешнего провайдера и возвращает набор утверждений
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*models.Claims, error)
}

// AuthenticationError - токен отсутствует, невалиден или просрочен
type AuthenticationError struct {
	Cause error
}

func (e *AuthenticationError) Error() string {
	if e.Cause == nil {
		return "Invalid authentication credentials"
	}
	return fmt.Sprintf("Invalid authentication credentials: %v", e.Cause)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Cause
}

// UnavailableVerifier используется, если FIREBASE_CONFIG не задан:
// любая проверка завершается ошибкой до исправления конфигурации.
type UnavailableVerifier struct{}

func (UnavailableVerifier) Verify(_ context.Context, _ string) (*models.Claims, error) {
	return nil, &AuthenticationError{Cause: ErrProviderUnavailable}
}
