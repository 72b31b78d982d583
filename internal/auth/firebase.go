package auth

import (
	"context"
	"encoding/json"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/shenikar/civic_gateway/internal/models"
)

// idTokenVerifier - часть *auth.Client, которая нам нужна
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// FirebaseVerifier делегирует проверку Firebase Admin SDK
type FirebaseVerifier struct {
	client idTokenVerifier
}

// NewFirebaseVerifier инициализирует приложение Firebase из JSON сервисного аккаунта
func NewFirebaseVerifier(ctx context.Context, serviceAccountJSON, projectID string) (*FirebaseVerifier, error) {
	if !json.Valid([]byte(serviceAccountJSON)) {
		return nil, fmt.Errorf("firebase service account is not valid JSON")
	}

	var fbCfg *firebase.Config
	if projectID != "" {
		fbCfg = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, fbCfg, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firebase auth client: %w", err)
	}

	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (*models.Claims, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, &AuthenticationError{Cause: err}
	}
	return claimsFromFirebaseToken(token), nil
}

func claimsFromFirebaseToken(token *fbauth.Token) *models.Claims {
	claims := &models.Claims{
		UID:       token.UID,
		AuthTime:  token.AuthTime,
		Issuer:    token.Issuer,
		Audience:  token.Audience,
		IssuedAt:  token.IssuedAt,
		ExpiresAt: token.Expires,
		Provider: models.ProviderInfo{
			SignInProvider: token.Firebase.SignInProvider,
			Tenant:         token.Firebase.Tenant,
			Identities:     token.Firebase.Identities,
		},
		Extra: token.Claims,
	}
	if claims.UID == "" {
		claims.UID = token.Subject
	}

	claims.Email, _ = token.Claims["email"].(string)
	claims.Name, _ = token.Claims["name"].(string)
	claims.Picture, _ = token.Claims["picture"].(string)
	claims.EmailVerified, _ = token.Claims["email_verified"].(bool)

	return claims
}
