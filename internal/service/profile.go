package service

import "github.com/shenikar/civic_gateway/internal/models"

// ProfileService строит профиль пользователя из утверждений токена
type ProfileService interface {
	GetProfile(identity *models.Claims) (*models.UserProfile, error)
}

type profileService struct{}

func NewProfileService() ProfileService {
	return profileService{}
}

// GetProfile заполняет значения по умолчанию; роль и счетчики пока фиксированы
func (profileService) GetProfile(identity *models.Claims) (*models.UserProfile, error) {
	if identity == nil {
		return nil, ErrIdentityRequired
	}

	providerData := identity.Provider.Identities
	if providerData == nil {
		providerData = map[string]any{}
	}

	return &models.UserProfile{
		UID:            identity.UID,
		Email:          identity.Email,
		Name:           identity.Name,
		EmailVerified:  identity.EmailVerified,
		Picture:        identity.Picture,
		CreatedAt:      identity.AuthTime,
		ProviderData:   providerData,
		Role:           models.DefaultUserRole,
		IssuesReported: 0,
		IssuesResolved: 0,
	}, nil
}
