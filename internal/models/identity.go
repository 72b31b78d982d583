package models

// ProviderInfo - метаданные провайдера идентификации из токена
type ProviderInfo struct {
	SignInProvider string         `json:"sign_in_provider,omitempty"`
	Tenant         string         `json:"tenant,omitempty"`
	Identities     map[string]any `json:"identities,omitempty"`
}

// Claims - декодированный набор утверждений из токена
type Claims struct {
	UID           string         `json:"uid"`
	Email         string         `json:"email,omitempty"`
	Name          string         `json:"name,omitempty"`
	EmailVerified bool           `json:"email_verified"`
	Picture       string         `json:"picture,omitempty"`
	AuthTime      int64          `json:"auth_time,omitempty"`
	Issuer        string         `json:"iss,omitempty"`
	Audience      string         `json:"aud,omitempty"`
	IssuedAt      int64          `json:"iat,omitempty"`
	ExpiresAt     int64          `json:"exp,omitempty"`
	Provider      ProviderInfo   `json:"firebase"`
	Extra         map[string]any `json:"claims,omitempty"`
}

// UserProfile строится целиком из токена, отдельного хранилища нет
type UserProfile struct {
	UID            string         `json:"uid"`
	Email          string         `json:"email"`
	Name           string         `json:"name"`
	EmailVerified  bool           `json:"email_verified"`
	Picture        string         `json:"picture"`
	CreatedAt      int64          `json:"created_at,omitempty"`
	ProviderData   map[string]any `json:"provider_data"`
	Role           string         `json:"role"`
	IssuesReported int            `json:"issues_reported"`
	IssuesResolved int            `json:"issues_resolved"`
}

const DefaultUserRole = "citizen"
