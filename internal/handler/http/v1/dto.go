package v1

import (
	"time"

	"github.com/shenikar/civic_gateway/internal/models"
)

// CreateIssueRequest DTO для создания обращения.
// Наличие обязательных ключей проверяется по сырому JSON (см. requiredIssueFields),
// поэтому явный null считается переданным значением.
// @Description DTO для создания обращения
type CreateIssueRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Department  *string `json:"department"`
	Category    *string `json:"category,omitempty"`
	Priority    *string `json:"priority,omitempty"`
}

// requiredIssueFields - обязательные ключи в порядке проверки
var requiredIssueFields = []string{"title", "description", "location", "department"}

// ListIssuesQuery параметры выборки списка обращений
type ListIssuesQuery struct {
	Limit    int    `form:"limit,default=10" validate:"min=0"`
	Offset   int    `form:"offset,default=0" validate:"min=0"`
	Category string `form:"category"`
	Status   string `form:"status"`
}

// IssueResponse DTO для ответа с информацией об обращении
// @Description DTO для ответа с информацией об обращении
type IssueResponse struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Department  string    `json:"department"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      string    `json:"user_id,omitempty"`
	UserEmail   string    `json:"user_email,omitempty"`
	UserName    string    `json:"user_name,omitempty"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
}

// IssueListItem - элемент публичной ленты с отметкой "нравится"
type IssueListItem struct {
	IssueResponse
	IsLiked bool `json:"is_liked"`
}

// ListIssuesResponse DTO для ответа со списком обращений
type ListIssuesResponse struct {
	Issues        []*IssueListItem `json:"issues"`
	Total         int              `json:"total"`
	Limit         int              `json:"limit"`
	Offset        int              `json:"offset"`
	Authenticated bool             `json:"authenticated"`
}

// CreateIssueResponse DTO для ответа на создание обращения
type CreateIssueResponse struct {
	Message string         `json:"message"`
	Issue   *IssueResponse `json:"issue"`
}

// UserIssuesResponse DTO со списком обращений пользователя
type UserIssuesResponse struct {
	Issues []*IssueResponse `json:"issues"`
	Total  int              `json:"total"`
	UserID string           `json:"user_id"`
}

// VerifiedUser - личность из проверенного токена
type VerifiedUser struct {
	UID           string         `json:"uid"`
	Email         string         `json:"email"`
	Name          string         `json:"name"`
	EmailVerified bool           `json:"email_verified"`
	Firebase      *models.Claims `json:"firebase"`
}

// VerifyResponse DTO для ответа /auth/verify
type VerifyResponse struct {
	Message string       `json:"message"`
	User    VerifiedUser `json:"user"`
}

// DepartmentsResponse DTO со справочником ведомств
type DepartmentsResponse struct {
	Departments []models.Department `json:"departments"`
}

// HomeResponse DTO для корневого маршрута
type HomeResponse struct {
	Message   string `json:"message"`
	Version   string `json:"version"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// HealthResponse DTO для проверки состояния
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse DTO для ошибок
type ErrorResponse struct {
	Error string `json:"error"`
}
