package v1

import "github.com/shenikar/civic_gateway/internal/models"

// DTOToIssueDraft преобразует запрос на создание в черновик обращения.
// Категория и приоритет получают значения по умолчанию только при отсутствии
// в запросе, переданная пустая строка сохраняется.
func DTOToIssueDraft(dto CreateIssueRequest) *models.Issue {
	return &models.Issue{
		Title:       deref(dto.Title),
		Description: deref(dto.Description),
		Location:    deref(dto.Location),
		Department:  deref(dto.Department),
		Category:    derefOr(dto.Category, models.DefaultIssueCategory),
		Priority:    derefOr(dto.Priority, models.DefaultIssuePriority),
	}
}

// QueryToIssueFilter преобразует параметры запроса в фильтр
func QueryToIssueFilter(q ListIssuesQuery) models.IssueFilter {
	return models.IssueFilter{
		Category: q.Category,
		Status:   q.Status,
		Limit:    q.Limit,
		Offset:   q.Offset,
	}
}

// ModelToIssueResponse преобразует доменную модель в DTO для ответа
func ModelToIssueResponse(model *models.Issue) *IssueResponse {
	return &IssueResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Location:    model.Location,
		Department:  model.Department,
		Category:    model.Category,
		Priority:    model.Priority,
		Status:      model.Status,
		CreatedAt:   model.CreatedAt,
		UserID:      model.UserID,
		UserEmail:   model.UserEmail,
		UserName:    model.UserName,
		Likes:       model.Likes,
		Comments:    model.Comments,
	}
}

// ModelsToIssueResponses преобразует слайс моделей в слайс DTO
func ModelsToIssueResponses(models []*models.Issue) []*IssueResponse {
	responses := make([]*IssueResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIssueResponse(model)
	}
	return responses
}

// ModelsToIssueListItems - лайк-трекинга нет, is_liked означает лишь
// наличие проверенной личности у запроса
func ModelsToIssueListItems(models []*models.Issue, authenticated bool) []*IssueListItem {
	items := make([]*IssueListItem, len(models))
	for i, model := range models {
		items[i] = &IssueListItem{
			IssueResponse: *ModelToIssueResponse(model),
			IsLiked:       authenticated,
		}
	}
	return items
}

func ClaimsToVerifyResponse(claims *models.Claims) VerifyResponse {
	return VerifyResponse{
		Message: "Token is valid",
		User: VerifiedUser{
			UID:           claims.UID,
			Email:         claims.Email,
			Name:          claims.Name,
			EmailVerified: claims.EmailVerified,
			Firebase:      claims,
		},
	}
}

func deref(value *string) string {
	return derefOr(value, "")
}

func derefOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}
