package repository

import (
	"context"
	"strings"
	"time"

	"github.com/shenikar/civic_gateway/internal/models"
	"github.com/shenikar/civic_gateway/internal/service"
)

// CatalogRepository отдает статические данные, загруженные при старте.
// Данные только читаются, поэтому блокировки не нужны.
type CatalogRepository struct {
	issues      []models.Issue
	userIssue   models.Issue
	departments []models.Department
}

func NewCatalogRepository() service.IssueRepository {
	return &CatalogRepository{
		issues:      seedIssues(),
		userIssue:   seedUserIssue(),
		departments: seedDepartments(),
	}
}

// ListIssues фильтрует без учета регистра и возвращает страницу [offset, offset+limit)
// вместе с размером отфильтрованного набора
func (r *CatalogRepository) ListIssues(_ context.Context, filter models.IssueFilter) ([]*models.Issue, int, error) {
	filtered := make([]*models.Issue, 0, len(r.issues))
	for i := range r.issues {
		issue := r.issues[i]
		if filter.Category != "" && !strings.EqualFold(issue.Category, filter.Category) {
			continue
		}
		if filter.Status != "" && !strings.EqualFold(issue.Status, filter.Status) {
			continue
		}
		filtered = append(filtered, &issue)
	}

	total := len(filtered)
	start := min(filter.Offset, total)
	// start+limit может переполнить int при огромном limit
	end := total
	if filter.Limit < total-start {
		end = start + filter.Limit
	}

	return filtered[start:end], total, nil
}

// ListByUser возвращает заглушку из одного обращения, помеченного uid вызывающего
func (r *CatalogRepository) ListByUser(_ context.Context, userID string) ([]*models.Issue, error) {
	issue := r.userIssue
	issue.UserID = userID
	return []*models.Issue{&issue}, nil
}

func (r *CatalogRepository) ListDepartments(_ context.Context) ([]models.Department, error) {
	return append([]models.Department(nil), r.departments...), nil
}

func seedIssues() []models.Issue {
	return []models.Issue{
		{
			ID:          1,
			Title:       "Pothole on MG Road",
			Description: "Large pothole causing accidents",
			Status:      "pending",
			Category:    "Infrastructure",
			Priority:    models.DefaultIssuePriority,
			Location:    "MG Road, Bangalore",
			Department:  "Municipal Corporation",
			CreatedAt:   mustParseTime("2024-01-15T10:00:00Z"),
			UserName:    "John Doe",
			Likes:       15,
			Comments:    3,
		},
		{
			ID:          2,
			Title:       "Broken Street Light",
			Description: "Street light not working for weeks",
			Status:      "in_progress",
			Category:    "Utilities",
			Priority:    models.DefaultIssuePriority,
			Location:    "Park Street, Kolkata",
			Department:  "Electricity Board",
			CreatedAt:   mustParseTime("2024-01-14T15:30:00Z"),
			UserName:    "Jane Smith",
			Likes:       8,
			Comments:    5,
		},
	}
}

func seedUserIssue() models.Issue {
	return models.Issue{
		ID:          1,
		Title:       "Pothole on Main Street",
		Description: "Large pothole causing traffic issues",
		Status:      models.DefaultIssueStatus,
		Category:    models.DefaultIssueCategory,
		Priority:    models.DefaultIssuePriority,
		CreatedAt:   mustParseTime("2024-01-15T10:00:00Z"),
		Location:    "Main Street, Mumbai",
		Department:  "Municipal Corporation",
	}
}

func seedDepartments() []models.Department {
	return []models.Department{
		{ID: "municipal", Name: "Municipal Corporation", Description: "Garbage, sanitation, roads, parks"},
		{ID: "pwd", Name: "Public Works Department", Description: "Road construction, bridges, drainage"},
		{ID: "electricity", Name: "Electricity Board", Description: "Power outages, street lights, cables"},
		{ID: "water", Name: "Water Department", Description: "Water supply, pipelines, sewage"},
		{ID: "traffic", Name: "Traffic Police", Description: "Traffic signals, road safety"},
	}
}

func mustParseTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}
