package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/civic_gateway/internal/models"
	"github.com/shenikar/civic_gateway/internal/webhook"
	"github.com/sirupsen/logrus"
)

// placeholderIssueID - обращения не сохраняются, поэтому id фиксирован
const placeholderIssueID = 12345

// IssueRepository определяет контракт для чтения каталога обращений
type IssueRepository interface {
	ListIssues(ctx context.Context, filter models.IssueFilter) ([]*models.Issue, int, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Issue, error)
	ListDepartments(ctx context.Context) ([]models.Department, error)
}

// IssueService определяет контракт бизнес-логики обращений
type IssueService interface {
	ListIssues(ctx context.Context, filter models.IssueFilter) ([]*models.Issue, int, error)
	CreateIssue(ctx context.Context, draft *models.Issue, identity *models.Claims) (*models.Issue, error)
	ListUserIssues(ctx context.Context, identity *models.Claims) ([]*models.Issue, error)
	ListDepartments(ctx context.Context) ([]models.Department, error)
}

type issueService struct {
	repo      IssueRepository
	publisher webhook.IssueEventPublisher
	logger    *logrus.Logger
	now       func() time.Time
}

func NewIssueService(repo IssueRepository, logger *logrus.Logger, publisher webhook.IssueEventPublisher) IssueService {
	return &issueService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// ListIssues возвращает страницу обращений и размер отфильтрованного набора
func (s *issueService) ListIssues(ctx context.Context, filter models.IssueFilter) ([]*models.Issue, int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "issue",
		"method":   "ListIssues",
		"category": filter.Category,
		"status":   filter.Status,
		"limit":    filter.Limit,
		"offset":   filter.Offset,
	})
	log.Debug("Listing issues")

	issues, total, err := s.repo.ListIssues(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list issues from repository")
		return nil, 0, fmt.Errorf("service: could not list issues: %w", err)
	}

	log.WithField("count", len(issues)).Debug("Issues listed successfully")
	return issues, total, nil
}

// CreateIssue собирает обращение с серверными полями. Запись не сохраняется:
// каждый вызов независим, событие уходит в очередь вебхуков.
func (s *issueService) CreateIssue(ctx context.Context, draft *models.Issue, identity *models.Claims) (*models.Issue, error) {
	if identity == nil {
		return nil, ErrIdentityRequired
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "issue",
		"method":  "CreateIssue",
		"user_id": identity.UID,
	})
	log.Info("Attempting to create a new issue")

	issue := &models.Issue{
		ID:          placeholderIssueID,
		Title:       draft.Title,
		Description: draft.Description,
		Location:    draft.Location,
		Department:  draft.Department,
		Category:    draft.Category,
		Priority:    draft.Priority,
		Status:      models.DefaultIssueStatus,
		CreatedAt:   s.now().UTC(),
		UserID:      identity.UID,
		UserEmail:   identity.Email,
		UserName:    withDefault(identity.Name, models.AnonymousUserName),
	}

	event := webhook.IssueEvent{
		Type:      webhook.EventIssueCreated,
		Issue:     issue,
		Timestamp: issue.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		// Доставка вебхука не должна ломать создание обращения
		log.WithError(err).Warn("Failed to publish issue event")
	}

	log.WithField("issue_id", issue.ID).Info("Issue created successfully")
	return issue, nil
}

// ListUserIssues возвращает обращения текущего пользователя
func (s *issueService) ListUserIssues(ctx context.Context, identity *models.Claims) ([]*models.Issue, error) {
	if identity == nil {
		return nil, ErrIdentityRequired
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "issue",
		"method":  "ListUserIssues",
		"user_id": identity.UID,
	})

	issues, err := s.repo.ListByUser(ctx, identity.UID)
	if err != nil {
		log.WithError(err).Error("Failed to list user issues from repository")
		return nil, fmt.Errorf("service: could not list user issues: %w", err)
	}
	return issues, nil
}

func (s *issueService) ListDepartments(ctx context.Context) ([]models.Department, error) {
	departments, err := s.repo.ListDepartments(ctx)
	if err != nil {
		s.logger.WithField("method", "ListDepartments").WithError(err).Error("Failed to list departments")
		return nil, fmt.Errorf("service: could not list departments: %w", err)
	}
	return departments, nil
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
