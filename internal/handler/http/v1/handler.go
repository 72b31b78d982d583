package v1

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/civic_gateway/internal/auth"
	"github.com/shenikar/civic_gateway/internal/config"
	"github.com/shenikar/civic_gateway/internal/ratelimit"
	"github.com/shenikar/civic_gateway/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	apiName    = "Gov-X India API - AI-Powered Civic Engagement"
	apiVersion = "1.0.0"
)

type Handler struct {
	issueService   service.IssueService
	profileService service.ProfileService
	verifier       auth.TokenVerifier
	limiter        ratelimit.Limiter
	logger         *logrus.Logger
	validate       *validator.Validate
	cfg            *config.Config
	now            func() time.Time
}

// NewHandler собирает хэндлеры; limiter может быть nil, тогда лимит отключен
func NewHandler(
	issueService service.IssueService,
	profileService service.ProfileService,
	verifier auth.TokenVerifier,
	limiter ratelimit.Limiter,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		issueService:   issueService,
		profileService: profileService,
		verifier:       verifier,
		limiter:        limiter,
		logger:         logger,
		validate:       validator.New(),
		cfg:            cfg,
		now:            time.Now,
	}
}

// @Summary API information
// @Description Static information about the API
// @Tags System
// @Produce json
// @Success 200 {object} HomeResponse
// @Router / [get]
func (h *Handler) home(c *gin.Context) {
	c.JSON(http.StatusOK, HomeResponse{
		Message:   apiName,
		Version:   apiVersion,
		Status:    "active",
		Timestamp: h.timestamp(),
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Timestamp: h.timestamp()})
}

// @Summary Verify identity token
// @Description Verify the bearer token and echo the decoded claims
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} VerifyResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/verify [get]
func (h *Handler) verifyToken(c *gin.Context) {
	identity := identityFromContext(c)
	if identity == nil {
		h.respondError(c, h.logger.WithField("method", "verifyToken"), service.ErrIdentityRequired)
		return
	}
	c.JSON(http.StatusOK, ClaimsToVerifyResponse(identity))
}

// @Summary Get user profile
// @Description Profile derived from the identity token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserProfile
// @Failure 401 {object} ErrorResponse
// @Router /auth/profile [get]
func (h *Handler) getProfile(c *gin.Context) {
	log := h.logger.WithField("method", "getProfile")

	profile, err := h.profileService.GetProfile(identityFromContext(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// @Summary Get issues of the current user
// @Description Issues reported by the authenticated user
// @Tags Issues
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserIssuesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /user/issues [get]
func (h *Handler) listUserIssues(c *gin.Context) {
	log := h.logger.WithField("method", "listUserIssues")
	identity := identityFromContext(c)

	issues, err := h.issueService.ListUserIssues(c.Request.Context(), identity)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, UserIssuesResponse{
		Issues: ModelsToIssueResponses(issues),
		Total:  len(issues),
		UserID: identity.UID,
	})
}

// @Summary Create a new issue
// @Description Report a civic issue. The issue is not persisted.
// @Description Responds 201 Created; earlier clients received 200 and should accept any 2xx.
// @Tags Issues
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param issue body CreateIssueRequest true "Issue creation request"
// @Success 201 {object} CreateIssueResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or missing field"
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} map[string]any "Rate limit exceeded"
// @Failure 500 {object} ErrorResponse
// @Router /issues [post]
func (h *Handler) createIssue(c *gin.Context) {
	var raw map[string]json.RawMessage
	var input CreateIssueRequest
	log := h.logger.WithField("method", "createIssue")

	// Тело читается дважды: сначала ключи, затем типизированный DTO
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := missingIssueField(raw); err != nil {
		h.respondError(c, log, err)
		return
	}

	if err := c.ShouldBindBodyWith(&input, binding.JSON); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	issue, err := h.issueService.CreateIssue(c.Request.Context(), DTOToIssueDraft(input), identityFromContext(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, CreateIssueResponse{
		Message: "Issue created successfully",
		Issue:   ModelToIssueResponse(issue),
	})
}

// @Summary Get a list of issues
// @Description Public feed with optional authentication, case-insensitive filters and offset pagination
// @Tags Issues
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Offset" default(0)
// @Param category query string false "Category filter"
// @Param status query string false "Status filter"
// @Success 200 {object} ListIssuesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /issues [get]
func (h *Handler) listIssues(c *gin.Context) {
	var query ListIssuesQuery
	log := h.logger.WithField("method", "listIssues")

	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query parameters"})
		return
	}
	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query parameters"})
		return
	}

	issues, total, err := h.issueService.ListIssues(c.Request.Context(), QueryToIssueFilter(query))
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	authenticated := identityFromContext(c) != nil
	c.JSON(http.StatusOK, ListIssuesResponse{
		Issues:        ModelsToIssueListItems(issues, authenticated),
		Total:         total,
		Limit:         query.Limit,
		Offset:        query.Offset,
		Authenticated: authenticated,
	})
}

// @Summary Get departments
// @Description Static list of departments
// @Tags Reference
// @Produce json
// @Success 200 {object} DepartmentsResponse
// @Failure 500 {object} ErrorResponse
// @Router /departments [get]
func (h *Handler) listDepartments(c *gin.Context) {
	departments, err := h.issueService.ListDepartments(c.Request.Context())
	if err != nil {
		h.respondError(c, h.logger.WithField("method", "listDepartments"), err)
		return
	}
	c.JSON(http.StatusOK, DepartmentsResponse{Departments: departments})
}

// missingIssueField возвращает первый отсутствующий обязательный ключ.
// Пустая строка и null считаются переданными значениями.
func missingIssueField(raw map[string]json.RawMessage) error {
	for _, field := range requiredIssueFields {
		if _, ok := raw[field]; !ok {
			return &service.ValidationError{Field: field}
		}
	}
	return nil
}

func (h *Handler) timestamp() string {
	return h.now().UTC().Format(time.RFC3339)
}
