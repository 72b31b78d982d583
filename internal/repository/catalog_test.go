package repository

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/shenikar/civic_gateway/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListIssues_NoFilter(t *testing.T) {
	repo := NewCatalogRepository()

	issues, total, err := repo.ListIssues(context.Background(), models.IssueFilter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, issues, 2)
	assert.Equal(t, 1, issues[0].ID)
	assert.Equal(t, 2, issues[1].ID)
}

func TestListIssues_CategoryCaseInsensitive(t *testing.T) {
	repo := NewCatalogRepository()

	for _, category := range []string{"Infrastructure", "infrastructure", "INFRASTRUCTURE"} {
		issues, total, err := repo.ListIssues(context.Background(), models.IssueFilter{Category: category, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		for _, issue := range issues {
			assert.Equal(t, "infrastructure", strings.ToLower(issue.Category))
		}
	}
}

func TestListIssues_StatusFilter(t *testing.T) {
	repo := NewCatalogRepository()

	issues, total, err := repo.ListIssues(context.Background(), models.IssueFilter{Status: "IN_PROGRESS", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, issues, 1)
	assert.Equal(t, "Broken Street Light", issues[0].Title)

	issues, total, err = repo.ListIssues(context.Background(), models.IssueFilter{Status: "resolved", Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, issues)
}

func TestListIssues_Pagination(t *testing.T) {
	repo := NewCatalogRepository()

	issues, total, err := repo.ListIssues(context.Background(), models.IssueFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, issues, 1)
	assert.Equal(t, 2, issues[0].ID)

	// Отфильтрованный набор из одного элемента: вторая позиция пуста
	issues, total, err = repo.ListIssues(context.Background(), models.IssueFilter{Category: "Utilities", Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Empty(t, issues)

	issues, _, err = repo.ListIssues(context.Background(), models.IssueFilter{Limit: 0})
	require.NoError(t, err)
	assert.Empty(t, issues)

	issues, _, err = repo.ListIssues(context.Background(), models.IssueFilter{Limit: 5, Offset: 50})
	require.NoError(t, err)
	assert.Empty(t, issues)

	// Огромный limit не должен переполнять границу страницы
	assert.NotPanics(t, func() {
		issues, total, err = repo.ListIssues(context.Background(), models.IssueFilter{Limit: math.MaxInt, Offset: 1})
	})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, issues, 1)
	assert.Equal(t, 2, issues[0].ID)

	issues, _, err = repo.ListIssues(context.Background(), models.IssueFilter{Limit: math.MaxInt, Offset: math.MaxInt})
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestListIssues_ReturnsCopies(t *testing.T) {
	repo := NewCatalogRepository()

	issues, _, err := repo.ListIssues(context.Background(), models.IssueFilter{Limit: 10})
	require.NoError(t, err)
	issues[0].Title = "mutated"

	again, _, err := repo.ListIssues(context.Background(), models.IssueFilter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, "Pothole on MG Road", again[0].Title)
}

func TestListByUser(t *testing.T) {
	repo := NewCatalogRepository()

	issues, err := repo.ListByUser(context.Background(), "uid-7")
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "uid-7", issues[0].UserID)
	assert.Equal(t, "Pothole on Main Street", issues[0].Title)

	other, err := repo.ListByUser(context.Background(), "uid-8")
	require.NoError(t, err)
	assert.Equal(t, "uid-8", other[0].UserID)
	assert.Equal(t, "uid-7", issues[0].UserID)
}

func TestListDepartments(t *testing.T) {
	repo := NewCatalogRepository()

	departments, err := repo.ListDepartments(context.Background())
	require.NoError(t, err)
	require.Len(t, departments, 5)
	assert.Equal(t, "municipal", departments[0].ID)
	assert.Equal(t, "Traffic Police", departments[4].Name)

	departments[0].Name = "changed"
	fresh, _ := repo.ListDepartments(context.Background())
	assert.Equal(t, "Municipal Corporation", fresh[0].Name)
}
