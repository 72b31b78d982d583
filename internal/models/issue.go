package models

import "time"

const (
	DefaultIssueCategory = "General"
	DefaultIssuePriority = "medium"
	DefaultIssueStatus   = "pending"
	AnonymousUserName    = "Anonymous"
)

// Issue - обращение гражданина о городской проблеме
type Issue struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Department  string    `json:"department"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      string    `json:"user_id"`
	UserEmail   string    `json:"user_email"`
	UserName    string    `json:"user_name"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
}

// IssueFilter - условия выборки списка обращений
type IssueFilter struct {
	Category string
	Status   string
	Limit    int
	Offset   int
}
