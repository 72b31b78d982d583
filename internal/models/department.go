package models

// Department - справочник ведомств, неизменяемый после старта
type Department struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
