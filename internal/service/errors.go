package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound - запрошенная запись отсутствует
	ErrNotFound = errors.New("not found")
	// ErrIdentityRequired - операция требует проверенной личности
	ErrIdentityRequired = errors.New("authenticated identity required")
)

// ValidationError - в запросе на создание нет обязательного поля
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Missing required field: %s", e.Field)
}
