package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrValidation         = errors.New("dados inválidos")
	ErrNotFound           = errors.New("registro não encontrado")
	ErrDuplicate          = errors.New("registro duplicado")
	ErrUnauthorized       = errors.New("não autenticado")
	ErrInvalidCredentials = errors.New("email ou senha inválidos")
	ErrPersistence        = errors.New("falha no banco de dados")
	ErrInsufficientStock  = errors.New("estoque insuficiente")
)

// ValidationError entrada malformada o ausente; Field nombra el campo del formulario.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError construye el error para el campo indicado.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("campo '%s': %s", e.Field, e.Message)
}

// Is permite errors.Is(err, ErrValidation).
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError referencia a una entidad inexistente; Entity la nombra ("produto", "usuário").
type NotFoundError struct {
	Entity string
}

// NewNotFoundError construye el error para la entidad indicada.
func NewNotFoundError(entity string) *NotFoundError {
	return &NotFoundError{Entity: entity}
}

func (e *NotFoundError) Error() string {
	if e.Entity == "" {
		return ErrNotFound.Error()
	}
	return e.Entity + " não encontrado"
}

// Is permite errors.Is(err, ErrNotFound).
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// PersistenceError falla del datastore (conexión, timeout, query). Envuelve el error del driver.
type PersistenceError struct {
	Op  string
	Err error
}

// NewPersistenceError envuelve err indicando la operación.
func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrPersistence).
func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }
