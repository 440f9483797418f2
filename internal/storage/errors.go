package storage

import (
	"errors"
	"fmt"
)

// Классификация ошибок хранилища. Все нарушения ограничений БД переводятся
// в эти виды на границе слоя storage, сырые ошибки драйвера наружу не выходят.
var (
	ErrNotFound      = errors.New("not found")
	ErrRefNotFound   = errors.New("referenced entity not found")
	ErrConflict      = errors.New("conflict")
	ErrDependentRows = errors.New("dependent rows exist")
	ErrValidation    = errors.New("validation failed")
)

// ConflictError — нарушение уникальности. Field указывает, какое именно
// поле конфликтует (name, article, workshop_id), фронту это нужно для
// осмысленного сообщения.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	if e.Field == "" {
		return "duplicate value"
	}
	return fmt.Sprintf("duplicate value for %q", e.Field)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
