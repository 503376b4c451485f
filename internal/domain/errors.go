package domain

import "errors"

// Ошибки мастера
var (
	ErrInvalidStep     = errors.New("invalid step")
	ErrDateRequired    = errors.New("date must be selected")
	ErrDateUnavailable = errors.New("date is not available")
	ErrWizardCompleted = errors.New("wizard already completed")
	ErrInvalidLevel    = errors.New("invalid cleaning level")
	ErrInvalidService  = errors.New("invalid service type")
	ErrUnknownService  = errors.New("unknown catalog item")
)

// Ошибки оформления заявки
var (
	ErrContactRequired = errors.New("name and phone are required")
	ErrContactNotSet   = errors.New("messaging contact is not configured")
)

// Ошибки сессий и журнала
var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrSubmissionNotFound = errors.New("submission not found")
)
