package service

import (
	"errors"
	"fmt"
)

// Ошибки взаимодействия с бэкендом
var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrOrderRejected    = errors.New("order rejected by order service")
)

// PricingError представляет отказ сервиса цен посчитать стоимость
type PricingError struct {
	StatusCode int
	Message    string
}

func (e *PricingError) Error() string {
	return fmt.Sprintf("pricing failed with status %d: %s", e.StatusCode, e.Message)
}

// NewPricingError создает новую ошибку расчета цены
func NewPricingError(statusCode int, message string) *PricingError {
	return &PricingError{StatusCode: statusCode, Message: message}
}
