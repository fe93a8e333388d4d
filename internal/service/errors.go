package service

import "errors"

// Ошибки валидации платежного запроса
var (
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidCurrency = errors.New("currency must be a three-letter code")
	ErrInvalidSource   = errors.New("payment source token is required")
	ErrInvalidEmail    = errors.New("payer email is invalid")
	ErrPasswordTooWeak = errors.New("password is too short")
)
