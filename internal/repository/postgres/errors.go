package postgres

import "github.com/avc/payment-risk-gateway/internal/domain"

// Репозитории возвращают доменные sentinel-ошибки, чтобы сервисный слой
// не зависел от деталей хранилища
var (
	ErrUserExists          = domain.ErrUserExists
	ErrUserNotFound        = domain.ErrUserNotFound
	ErrTransactionExists   = domain.ErrTransactionExists
	ErrTransactionNotFound = domain.ErrTransactionNotFound
)

// Код ошибки PostgreSQL для нарушения уникальности
const uniqueViolationCode = "23505"
