package domain

import (
	"context"
	"time"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	CreateUser(ctx context.Context, login, passwordHash string) (*User, error)
	GetUserByLogin(ctx context.Context, login string) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
}

// TransactionRepository определяет методы для работы с транзакциями
type TransactionRepository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransactionByID(ctx context.Context, id string) (*Transaction, error)
	GetTransactionsByUserID(ctx context.Context, userID int64) ([]Transaction, error)
	UpdateTransactionResult(ctx context.Context, tx *Transaction) error
	GetUndecidedTransactions(ctx context.Context, cutoff time.Time) ([]Transaction, error)
}

// KeyValueCache определяет обобщенный кеш ключ-значение с TTL.
// Недоступность кеша деградирует до "всегда промах" и никогда
// не прерывает обработку запроса.
type KeyValueCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// RemoteRiskScorer определяет внешний модельный вызов оценки риска
type RemoteRiskScorer interface {
	Score(ctx context.Context, tx *Transaction) (*RiskAssessment, error)
}

// RiskScorer определяет полный конвейер оценки риска
// (кеш -> circuit breaker -> retry -> внешний вызов -> fallback).
// Assess всегда возвращает валидную оценку, ошибки не распространяются.
type RiskScorer interface {
	Assess(ctx context.Context, tx *Transaction) *RiskAssessment
}

// TransactionProcessor определяет оркестрацию обработки транзакции
type TransactionProcessor interface {
	Process(ctx context.Context, tx *Transaction) *Transaction
}

// EventSink определяет fire-and-forget публикацию событий.
// Ошибки публикации поглощаются и не влияют на корректность.
type EventSink interface {
	Publish(ctx context.Context, event string, payload map[string]any)
}

// AuthService определяет методы аутентификации
type AuthService interface {
	Register(ctx context.Context, login, password string) (string, error)
	Login(ctx context.Context, login, password string) (string, error)
}

// PaymentService определяет методы приема и чтения платежей
type PaymentService interface {
	CreatePayment(ctx context.Context, userID int64, req *PaymentRequest) (*Transaction, error)
	GetPayments(ctx context.Context, userID int64) ([]Transaction, error)
	GetPayment(ctx context.Context, userID int64, id string) (*Transaction, error)
}
