package domain

import "time"

// TransactionStatus представляет статус транзакции
type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "PENDING"
	TransactionStatusProcessing TransactionStatus = "PROCESSING"
	TransactionStatusSuccess    TransactionStatus = "SUCCESS"
	TransactionStatusFailed     TransactionStatus = "FAILED"
)

// RiskLevel представляет уровень риска транзакции
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "LOW"
	RiskLevelMedium   RiskLevel = "MEDIUM"
	RiskLevelHigh     RiskLevel = "HIGH"
	RiskLevelCritical RiskLevel = "CRITICAL"
)

// User представляет пользователя системы
type User struct {
	ID           int64     `json:"id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"` // Не отправляем хеш в JSON
	CreatedAt    time.Time `json:"created_at"`
}

// Transaction представляет одну попытку платежа.
// Идентификатор назначается при приеме и не меняется; статус и итог оценки
// риска выставляются конвейером обработки ровно один раз.
type Transaction struct {
	ID              string            `json:"id"`
	UserID          int64             `json:"-"`
	Amount          float64           `json:"amount"`
	Currency        string            `json:"currency"`
	Source          string            `json:"source"`
	Email           string            `json:"email"`
	Status          TransactionStatus `json:"status"`
	Provider        string            `json:"provider,omitempty"`
	RiskScore       *float64          `json:"risk_score,omitempty"` // Может быть null до обработки
	RiskExplanation string            `json:"risk_explanation,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// PaymentRequest представляет входящий платежный запрос
type PaymentRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Source   string  `json:"source"`
	Email    string  `json:"email"`
}

// RiskFactor представляет один взвешенный фактор риска
type RiskFactor struct {
	Name        string  `json:"name"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

// RiskAssessment представляет результат одной оценки риска
// (модельной или fallback). После создания не изменяется.
type RiskAssessment struct {
	TransactionID   string       `json:"transaction_id"`
	RiskScore       float64      `json:"risk_score"`
	RiskLevel       RiskLevel    `json:"risk_level"`
	Explanation     string       `json:"explanation"`
	Factors         []RiskFactor `json:"factors,omitempty"`
	Recommendations []string     `json:"recommendations,omitempty"`
	AssessedAt      time.Time    `json:"assessed_at"`
}
