package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avc/payment-risk-gateway/internal/domain"
)

// PaymentsService реализует domain.PaymentService: принимает платеж,
// сохраняет его и прогоняет через конвейер принятия решения
type PaymentsService struct {
	txRepo    domain.TransactionRepository
	processor domain.TransactionProcessor
	sink      domain.EventSink
	logger    *zap.Logger
}

// NewPaymentsService создает новый PaymentsService
func NewPaymentsService(
	txRepo domain.TransactionRepository,
	processor domain.TransactionProcessor,
	sink domain.EventSink,
	logger *zap.Logger,
) *PaymentsService {
	return &PaymentsService{
		txRepo:    txRepo,
		processor: processor,
		sink:      sink,
		logger:    logger,
	}
}

// CreatePayment принимает платежный запрос, создает транзакцию в статусе
// PENDING и обрабатывает ее. Решение конвейера всегда возвращается вызывающему,
// даже если его не удалось зафиксировать в хранилище.
func (s *PaymentsService) CreatePayment(ctx context.Context, userID int64, req *domain.PaymentRequest) (*domain.Transaction, error) {
	if err := validatePaymentRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	tx := &domain.Transaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		Amount:    req.Amount,
		Currency:  strings.ToUpper(req.Currency),
		Source:    req.Source,
		Email:     req.Email,
		Status:    domain.TransactionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.txRepo.CreateTransaction(ctx, tx); err != nil {
		if errors.Is(err, domain.ErrTransactionExists) {
			return nil, err
		}
		return nil, fmt.Errorf("payment service: failed to create transaction: %w", err)
	}

	s.sink.Publish(ctx, "transaction.created", map[string]any{
		"transaction_id": tx.ID,
		"amount":         tx.Amount,
		"currency":       tx.Currency,
	})

	processed := s.processor.Process(ctx, tx)

	// Решение уже принято, неудача записи не должна его отменять:
	// воркер позже дообработает транзакции без зафиксированного результата
	if err := s.txRepo.UpdateTransactionResult(ctx, processed); err != nil {
		s.logger.Error("failed to persist processing result",
			zap.String("transaction_id", processed.ID),
			zap.Error(err),
		)
	}

	return processed, nil
}

// GetPayments возвращает транзакции пользователя
func (s *PaymentsService) GetPayments(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	transactions, err := s.txRepo.GetTransactionsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("payment service: failed to get transactions for user %d: %w", userID, err)
	}
	return transactions, nil
}

// GetPayment возвращает транзакцию пользователя по идентификатору.
// Чужая транзакция неотличима от несуществующей.
func (s *PaymentsService) GetPayment(ctx context.Context, userID int64, id string) (*domain.Transaction, error) {
	tx, err := s.txRepo.GetTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("payment service: failed to get transaction %q: %w", id, err)
	}

	if tx.UserID != userID {
		return nil, domain.ErrTransactionNotFound
	}

	return tx, nil
}

func validatePaymentRequest(req *domain.PaymentRequest) error {
	if req.Amount <= 0 {
		return ErrInvalidAmount
	}
	if len(req.Currency) != 3 {
		return ErrInvalidCurrency
	}
	if req.Source == "" {
		return ErrInvalidSource
	}
	if !strings.Contains(req.Email, "@") || strings.HasPrefix(req.Email, "@") || strings.HasSuffix(req.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}
