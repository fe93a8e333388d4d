package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/avc/payment-risk-gateway/internal/domain"
	"github.com/avc/payment-risk-gateway/internal/service"
)

// PaymentsHandler обрабатывает запросы платежного API
type PaymentsHandler struct {
	paymentService domain.PaymentService
	logger         *zap.Logger
}

// NewPaymentsHandler создает новый PaymentsHandler
func NewPaymentsHandler(paymentService domain.PaymentService, logger *zap.Logger) *PaymentsHandler {
	return &PaymentsHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// CreatePayment принимает платеж и возвращает решение конвейера.
// Деградация оценки риска не превращается в 5xx: транзакция со статусом
// FAILED и объяснением это тоже успешный ответ API.
func (h *PaymentsHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req domain.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	tx, err := h.paymentService.CreatePayment(r.Context(), userID, &req)
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to create payment", zap.Error(err), zap.Int64("user_id", userID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(tx); err != nil {
		h.logger.Error("failed to encode payment response", zap.Error(err))
	}
}

// GetPayments возвращает транзакции пользователя
func (h *PaymentsHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	transactions, err := h.paymentService.GetPayments(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to get payments", zap.Error(err), zap.Int64("user_id", userID))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(transactions) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(transactions); err != nil {
		h.logger.Error("failed to encode payments response", zap.Error(err))
	}
}

// GetPayment возвращает транзакцию по идентификатору
func (h *PaymentsHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")
	tx, err := h.paymentService.GetPayment(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get payment", zap.Error(err), zap.String("transaction_id", id))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(tx); err != nil {
		h.logger.Error("failed to encode payment response", zap.Error(err))
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, service.ErrInvalidAmount) ||
		errors.Is(err, service.ErrInvalidCurrency) ||
		errors.Is(err, service.ErrInvalidSource) ||
		errors.Is(err, service.ErrInvalidEmail)
}
