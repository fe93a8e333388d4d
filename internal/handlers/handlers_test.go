package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avc/payment-risk-gateway/internal/domain"
	domainmocks "github.com/avc/payment-risk-gateway/internal/domain/mocks"
	"github.com/avc/payment-risk-gateway/internal/resilience"
	"github.com/avc/payment-risk-gateway/internal/rules"
	"github.com/avc/payment-risk-gateway/internal/service"
)

func TestAuthHandler_Register(t *testing.T) {
	mockService := domainmocks.NewAuthServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewAuthHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Register(mock.Anything, "user", "password1").Return("token", nil).Once()

		body := `{"login":"user","password":"password1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Authorization"), "Bearer token")
	})

	t.Run("User exists", func(t *testing.T) {
		mockService.EXPECT().Register(mock.Anything, "user", "password1").Return("", domain.ErrUserExists).Once()

		body := `{"login":"user","password":"password1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Weak password", func(t *testing.T) {
		mockService.EXPECT().Register(mock.Anything, "user", "short").Return("", service.ErrPasswordTooWeak).Once()

		body := `{"login":"user","password":"short"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		body := `{"login":}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Empty credentials", func(t *testing.T) {
		body := `{"login":"","password":""}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Register(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	mockService := domainmocks.NewAuthServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewAuthHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Login(mock.Anything, "user", "password1").Return("token", nil).Once()

		body := `{"login":"user","password":"password1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Authorization"), "Bearer token")
	})

	t.Run("Invalid credentials", func(t *testing.T) {
		mockService.EXPECT().Login(mock.Anything, "user", "wrong").Return("", domain.ErrInvalidCredentials).Once()

		body := `{"login":"user","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func authedRequest(method, target, body string, userID int64) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	}
	ctx := context.WithValue(req.Context(), UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestPaymentsHandler_CreatePayment(t *testing.T) {
	mockService := domainmocks.NewPaymentServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewPaymentsHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		score := 0.32
		mockService.EXPECT().CreatePayment(mock.Anything, int64(1), mock.Anything).Return(&domain.Transaction{
			ID:        "tx-1",
			UserID:    1,
			Amount:    1000,
			Currency:  "USD",
			Status:    domain.TransactionStatusProcessing,
			Provider:  "paypal",
			RiskScore: &score,
		}, nil).Once()

		body := `{"amount":1000,"currency":"USD","source":"tok_test","email":"donor@example.com"}`
		w := httptest.NewRecorder()

		handler.CreatePayment(w, authedRequest(http.MethodPost, "/api/payments", body, 1))

		assert.Equal(t, http.StatusCreated, w.Code)

		var tx domain.Transaction
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tx))
		assert.Equal(t, "tx-1", tx.ID)
		assert.Equal(t, domain.TransactionStatusProcessing, tx.Status)
		assert.Equal(t, "paypal", tx.Provider)
	})

	t.Run("Degraded pipeline still returns 201", func(t *testing.T) {
		score := 1.0
		mockService.EXPECT().CreatePayment(mock.Anything, int64(1), mock.Anything).Return(&domain.Transaction{
			ID:              "tx-2",
			UserID:          1,
			Status:          domain.TransactionStatusFailed,
			Provider:        "blocked",
			RiskScore:       &score,
			RiskExplanation: "blocked by rules: huge_amount",
		}, nil).Once()

		body := `{"amount":100000,"currency":"USD","source":"tok_test","email":"donor@example.com"}`
		w := httptest.NewRecorder()

		handler.CreatePayment(w, authedRequest(http.MethodPost, "/api/payments", body, 1))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Validation error", func(t *testing.T) {
		mockService.EXPECT().CreatePayment(mock.Anything, int64(1), mock.Anything).Return(nil, service.ErrInvalidAmount).Once()

		body := `{"amount":-5,"currency":"USD","source":"tok_test","email":"donor@example.com"}`
		w := httptest.NewRecorder()

		handler.CreatePayment(w, authedRequest(http.MethodPost, "/api/payments", body, 1))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		w := httptest.NewRecorder()

		handler.CreatePayment(w, authedRequest(http.MethodPost, "/api/payments", `{"amount":}`, 1))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("No user in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/payments", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()

		handler.CreatePayment(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestPaymentsHandler_GetPayments(t *testing.T) {
	mockService := domainmocks.NewPaymentServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewPaymentsHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().GetPayments(mock.Anything, int64(1)).Return([]domain.Transaction{
			{ID: "tx-1", UserID: 1},
			{ID: "tx-2", UserID: 1},
		}, nil).Once()

		w := httptest.NewRecorder()
		handler.GetPayments(w, authedRequest(http.MethodGet, "/api/payments", "", 1))

		assert.Equal(t, http.StatusOK, w.Code)

		var transactions []domain.Transaction
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &transactions))
		assert.Len(t, transactions, 2)
	})

	t.Run("Empty list", func(t *testing.T) {
		mockService.EXPECT().GetPayments(mock.Anything, int64(1)).Return(nil, nil).Once()

		w := httptest.NewRecorder()
		handler.GetPayments(w, authedRequest(http.MethodGet, "/api/payments", "", 1))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestPaymentsHandler_GetPayment(t *testing.T) {
	mockService := domainmocks.NewPaymentServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewPaymentsHandler(mockService, logger)

	router := chi.NewRouter()
	router.Get("/api/payments/{id}", handler.GetPayment)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().GetPayment(mock.Anything, int64(1), "tx-1").
			Return(&domain.Transaction{ID: "tx-1", UserID: 1}, nil).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodGet, "/api/payments/tx-1", "", 1))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		mockService.EXPECT().GetPayment(mock.Anything, int64(1), "missing").
			Return(nil, domain.ErrTransactionNotFound).Once()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(http.MethodGet, "/api/payments/missing", "", 1))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

const handlerRulesYAML = `
rules:
  - name: huge_amount
    enabled: true
    weight: 0.9
    action: block
    conditions:
      - field: amount
        operator: greater_than
        value: 50000
        description: amount exceeds hard limit
providers:
  - name: stripe
    priority: 1
    risk_tolerance: low
    enabled: true
  - name: paypal
    priority: 2
    risk_tolerance: medium
    enabled: true
thresholds:
  low: 0.3
  medium: 0.6
  high: 0.8
  critical: 0.9
`

func newTestRiskHandler(t *testing.T) (*RiskHandler, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(handlerRulesYAML), 0o644))

	engine := rules.NewEngine(path, zap.NewNop())
	stats := func() resilience.BreakerStats {
		return resilience.BreakerStats{Name: "risk-scorer", State: "closed"}
	}
	return NewRiskHandler(engine, stats, zap.NewNop()), path
}

func TestRiskHandler_Evaluate(t *testing.T) {
	handler, _ := newTestRiskHandler(t)

	t.Run("Dry run without block", func(t *testing.T) {
		body := `{"amount":1000,"currency":"USD","source":"tok_test","email":"donor@example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/api/risk/evaluate", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Evaluate(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp evaluateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Zero(t, resp.Score)
		assert.Empty(t, resp.BlockedRules)
		assert.Equal(t, "stripe", resp.Provider)
	})

	t.Run("Dry run with block", func(t *testing.T) {
		body := `{"amount":75000,"currency":"USD","source":"tok_test","email":"donor@example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/api/risk/evaluate", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Evaluate(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp evaluateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, []string{"huge_amount"}, resp.BlockedRules)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/risk/evaluate", bytes.NewBufferString(`{`))
		w := httptest.NewRecorder()

		handler.Evaluate(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRiskHandler_Reload(t *testing.T) {
	handler, path := newTestRiskHandler(t)

	t.Run("Reload from file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/risk/rules/reload", nil)
		w := httptest.NewRecorder()

		handler.Reload(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp reloadResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "file", resp.Source)
		assert.Empty(t, resp.Error)
	})

	t.Run("Broken file degrades to defaults", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

		req := httptest.NewRequest(http.MethodPost, "/api/risk/rules/reload", nil)
		w := httptest.NewRecorder()

		handler.Reload(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp reloadResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "defaults", resp.Source)
		assert.NotEmpty(t, resp.Error)
	})
}

func TestRiskHandler_Breaker(t *testing.T) {
	handler, _ := newTestRiskHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/risk/breaker", nil)
	w := httptest.NewRecorder()

	handler.Breaker(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var stats resilience.BreakerStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, "risk-scorer", stats.Name)
}
