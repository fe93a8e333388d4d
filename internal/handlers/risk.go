package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/avc/payment-risk-gateway/internal/domain"
	"github.com/avc/payment-risk-gateway/internal/resilience"
	"github.com/avc/payment-risk-gateway/internal/rules"
)

// RiskHandler обрабатывает служебные запросы движка правил:
// сухой прогон оценки, перезагрузку конфигурации и состояние breaker
type RiskHandler struct {
	engine       *rules.Engine
	breakerStats func() resilience.BreakerStats
	logger       *zap.Logger
}

// NewRiskHandler создает новый RiskHandler
func NewRiskHandler(engine *rules.Engine, breakerStats func() resilience.BreakerStats, logger *zap.Logger) *RiskHandler {
	return &RiskHandler{
		engine:       engine,
		breakerStats: breakerStats,
		logger:       logger,
	}
}

type evaluateRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Source   string  `json:"source"`
	Email    string  `json:"email"`
}

type evaluateResponse struct {
	Score        float64             `json:"score"`
	Factors      []domain.RiskFactor `json:"factors"`
	BlockedRules []string            `json:"blocked_rules,omitempty"`
	Provider     string              `json:"provider"`
}

// Evaluate делает сухой прогон движка правил без модельной оценки
// и без сохранения транзакции
func (h *RiskHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	tx := &domain.Transaction{
		Amount:   req.Amount,
		Currency: req.Currency,
		Source:   req.Source,
		Email:    req.Email,
	}

	eval := h.engine.Evaluate(tx)
	resp := evaluateResponse{
		Score:        eval.Score,
		Factors:      eval.Factors,
		BlockedRules: eval.BlockedRules,
		Provider:     h.engine.SelectProvider(eval.Score),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode evaluate response", zap.Error(err))
	}
}

type reloadResponse struct {
	Source string `json:"source"`
	Error  string `json:"error,omitempty"`
}

// Reload перечитывает конфигурацию правил. Неудача не ошибка запроса:
// движок уже откатился на встроенные значения, ответ сообщает источник.
func (h *RiskHandler) Reload(w http.ResponseWriter, r *http.Request) {
	resp := reloadResponse{}
	if err := h.engine.Reload(); err != nil {
		h.logger.Error("rules reload failed, defaults active", zap.Error(err))
		resp.Error = err.Error()
	}
	resp.Source = h.engine.Source()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode reload response", zap.Error(err))
	}
}

// Breaker возвращает снимок состояния circuit breaker оценки риска
func (h *RiskHandler) Breaker(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.breakerStats()); err != nil {
		h.logger.Error("failed to encode breaker stats", zap.Error(err))
	}
}
