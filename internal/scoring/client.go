package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avc/payment-risk-gateway/internal/domain"
	"github.com/avc/payment-risk-gateway/internal/resilience"
	"go.uber.org/zap"
)

// ErrMalformedResponse означает, что модель вернула контент, который
// невозможно разобрать в RiskAssessment. По умолчанию такие ошибки
// не повторяются: повтор вряд ли даст другой результат
var ErrMalformedResponse = errors.New("malformed scoring response")

// ClientConfig содержит параметры клиента модельной оценки
type ClientConfig struct {
	Endpoint string
	APIKey   string
	Model    string
	Timeout  time.Duration
}

// ModelClient реализует domain.RemoteRiskScorer поверх HTTP API
// языковой модели. Вызов ограничен таймаутом http-клиента.
type ModelClient struct {
	cfg        ClientConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewModelClient создает новый клиент модельной оценки
func NewModelClient(cfg ClientConfig, logger *zap.Logger) *ModelClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &ModelClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

type scoreRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type scoreResponse struct {
	RiskScore       float64             `json:"risk_score"`
	RiskLevel       string              `json:"risk_level"`
	Explanation     string              `json:"explanation"`
	Factors         []domain.RiskFactor `json:"factors"`
	Recommendations []string            `json:"recommendations"`
}

// Score запрашивает модельную оценку риска для транзакции
func (c *ModelClient) Score(ctx context.Context, tx *domain.Transaction) (*domain.RiskAssessment, error) {
	payload, err := json.Marshal(scoreRequest{
		Model:  c.cfg.Model,
		Prompt: buildPrompt(tx),
	})
	if err != nil {
		return nil, fmt.Errorf("scoring: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("scoring: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scoring: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("scoring: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scoring: unexpected status code %d", resp.StatusCode)
	}

	var parsed scoreResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		// Сырой ответ в лог для диагностики, сам вызов считается
		// невосстановимым и уходит в fallback без повторов
		c.logger.Warn("failed to parse scoring response",
			zap.String("transaction_id", tx.ID),
			zap.ByteString("body", body),
			zap.Error(err),
		)
		return nil, resilience.Permanent(fmt.Errorf("%w: %v", ErrMalformedResponse, err))
	}

	if parsed.RiskScore < 0 || parsed.RiskScore > 1 {
		c.logger.Warn("scoring response out of range",
			zap.String("transaction_id", tx.ID),
			zap.Float64("risk_score", parsed.RiskScore),
		)
		return nil, resilience.Permanent(fmt.Errorf("%w: risk score %v outside [0, 1]", ErrMalformedResponse, parsed.RiskScore))
	}

	return &domain.RiskAssessment{
		TransactionID:   tx.ID,
		RiskScore:       parsed.RiskScore,
		RiskLevel:       domain.RiskLevel(parsed.RiskLevel),
		Explanation:     parsed.Explanation,
		Factors:         parsed.Factors,
		Recommendations: parsed.Recommendations,
		AssessedAt:      time.Now(),
	}, nil
}

// buildPrompt собирает структурированный промпт из полей транзакции
func buildPrompt(tx *domain.Transaction) string {
	return fmt.Sprintf(
		"Assess the fraud risk of the following payment transaction.\n"+
			"Amount: %.2f %s\n"+
			"Payment source token: %s\n"+
			"Payer email: %s\n"+
			"Respond with a JSON object containing risk_score (0..1), risk_level "+
			"(LOW, MEDIUM, HIGH or CRITICAL), explanation, factors and recommendations.",
		tx.Amount, tx.Currency, tx.Source, tx.Email,
	)
}
