package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avc/payment-risk-gateway/internal/domain"
	"github.com/avc/payment-risk-gateway/internal/domain/mocks"
	"github.com/avc/payment-risk-gateway/internal/rules"
)

const processorRulesYAML = `
rules:
  - name: high_amount
    enabled: true
    weight: 0.3
    action: flag
    conditions:
      - field: amount
        operator: greater_than
        value: 5000
        description: amount exceeds safe limit
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

func testRulesEngine(t *testing.T) *rules.Engine {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(processorRulesYAML), 0o644))

	engine := rules.NewEngine(path, zap.NewNop())
	require.Equal(t, "file", engine.Source())
	return engine
}

func processorTransaction(amount float64) *domain.Transaction {
	return &domain.Transaction{
		ID:       "tx-proc",
		UserID:   1,
		Amount:   amount,
		Currency: "USD",
		Source:   "tok_test",
		Email:    "donor@example.com",
		Status:   domain.TransactionStatusPending,
	}
}

func assessmentWithScore(txID string, score float64, level domain.RiskLevel) *domain.RiskAssessment {
	return &domain.RiskAssessment{
		TransactionID: txID,
		RiskScore:     score,
		RiskLevel:     level,
		Explanation:   "model assessment",
	}
}

func TestProcessor_Process(t *testing.T) {
	ctx := context.Background()

	t.Run("clean transaction with low score", func(t *testing.T) {
		scorer := mocks.NewRiskScorerMock(t)
		sink := mocks.NewEventSinkMock(t)

		tx := processorTransaction(1000)
		scorer.EXPECT().Assess(mock.Anything, tx).Return(assessmentWithScore(tx.ID, 0.32, domain.RiskLevelMedium))
		sink.EXPECT().Publish(mock.Anything, "transaction.processed", mock.MatchedBy(func(p map[string]any) bool {
			return p["status"] == "PROCESSING" && p["provider"] == "paypal"
		}))

		p := NewProcessor(testRulesEngine(t), scorer, sink, zap.NewNop())
		result := p.Process(ctx, tx)

		require.NotNil(t, result.RiskScore)
		assert.Equal(t, 0.32, *result.RiskScore)
		assert.Equal(t, domain.TransactionStatusProcessing, result.Status)
		assert.Equal(t, "paypal", result.Provider)
		assert.Equal(t, "model assessment", result.RiskExplanation)
	})

	t.Run("blocking rule short-circuits before scoring", func(t *testing.T) {
		scorer := mocks.NewRiskScorerMock(t)
		sink := mocks.NewEventSinkMock(t)

		tx := processorTransaction(75000)
		sink.EXPECT().Publish(mock.Anything, "rules.blocked", mock.MatchedBy(func(p map[string]any) bool {
			blocked, ok := p["rules"].([]string)
			return ok && len(blocked) == 1 && blocked[0] == "huge_amount"
		}))

		p := NewProcessor(testRulesEngine(t), scorer, sink, zap.NewNop())
		result := p.Process(ctx, tx)

		scorer.AssertNotCalled(t, "Assess")
		require.NotNil(t, result.RiskScore)
		assert.Equal(t, 1.0, *result.RiskScore)
		assert.Equal(t, domain.TransactionStatusFailed, result.Status)
		assert.Equal(t, "blocked", result.Provider)
		assert.Equal(t, "blocked by rules: huge_amount", result.RiskExplanation)
	})

	t.Run("final score is max of rules and model", func(t *testing.T) {
		scorer := mocks.NewRiskScorerMock(t)
		sink := mocks.NewEventSinkMock(t)

		// Правило high_amount дает 0.3, модель 0.7: итог 0.7, не 1.0 и не 0.5
		tx := processorTransaction(6000)
		scorer.EXPECT().Assess(mock.Anything, tx).Return(assessmentWithScore(tx.ID, 0.7, domain.RiskLevelHigh))
		sink.EXPECT().Publish(mock.Anything, "transaction.processed", mock.Anything)

		p := NewProcessor(testRulesEngine(t), scorer, sink, zap.NewNop())
		result := p.Process(ctx, tx)

		require.NotNil(t, result.RiskScore)
		assert.Equal(t, 0.7, *result.RiskScore)
		assert.Equal(t, domain.TransactionStatusPending, result.Status)
		assert.Contains(t, result.RiskExplanation, "model assessment")
		assert.Contains(t, result.RiskExplanation, "flagged by rules: high_amount")
	})

	t.Run("rule score dominates low model score", func(t *testing.T) {
		scorer := mocks.NewRiskScorerMock(t)
		sink := mocks.NewEventSinkMock(t)

		tx := processorTransaction(6000)
		scorer.EXPECT().Assess(mock.Anything, tx).Return(assessmentWithScore(tx.ID, 0.2, domain.RiskLevelLow))
		sink.EXPECT().Publish(mock.Anything, "transaction.processed", mock.Anything)

		p := NewProcessor(testRulesEngine(t), scorer, sink, zap.NewNop())
		result := p.Process(ctx, tx)

		require.NotNil(t, result.RiskScore)
		assert.Equal(t, 0.3, *result.RiskScore)
		assert.Equal(t, domain.TransactionStatusProcessing, result.Status)
	})

	t.Run("score at boundary maps to the stricter band", func(t *testing.T) {
		for _, tc := range []struct {
			name   string
			score  float64
			status domain.TransactionStatus
		}{
			{"exactly medium threshold", 0.6, domain.TransactionStatusPending},
			{"just below medium threshold", 0.599999, domain.TransactionStatusProcessing},
			{"exactly critical threshold", 0.9, domain.TransactionStatusFailed},
			{"exactly low threshold", 0.3, domain.TransactionStatusProcessing},
			{"below low threshold", 0.29, domain.TransactionStatusSuccess},
		} {
			t.Run(tc.name, func(t *testing.T) {
				scorer := mocks.NewRiskScorerMock(t)
				sink := mocks.NewEventSinkMock(t)

				tx := processorTransaction(1000)
				scorer.EXPECT().Assess(mock.Anything, tx).Return(assessmentWithScore(tx.ID, tc.score, domain.RiskLevelMedium))
				sink.EXPECT().Publish(mock.Anything, "transaction.processed", mock.Anything)

				p := NewProcessor(testRulesEngine(t), scorer, sink, zap.NewNop())
				result := p.Process(ctx, tx)

				assert.Equal(t, tc.status, result.Status)
			})
		}
	})

	t.Run("panic resolves to conservative failed decision", func(t *testing.T) {
		scorer := mocks.NewRiskScorerMock(t)
		sink := mocks.NewEventSinkMock(t)

		tx := processorTransaction(1000)
		scorer.EXPECT().Assess(mock.Anything, tx).RunAndReturn(func(context.Context, *domain.Transaction) *domain.RiskAssessment {
			panic("scorer exploded")
		})

		p := NewProcessor(testRulesEngine(t), scorer, sink, zap.NewNop())
		result := p.Process(ctx, tx)

		require.NotNil(t, result)
		require.NotNil(t, result.RiskScore)
		assert.Equal(t, 1.0, *result.RiskScore)
		assert.Equal(t, domain.TransactionStatusFailed, result.Status)
		assert.Equal(t, "error", result.Provider)
		assert.Equal(t, "internal processing error", result.RiskExplanation)
	})
}

func TestStatusForScore(t *testing.T) {
	thresholds := rules.RiskThresholds{Low: 0.3, Medium: 0.6, High: 0.8, Critical: 0.9}

	tests := []struct {
		score  float64
		status domain.TransactionStatus
	}{
		{0.0, domain.TransactionStatusSuccess},
		{0.29, domain.TransactionStatusSuccess},
		{0.3, domain.TransactionStatusProcessing},
		{0.5, domain.TransactionStatusProcessing},
		{0.6, domain.TransactionStatusPending},
		{0.8, domain.TransactionStatusPending},
		{0.9, domain.TransactionStatusFailed},
		{1.0, domain.TransactionStatusFailed},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, statusForScore(tt.score, thresholds), "score %v", tt.score)
	}
}

func TestLevelForScore(t *testing.T) {
	thresholds := rules.RiskThresholds{Low: 0.3, Medium: 0.6, High: 0.8, Critical: 0.9}

	tests := []struct {
		score float64
		level domain.RiskLevel
	}{
		{0.1, domain.RiskLevelLow},
		{0.3, domain.RiskLevelMedium},
		{0.8, domain.RiskLevelHigh},
		{0.95, domain.RiskLevelCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, levelForScore(tt.score, thresholds), "score %v", tt.score)
	}
}
