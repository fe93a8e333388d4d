package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/avc/payment-risk-gateway/internal/domain"
	"github.com/avc/payment-risk-gateway/internal/rules"
)

const (
	blockedProviderName = "blocked"
	errorProviderName   = "error"
)

// Processor реализует domain.TransactionProcessor: правила, модельная
// оценка, комбинирование, выбор провайдера и итоговый статус. Любой
// сбой внутри конвейера превращается в консервативное решение, а не
// в ошибку наружу.
type Processor struct {
	engine *rules.Engine
	scorer domain.RiskScorer
	sink   domain.EventSink
	logger *zap.Logger
}

// NewProcessor создает новый Processor
func NewProcessor(engine *rules.Engine, scorer domain.RiskScorer, sink domain.EventSink, logger *zap.Logger) *Processor {
	return &Processor{
		engine: engine,
		scorer: scorer,
		sink:   sink,
		logger: logger,
	}
}

// Process прогоняет транзакцию через конвейер принятия решения и
// возвращает ее с заполненными статусом, провайдером, оценкой риска
// и объяснением. Транзакция по указателю мутируется на месте.
func (p *Processor) Process(ctx context.Context, tx *domain.Transaction) (result *domain.Transaction) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("panic during transaction processing",
				zap.String("transaction_id", tx.ID),
				zap.Any("panic", r),
			)
			score := 1.0
			tx.Status = domain.TransactionStatusFailed
			tx.RiskScore = &score
			tx.Provider = errorProviderName
			tx.RiskExplanation = "internal processing error"
			tx.UpdatedAt = time.Now()
			result = tx
		}
	}()

	// Правила идут первыми: блокировка должна срабатывать до любого
	// похода во внешнюю модель
	eval := p.engine.Evaluate(tx)

	if len(eval.BlockedRules) > 0 {
		score := 1.0
		tx.Status = domain.TransactionStatusFailed
		tx.RiskScore = &score
		tx.Provider = blockedProviderName
		tx.RiskExplanation = "blocked by rules: " + strings.Join(eval.BlockedRules, ", ")
		tx.UpdatedAt = time.Now()

		p.logger.Info("transaction blocked by fraud rules",
			zap.String("transaction_id", tx.ID),
			zap.Strings("rules", eval.BlockedRules),
		)
		p.sink.Publish(ctx, "rules.blocked", map[string]any{
			"transaction_id": tx.ID,
			"rules":          eval.BlockedRules,
		})

		return tx
	}

	assessment := p.scorer.Assess(ctx, tx)

	// Итоговая оценка берет максимум из правил и модели, а не сумму:
	// источники риска не складываются, доминирует худший сигнал
	finalScore := eval.Score
	if assessment.RiskScore > finalScore {
		finalScore = assessment.RiskScore
	}

	thresholds := p.engine.Thresholds()

	tx.Status = statusForScore(finalScore, thresholds)
	tx.RiskScore = &finalScore
	tx.Provider = p.engine.SelectProvider(finalScore)
	tx.RiskExplanation = buildExplanation(assessment, eval)
	tx.UpdatedAt = time.Now()

	p.logger.Info("transaction processed",
		zap.String("transaction_id", tx.ID),
		zap.Float64("risk_score", finalScore),
		zap.String("status", string(tx.Status)),
		zap.String("provider", tx.Provider),
	)
	p.sink.Publish(ctx, "transaction.processed", map[string]any{
		"transaction_id": tx.ID,
		"risk_score":     finalScore,
		"risk_level":     string(levelForScore(finalScore, thresholds)),
		"status":         string(tx.Status),
		"provider":       tx.Provider,
	})

	return tx
}

// statusForScore переводит итоговую оценку в статус. Границы включаются
// в верхнюю полосу: оценка, равная порогу, попадает в более строгий статус
func statusForScore(score float64, t rules.RiskThresholds) domain.TransactionStatus {
	switch {
	case score >= t.Critical:
		return domain.TransactionStatusFailed
	case score >= t.Medium:
		return domain.TransactionStatusPending
	case score >= t.Low:
		return domain.TransactionStatusProcessing
	default:
		return domain.TransactionStatusSuccess
	}
}

func levelForScore(score float64, t rules.RiskThresholds) domain.RiskLevel {
	switch {
	case score >= t.Critical:
		return domain.RiskLevelCritical
	case score >= t.High:
		return domain.RiskLevelHigh
	case score >= t.Low:
		return domain.RiskLevelMedium
	default:
		return domain.RiskLevelLow
	}
}

func buildExplanation(assessment *domain.RiskAssessment, eval rules.Evaluation) string {
	explanation := assessment.Explanation
	if len(eval.Factors) == 0 {
		return explanation
	}

	names := make([]string, 0, len(eval.Factors))
	for _, f := range eval.Factors {
		names = append(names, f.Name)
	}
	flagged := "flagged by rules: " + strings.Join(names, ", ")
	if explanation == "" {
		return flagged
	}
	return explanation + "; " + flagged
}
