package rules

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/avc/payment-risk-gateway/internal/domain"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// defaultProviderName возвращается, когда список провайдеров пуст
const defaultProviderName = "stripe"

// Evaluation представляет результат проверки транзакции по правилам
type Evaluation struct {
	Score        float64             `json:"score"`
	Factors      []domain.RiskFactor `json:"factors"`
	BlockedRules []string            `json:"blocked_rules"`
}

// snapshot хранит активную конфигурацию и ее источник.
// Заменяется целиком при перезагрузке: конкурентные читатели никогда
// не видят наполовину обновленный набор правил.
type snapshot struct {
	cfg    *Config
	source string
}

// Engine вычисляет правила мошенничества над транзакцией и выбирает
// провайдера по итоговому риску. Чистая функция над конфигурацией и входом.
type Engine struct {
	path    string
	logger  *zap.Logger
	now     func() time.Time
	current atomic.Pointer[snapshot]
}

// NewEngine создает движок правил и сразу загружает конфигурацию.
// Ошибка загрузки не фатальна: включается встроенный набор по умолчанию.
func NewEngine(path string, logger *zap.Logger) *Engine {
	e := &Engine{
		path:   path,
		logger: logger,
		now:    time.Now,
	}
	if err := e.Reload(); err != nil {
		logger.Error("failed to load rule config, using embedded defaults", zap.Error(err))
	}
	return e
}

// Reload перечитывает декларативную конфигурацию из файла.
// При любой ошибке чтения или валидации активируется встроенный набор
// по умолчанию, а ошибка возвращается для логирования.
func (e *Engine) Reload() error {
	if e.path == "" {
		e.current.Store(&snapshot{cfg: defaultConfig(), source: "defaults"})
		return nil
	}

	data, err := os.ReadFile(e.path)
	if err != nil {
		e.current.Store(&snapshot{cfg: defaultConfig(), source: "defaults"})
		return fmt.Errorf("rules: failed to read config %s: %w", e.path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		e.current.Store(&snapshot{cfg: defaultConfig(), source: "defaults"})
		return fmt.Errorf("rules: failed to parse config %s: %w", e.path, err)
	}

	if err := validate(cfg); err != nil {
		e.current.Store(&snapshot{cfg: defaultConfig(), source: "defaults"})
		return fmt.Errorf("rules: invalid config %s: %w", e.path, err)
	}

	e.current.Store(&snapshot{cfg: cfg, source: "file"})
	e.logger.Info("rule config loaded",
		zap.String("path", e.path),
		zap.Int("rules", len(cfg.Rules)),
		zap.Int("providers", len(cfg.Providers)),
	)
	return nil
}

// Source возвращает источник активной конфигурации: "file" или "defaults"
func (e *Engine) Source() string {
	return e.current.Load().source
}

// Thresholds возвращает активные границы риска
func (e *Engine) Thresholds() RiskThresholds {
	return e.current.Load().cfg.Thresholds
}

// Config возвращает активную конфигурацию (для диагностики)
func (e *Engine) Config() *Config {
	return e.current.Load().cfg
}

// Evaluate проверяет транзакцию по всем включенным правилам.
// Веса сработавших правил суммируются, итог ограничивается 1.0.
// Правила с action=block попадают в BlockedRules.
func (e *Engine) Evaluate(tx *domain.Transaction) Evaluation {
	cfg := e.current.Load().cfg

	eval := Evaluation{
		Factors:      []domain.RiskFactor{},
		BlockedRules: []string{},
	}

	var total float64
	for _, rule := range cfg.Rules {
		if !rule.Enabled {
			continue
		}

		matched, descriptions := e.matchRule(rule, tx)
		if !matched {
			continue
		}

		total += rule.Weight
		eval.Factors = append(eval.Factors, domain.RiskFactor{
			Name:        rule.Name,
			Weight:      rule.Weight,
			Description: strings.Join(descriptions, "; "),
		})

		if rule.Action == ActionBlock {
			eval.BlockedRules = append(eval.BlockedRules, rule.Name)
		}
	}

	eval.Score = min(1.0, total)
	return eval
}

// SelectProvider выбирает провайдера по итоговому риску: включенные
// провайдеры перебираются по возрастанию приоритета, возвращается первый,
// чей потолок допуска не ниже оценки. Если никто не подходит, берется
// последний по приоритету как наиболее толерантный к риску.
func (e *Engine) SelectProvider(riskScore float64) string {
	cfg := e.current.Load().cfg

	var enabled []ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return defaultProviderName
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	for _, p := range enabled {
		if toleranceCeilings[p.RiskTolerance] >= riskScore {
			return p.Name
		}
	}

	return enabled[len(enabled)-1].Name
}

// matchRule проверяет все условия правила (конъюнкция)
func (e *Engine) matchRule(rule FraudRule, tx *domain.Transaction) (bool, []string) {
	descriptions := make([]string, 0, len(rule.Conditions))
	for _, cond := range rule.Conditions {
		if !e.matchCondition(rule.Name, cond, tx) {
			return false, nil
		}
		descriptions = append(descriptions, cond.Description)
	}
	return true, descriptions
}

func (e *Engine) matchCondition(ruleName string, cond Condition, tx *domain.Transaction) bool {
	fieldVal, ok := e.fieldValue(tx, cond.Field)
	if !ok {
		return false
	}

	switch cond.Operator {
	case OperatorGreaterThan, OperatorLessThan:
		f, fok := toFloat(fieldVal)
		v, vok := toFloat(cond.Value)
		if !fok || !vok {
			return false
		}
		if cond.Operator == OperatorGreaterThan {
			return f > v
		}
		return f < v

	case OperatorEquals:
		if f, fok := toFloat(fieldVal); fok {
			if v, vok := toFloat(cond.Value); vok {
				return f == v
			}
		}
		return toString(fieldVal) == toString(cond.Value)

	case OperatorContains:
		return strings.Contains(toString(fieldVal), toString(cond.Value))

	case OperatorRegex:
		re, err := regexp.Compile(toString(cond.Value))
		if err != nil {
			// Неисправный паттерн не должен ронять прием платежей
			e.logger.Warn("invalid regex in rule condition",
				zap.String("rule", ruleName),
				zap.String("pattern", toString(cond.Value)),
				zap.Error(err),
			)
			return false
		}
		return re.MatchString(toString(fieldVal))
	}

	return false
}

// fieldValue отображает имя поля условия в типизированное значение
// транзакции. Синтетическое поле timestamp вычисляется в момент проверки
// и на транзакции не хранится.
func (e *Engine) fieldValue(tx *domain.Transaction, field string) (any, bool) {
	switch field {
	case "amount":
		return tx.Amount, true
	case "currency":
		return tx.Currency, true
	case "email":
		return tx.Email, true
	case "source":
		return tx.Source, true
	case "timestamp":
		switch e.now().Weekday() {
		case time.Saturday, time.Sunday:
			return "weekend", true
		default:
			return "weekday", true
		}
	default:
		return nil, false
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
