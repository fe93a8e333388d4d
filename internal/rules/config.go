package rules

import (
	"fmt"
)

// Operator представляет оператор сравнения в условии правила
type Operator string

const (
	OperatorGreaterThan Operator = "greater_than"
	OperatorLessThan    Operator = "less_than"
	OperatorEquals      Operator = "equals"
	OperatorContains    Operator = "contains"
	OperatorRegex       Operator = "regex"
)

// RuleAction представляет действие сработавшего правила
type RuleAction string

const (
	ActionFlag   RuleAction = "flag"
	ActionBlock  RuleAction = "block"
	ActionReview RuleAction = "review"
)

// RiskTolerance представляет допустимый уровень риска провайдера
type RiskTolerance string

const (
	ToleranceLow    RiskTolerance = "low"
	ToleranceMedium RiskTolerance = "medium"
	ToleranceHigh   RiskTolerance = "high"
)

// toleranceCeilings отображает уровень допуска в числовой потолок риска
var toleranceCeilings = map[RiskTolerance]float64{
	ToleranceLow:    0.3,
	ToleranceMedium: 0.6,
	ToleranceHigh:   0.8,
}

// Condition представляет одно декларативное условие правила
type Condition struct {
	Field       string   `yaml:"field"`
	Operator    Operator `yaml:"operator"`
	Value       any      `yaml:"value"`
	Description string   `yaml:"description"`
}

// FraudRule представляет именованное взвешенное правило.
// Правило срабатывает, только если выполнены все его условия.
type FraudRule struct {
	Name       string      `yaml:"name"`
	Enabled    bool        `yaml:"enabled"`
	Weight     float64     `yaml:"weight"`
	Conditions []Condition `yaml:"conditions"`
	Action     RuleAction  `yaml:"action"`
}

// ProviderConfig представляет запись маршрутизации на провайдера
type ProviderConfig struct {
	Name          string        `yaml:"name"`
	Priority      int           `yaml:"priority"` // Меньше - пробуется раньше
	RiskTolerance RiskTolerance `yaml:"risk_tolerance"`
	Enabled       bool          `yaml:"enabled"`
}

// RiskThresholds задает четыре возрастающие границы, разбивающие [0,1]
// на диапазоны статусов и уровней риска
type RiskThresholds struct {
	Low      float64 `yaml:"low"`
	Medium   float64 `yaml:"medium"`
	High     float64 `yaml:"high"`
	Critical float64 `yaml:"critical"`
}

// Config представляет полный декларативный набор правил и маршрутизации
type Config struct {
	Rules      []FraudRule      `yaml:"rules"`
	Providers  []ProviderConfig `yaml:"providers"`
	Thresholds RiskThresholds   `yaml:"thresholds"`
}

// defaultConfig возвращает встроенный минимальный набор правил.
// Используется, когда файл конфигурации недоступен или испорчен:
// ошибки конфигурации правил не должны останавливать обработку платежей.
func defaultConfig() *Config {
	return &Config{
		Rules: []FraudRule{
			{
				Name:    "high_amount",
				Enabled: true,
				Weight:  0.3,
				Conditions: []Condition{
					{
						Field:       "amount",
						Operator:    OperatorGreaterThan,
						Value:       5000.0,
						Description: "amount exceeds 5000",
					},
				},
				Action: ActionFlag,
			},
		},
		Providers: []ProviderConfig{
			{Name: "stripe", Priority: 1, RiskTolerance: ToleranceLow, Enabled: true},
			{Name: "paypal", Priority: 2, RiskTolerance: ToleranceMedium, Enabled: true},
		},
		Thresholds: RiskThresholds{
			Low:      0.3,
			Medium:   0.6,
			High:     0.8,
			Critical: 0.9,
		},
	}
}

// validate проверяет согласованность загруженной конфигурации
func validate(cfg *Config) error {
	t := cfg.Thresholds
	if !(t.Low > 0 && t.Low < t.Medium && t.Medium < t.High && t.High < t.Critical && t.Critical <= 1) {
		return fmt.Errorf("thresholds must be ascending in (0, 1], got %+v", t)
	}

	for _, rule := range cfg.Rules {
		if rule.Name == "" {
			return fmt.Errorf("rule without a name")
		}
		if rule.Weight < 0 || rule.Weight > 1 {
			return fmt.Errorf("rule %q: weight %v outside [0, 1]", rule.Name, rule.Weight)
		}
		switch rule.Action {
		case ActionFlag, ActionBlock, ActionReview:
		default:
			return fmt.Errorf("rule %q: unknown action %q", rule.Name, rule.Action)
		}
		if len(rule.Conditions) == 0 {
			return fmt.Errorf("rule %q: no conditions", rule.Name)
		}
		for _, cond := range rule.Conditions {
			switch cond.Operator {
			case OperatorGreaterThan, OperatorLessThan, OperatorEquals, OperatorContains, OperatorRegex:
			default:
				return fmt.Errorf("rule %q: unknown operator %q", rule.Name, cond.Operator)
			}
		}
	}

	for _, p := range cfg.Providers {
		if p.Name == "" {
			return fmt.Errorf("provider without a name")
		}
		if _, ok := toleranceCeilings[p.RiskTolerance]; !ok {
			return fmt.Errorf("provider %q: unknown risk tolerance %q", p.Name, p.RiskTolerance)
		}
	}

	return nil
}
