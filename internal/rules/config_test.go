package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const validConfigYAML = `
rules:
  - name: high_amount
    enabled: true
    weight: 0.3
    action: flag
    conditions:
      - field: amount
        operator: greater_than
        value: 10000
        description: amount exceeds 10000
  - name: test_token_block
    enabled: true
    weight: 0.9
    action: block
    conditions:
      - field: source
        operator: contains
        value: tok_fraud
        description: known fraudulent token
providers:
  - name: stripe
    priority: 1
    risk_tolerance: low
    enabled: true
  - name: paypal
    priority: 2
    risk_tolerance: medium
    enabled: true
  - name: adyen
    priority: 3
    risk_tolerance: high
    enabled: true
thresholds:
  low: 0.3
  medium: 0.6
  high: 0.8
  critical: 0.9
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEngine_LoadFromFile(t *testing.T) {
	path := writeConfig(t, validConfigYAML)
	e := NewEngine(path, zap.NewNop())

	assert.Equal(t, "file", e.Source())
	assert.Len(t, e.Config().Rules, 2)
	assert.Len(t, e.Config().Providers, 3)
	assert.Equal(t, 0.9, e.Thresholds().Critical)
}

func TestEngine_MissingFileFallsBackToDefaults(t *testing.T) {
	e := NewEngine("/nonexistent/rules.yaml", zap.NewNop())

	assert.Equal(t, "defaults", e.Source())
	// Встроенный набор: ровно одно правило и два провайдера
	assert.Len(t, e.Config().Rules, 1)
	assert.Len(t, e.Config().Providers, 2)
	assert.Equal(t, RiskThresholds{Low: 0.3, Medium: 0.6, High: 0.8, Critical: 0.9}, e.Thresholds())
}

func TestEngine_MalformedFileFallsBackToDefaults(t *testing.T) {
	path := writeConfig(t, "rules: [not: valid: yaml")
	e := &Engine{path: path, logger: zap.NewNop()}

	err := e.Reload()
	assert.Error(t, err)
	assert.Equal(t, "defaults", e.Source())
	assert.Len(t, e.Config().Rules, 1)
}

func TestEngine_InvalidConfigFallsBackToDefaults(t *testing.T) {
	t.Run("Descending thresholds", func(t *testing.T) {
		path := writeConfig(t, `
rules:
  - name: r
    enabled: true
    weight: 0.1
    action: flag
    conditions:
      - field: amount
        operator: greater_than
        value: 1
        description: d
providers:
  - name: stripe
    priority: 1
    risk_tolerance: low
    enabled: true
thresholds:
  low: 0.9
  medium: 0.6
  high: 0.8
  critical: 0.3
`)
		e := &Engine{path: path, logger: zap.NewNop()}
		assert.Error(t, e.Reload())
		assert.Equal(t, "defaults", e.Source())
	})

	t.Run("Unknown operator", func(t *testing.T) {
		path := writeConfig(t, `
rules:
  - name: r
    enabled: true
    weight: 0.1
    action: flag
    conditions:
      - field: amount
        operator: approximately
        value: 1
        description: d
providers: []
thresholds:
  low: 0.3
  medium: 0.6
  high: 0.8
  critical: 0.9
`)
		e := &Engine{path: path, logger: zap.NewNop()}
		assert.Error(t, e.Reload())
		assert.Equal(t, "defaults", e.Source())
	})
}

func TestEngine_ReloadSwapsConfigAtomically(t *testing.T) {
	path := writeConfig(t, validConfigYAML)
	e := NewEngine(path, zap.NewNop())
	require.Equal(t, "file", e.Source())

	// Портим файл: перезагрузка возвращает ошибку, но движок остается рабочим
	require.NoError(t, os.WriteFile(path, []byte("}{"), 0o644))
	assert.Error(t, e.Reload())
	assert.Equal(t, "defaults", e.Source())
	assert.NotEmpty(t, e.Config().Rules)

	// Чиним файл - следующая перезагрузка снова активирует его
	require.NoError(t, os.WriteFile(path, []byte(validConfigYAML), 0o644))
	assert.NoError(t, e.Reload())
	assert.Equal(t, "file", e.Source())
	assert.Len(t, e.Config().Rules, 2)
}

func TestValidate(t *testing.T) {
	t.Run("Default config is valid", func(t *testing.T) {
		assert.NoError(t, validate(defaultConfig()))
	})

	t.Run("Weight outside range", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Rules[0].Weight = 1.5
		assert.Error(t, validate(cfg))
	})

	t.Run("Unknown action", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Rules[0].Action = "explode"
		assert.Error(t, validate(cfg))
	})

	t.Run("Unknown risk tolerance", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Providers[0].RiskTolerance = "extreme"
		assert.Error(t, validate(cfg))
	})

	t.Run("Rule without conditions", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Rules[0].Conditions = nil
		assert.Error(t, validate(cfg))
	})
}
