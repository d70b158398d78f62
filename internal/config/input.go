package config

import (
	"fmt"
	"os"

	"github.com/drawplan/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of simulation configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a simulation configuration from a YAML file,
// fills defaults and validates before returning. Nothing runs on an
// invalid configuration.
func (ip *InputParser) LoadFromFile(filename string) (*domain.SimulationConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates raw YAML configuration bytes.
func (ip *InputParser) Parse(data []byte) (*domain.SimulationConfig, error) {
	var cfg domain.SimulationConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// CreateExampleConfiguration returns a complete, valid configuration
// suitable for the `example` command.
func (ip *InputParser) CreateExampleConfiguration() *domain.SimulationConfig {
	cfg := &domain.SimulationConfig{
		RetirementAge: 62,
		EndAge:        95,
		BirthYear:     1963,
		SSClaimAge:    62,

		FERSAnnuity:      decimal.NewFromInt(30000),
		FERSSupplement:   decimal.NewFromInt(12000),
		SSMonthlyBenefit: decimal.NewFromInt(1800),

		TSPBalance:     decimal.NewFromInt(500000),
		TraditionalPct: decimal.NewFromFloat(0.70),
		HighRiskPct:    decimal.NewFromFloat(0.60),

		HighRiskReturn: decimal.NewFromFloat(0.07),
		LowRiskReturn:  decimal.NewFromFloat(0.035),

		WithdrawalRate: decimal.NewFromFloat(0.04),
		TimeStepYears:  2,
		Strategy:       domain.StrategyProportional,

		BaseAnnualExpenses:  decimal.NewFromInt(60000),
		HealthcareExpenses:  decimal.NewFromInt(6500),
		COLARate:            decimal.NewFromFloat(0.02),
		InflationRate:       decimal.NewFromFloat(0.025),
		HealthcareInflation: decimal.NewFromFloat(0.05),

		FilingStatus: domain.FilingMarriedJointly,
		StateCode:    "PA",
		IRMAAEnabled: true,
	}
	cfg.ApplyDefaults()
	return cfg
}

// WriteExampleConfiguration marshals the example configuration as
// YAML to the given path.
func (ip *InputParser) WriteExampleConfiguration(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleConfiguration())
	if err != nil {
		return fmt.Errorf("failed to marshal example configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
