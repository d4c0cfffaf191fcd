package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rgehrsitz/swrgo/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Portfolio defaults used for new files and for fields older files omit
const (
	DefaultStartAge       = 40
	DefaultLifeExpectancy = 120
)

// DefaultInflationPct is the default annual inflation, in percent
var DefaultInflationPct = decimal.NewFromInt(2)

// InputParser handles parsing of portfolio files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a portfolio from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Portfolio, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates portfolio data. JSON is accepted since it is a
// subset of YAML.
func (ip *InputParser) Parse(data []byte) (*domain.Portfolio, error) {
	var portfolio domain.Portfolio
	if err := yaml.Unmarshal(data, &portfolio); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio: %w", err)
	}

	// Files written before life expectancy was configurable
	if portfolio.LifeExpectancy == 0 {
		portfolio.LifeExpectancy = DefaultLifeExpectancy
	}

	if err := ip.ValidatePortfolio(&portfolio); err != nil {
		return nil, fmt.Errorf("portfolio validation failed: %w", err)
	}

	return &portfolio, nil
}

// SaveToFile writes the portfolio as YAML, or JSON when the file name ends in .json
func (ip *InputParser) SaveToFile(portfolio *domain.Portfolio, filename string) error {
	if err := ip.ValidatePortfolio(portfolio); err != nil {
		return fmt.Errorf("refusing to save invalid portfolio: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		data, err = json.MarshalIndent(portfolio, "", "  ")
	} else {
		data, err = yaml.Marshal(portfolio)
	}
	if err != nil {
		return fmt.Errorf("failed to encode portfolio: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// ValidatePortfolio validates a loaded portfolio
func (ip *InputParser) ValidatePortfolio(portfolio *domain.Portfolio) error {
	if len(portfolio.Assets) == 0 {
		return fmt.Errorf("at least one asset is required")
	}
	for i, asset := range portfolio.Assets {
		if err := ip.validateAsset(&asset); err != nil {
			return fmt.Errorf("asset %d (%s) validation failed: %w", i, asset.Name, err)
		}
	}

	if portfolio.StartAge < 0 {
		return fmt.Errorf("start age cannot be negative")
	}
	if portfolio.LifeExpectancy <= portfolio.StartAge {
		return fmt.Errorf("life expectancy (%d) must be greater than start age (%d)",
			portfolio.LifeExpectancy, portfolio.StartAge)
	}

	if portfolio.InflationPct.LessThan(decimal.NewFromInt(-10)) || portfolio.InflationPct.GreaterThan(decimal.NewFromInt(20)) {
		return fmt.Errorf("inflation must be between -10%% and 20%%, got %s%%", portfolio.InflationPct.StringFixed(2))
	}

	return nil
}

// validateAsset validates a single asset
func (ip *InputParser) validateAsset(asset *domain.Asset) error {
	if strings.TrimSpace(asset.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if asset.Principal.LessThan(decimal.Zero) {
		return fmt.Errorf("principal cannot be negative")
	}
	if asset.ExpectedReturnPct.LessThan(decimal.NewFromInt(-100)) {
		return fmt.Errorf("expected return cannot be below -100%%")
	}
	if !asset.Risk.Valid() {
		return fmt.Errorf("risk must be Low, Medium or High, got %q", asset.Risk)
	}
	return nil
}

// DefaultPortfolio is the starting point offered to new users
func DefaultPortfolio() *domain.Portfolio {
	return &domain.Portfolio{
		Assets: []domain.Asset{
			{Name: "S&P 500", Principal: decimal.NewFromInt(500000), ExpectedReturnPct: decimal.NewFromInt(8), Risk: domain.RiskMedium},
			{Name: "Bonds", Principal: decimal.NewFromInt(500000), ExpectedReturnPct: decimal.NewFromInt(4), Risk: domain.RiskLow},
		},
		StartAge:       DefaultStartAge,
		LifeExpectancy: DefaultLifeExpectancy,
		InflationPct:   DefaultInflationPct,
	}
}
