package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type RiskType string

const (
	RiskType_MarginNegative       RiskType = "MARGIN_NEGATIVE"
	RiskType_Overgrazing          RiskType = "OVERGRAZING"
	RiskType_CostOutOfRange       RiskType = "COST_OUT_OF_RANGE"
	RiskType_LowROI               RiskType = "LOW_ROI"
	RiskType_BreakEvenUnreachable RiskType = "BREAK_EVEN_UNREACHABLE"
	RiskType_PriceSensitive       RiskType = "PRICE_SENSITIVE"
	RiskType_SmallScale           RiskType = "SMALL_SCALE"
)

// RiskFactor is a value object embedded in results. The full list is
// recomputed on every execution, never patched in place.
type RiskFactor struct {
	Type           RiskType `json:"type"`
	Severity       Severity `json:"severity"`
	Message        string   `json:"message"`
	Recommendation string   `json:"recommendation"`
}

type SensitivityPoint struct {
	PriceVariationPercent float64 `json:"priceVariationPercent"`
	PricePerKg            float64 `json:"pricePerKg"`
	Revenue               float64 `json:"revenue"`
	Margin                float64 `json:"margin"`
	RoiPercent            float64 `json:"roiPercent"`
	IsProfitable          bool    `json:"isProfitable"`
}

type SensitivityAnalysis struct {
	Points          []SensitivityPoint `json:"points"`
	MaxMargin       float64            `json:"maxMargin"`
	MinMargin       float64            `json:"minMargin"`
	MarginRange     float64            `json:"marginRange"`
	PriceElasticity float64            `json:"priceElasticity"`
}

// EconomicMetrics is the authoritative money view of a scenario.
// BreakEvenKg is nil when pricePerKg <= 0, i.e. break-even is
// unreachable at any volume.
type EconomicMetrics struct {
	TotalCost           float64              `json:"totalCost"`
	Revenue             float64              `json:"revenue"`
	Margin              float64              `json:"margin"`
	MarginPercent       float64              `json:"marginPercent"`
	RoiPercent          float64              `json:"roiPercent"`
	ProductionKg        float64              `json:"productionKg"`
	CostPerKg           float64              `json:"costPerKg"`
	CostPerHa           float64              `json:"costPerHa"`
	KgPerHa             float64              `json:"kgPerHa"`
	BreakEvenKg         *float64             `json:"breakEvenKg"`
	SafetyMarginPercent float64              `json:"safetyMarginPercent"`
	Sensitivity         *SensitivityAnalysis `json:"sensitivity,omitempty"`
}

type LivestockMetrics struct {
	LoadPerHa       float64 `json:"loadPerHa"`
	ProductionKg    float64 `json:"productionKg"`
	ForageDemandKg  float64 `json:"forageDemandKg"`
	ForageSupplyKg  float64 `json:"forageSupplyKg"`
	ForageBalanceKg float64 `json:"forageBalanceKg"`
}

type AgriculturalMetrics struct {
	ProductionKg       float64 `json:"productionKg"`
	YieldKgPerHa       float64 `json:"yieldKgPerHa"`
	RainfallAdjustment float64 `json:"rainfallAdjustment"`
}

// SimulationResults is the jsonb results column. Non-nil iff the
// scenario is EXECUTED or CONVERTED.
type SimulationResults struct {
	Economic     *EconomicMetrics     `json:"economic,omitempty"`
	Livestock    *LivestockMetrics    `json:"livestock,omitempty"`
	Agricultural *AgriculturalMetrics `json:"agricultural,omitempty"`
	RiskFactors  []RiskFactor         `json:"riskFactors"`
	RiskLevel    Severity             `json:"riskLevel"`
	AlertIDs     []uuid.UUID          `json:"alertIds,omitempty"`
	AreaHectares float64              `json:"areaHectares"`
}

func ParseSimulationResults(raw []byte) (*SimulationResults, error) {
	out := SimulationResults{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to parse simulation results: %w", err)
	}
	return &out, nil
}

func (r SimulationResults) Marshal() (string, error) {
	bytes, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to marshal simulation results: %w", err)
	}
	return string(bytes), nil
}

// MetricValues flattens the numbers screeners and comparison criteria
// key off of. Missing sub-results contribute zeros rather than erroring
// so expressions stay total over executed scenarios.
func (r SimulationResults) MetricValues() map[string]float64 {
	values := map[string]float64{
		"riskFactorCount":     float64(len(r.RiskFactors)),
		"areaHectares":        r.AreaHectares,
		"totalCost":           0,
		"revenue":             0,
		"margin":              0,
		"marginPercent":       0,
		"roiPercent":          0,
		"costPerKg":           0,
		"costPerHa":           0,
		"kgPerHa":             0,
		"productionKg":        0,
		"safetyMarginPercent": 0,
		"loadPerHa":           0,
		"forageBalanceKg":     0,
	}
	if r.Economic != nil {
		values["totalCost"] = r.Economic.TotalCost
		values["revenue"] = r.Economic.Revenue
		values["margin"] = r.Economic.Margin
		values["marginPercent"] = r.Economic.MarginPercent
		values["roiPercent"] = r.Economic.RoiPercent
		values["costPerKg"] = r.Economic.CostPerKg
		values["costPerHa"] = r.Economic.CostPerHa
		values["kgPerHa"] = r.Economic.KgPerHa
		values["productionKg"] = r.Economic.ProductionKg
		values["safetyMarginPercent"] = r.Economic.SafetyMarginPercent
	}
	if r.Livestock != nil {
		values["loadPerHa"] = r.Livestock.LoadPerHa
		values["forageBalanceKg"] = r.Livestock.ForageBalanceKg
	}
	return values
}

// DeriveRiskLevel maps the number of detected risk factors onto the
// scenario-level risk classification.
func DeriveRiskLevel(riskFactors []RiskFactor) Severity {
	switch {
	case len(riskFactors) == 0:
		return Severity_Low
	case len(riskFactors) <= 2:
		return Severity_Medium
	default:
		return Severity_High
	}
}
