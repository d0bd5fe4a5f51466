package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// InputParameters is the per-simulation-type parameter union. The jsonb
// column stores whichever concrete struct matches the scenario's
// simulation type; ParseInputParameters picks and validates it.
type InputParameters interface {
	SimulationType() SimulationType
	Validate() error
	Perturb(f PerturbationFactors) InputParameters
}

// PerturbationFactors are the multiplicative knobs variants apply to a
// base scenario's inputs.
type PerturbationFactors struct {
	Price    float64
	Gain     float64
	Cost     float64
	Rainfall float64
}

// scale goes through decimal so that e.g. 2.0 * 1.15 comes out as
// exactly 2.3 instead of accumulating float noise into persisted inputs.
func scale(value, factor float64) float64 {
	return decimal.NewFromFloat(value).Mul(decimal.NewFromFloat(factor)).InexactFloat64()
}

type EconomicParameters struct {
	InputCosts     float64 `json:"input_costs"`
	MachineryCosts float64 `json:"machinery_costs"`
	LaborCosts     float64 `json:"labor_costs"`
	OtherCosts     float64 `json:"other_costs"`
	ProductionKg   float64 `json:"production_kg"`
	PricePerKg     float64 `json:"price_per_kg"`
	AreaHectares   float64 `json:"area_hectares"`
}

func (p EconomicParameters) SimulationType() SimulationType {
	return SimulationType_Economic
}

func (p EconomicParameters) Validate() error {
	costs := map[string]float64{
		"input_costs":     p.InputCosts,
		"machinery_costs": p.MachineryCosts,
		"labor_costs":     p.LaborCosts,
		"other_costs":     p.OtherCosts,
	}
	for name, c := range costs {
		if c < 0 {
			return fmt.Errorf("invalid economic parameters: %s is negative (%f)", name, c)
		}
	}
	if p.ProductionKg < 0 {
		return fmt.Errorf("invalid economic parameters: production_kg is negative (%f)", p.ProductionKg)
	}
	if p.PricePerKg < 0 {
		return fmt.Errorf("invalid economic parameters: price_per_kg is negative (%f)", p.PricePerKg)
	}
	return nil
}

func (p EconomicParameters) Perturb(f PerturbationFactors) InputParameters {
	out := p
	out.PricePerKg = scale(p.PricePerKg, f.Price)
	out.ProductionKg = scale(p.ProductionKg, f.Gain)
	out.InputCosts = scale(p.InputCosts, f.Cost)
	out.MachineryCosts = scale(p.MachineryCosts, f.Cost)
	out.LaborCosts = scale(p.LaborCosts, f.Cost)
	out.OtherCosts = scale(p.OtherCosts, f.Cost)
	return out
}

type LivestockLoadParameters struct {
	AnimalCount  int     `json:"animal_count"`
	AvgWeightKg  float64 `json:"avg_weight_kg"`
	DailyGainKg  float64 `json:"daily_gain_kg"`
	HorizonDays  int     `json:"horizon_days"`
	AreaHectares float64 `json:"area_hectares"`
	PricePerKg   float64 `json:"price_per_kg"`
	FeedCosts    float64 `json:"feed_costs"`
	HealthCosts  float64 `json:"health_costs"`
	LaborCosts   float64 `json:"labor_costs"`
}

func (p LivestockLoadParameters) SimulationType() SimulationType {
	return SimulationType_LivestockLoad
}

func (p LivestockLoadParameters) Validate() error {
	if p.AnimalCount <= 0 {
		return fmt.Errorf("invalid livestock parameters: animal_count must be positive, got %d", p.AnimalCount)
	}
	if p.AvgWeightKg <= 0 {
		return fmt.Errorf("invalid livestock parameters: avg_weight_kg must be positive, got %f", p.AvgWeightKg)
	}
	if p.HorizonDays <= 0 {
		return fmt.Errorf("invalid livestock parameters: horizon_days must be positive, got %d", p.HorizonDays)
	}
	for name, c := range map[string]float64{
		"feed_costs":   p.FeedCosts,
		"health_costs": p.HealthCosts,
		"labor_costs":  p.LaborCosts,
	} {
		if c < 0 {
			return fmt.Errorf("invalid livestock parameters: %s is negative (%f)", name, c)
		}
	}
	return nil
}

func (p LivestockLoadParameters) Perturb(f PerturbationFactors) InputParameters {
	out := p
	out.PricePerKg = scale(p.PricePerKg, f.Price)
	out.DailyGainKg = scale(p.DailyGainKg, f.Gain)
	out.FeedCosts = scale(p.FeedCosts, f.Cost)
	out.HealthCosts = scale(p.HealthCosts, f.Cost)
	out.LaborCosts = scale(p.LaborCosts, f.Cost)
	return out
}

type PastureManagementParameters struct {
	AnimalCount        int     `json:"animal_count"`
	AvgWeightKg        float64 `json:"avg_weight_kg"`
	DailyGainKg        float64 `json:"daily_gain_kg"`
	HorizonDays        int     `json:"horizon_days"`
	AreaHectares       float64 `json:"area_hectares"`
	ExpectedRainfallMm float64 `json:"expected_rainfall_mm"`
	PricePerKg         float64 `json:"price_per_kg"`
	MaintenanceCosts   float64 `json:"maintenance_costs"`
	LaborCosts         float64 `json:"labor_costs"`
}

func (p PastureManagementParameters) SimulationType() SimulationType {
	return SimulationType_PastureManagement
}

func (p PastureManagementParameters) Validate() error {
	if p.AnimalCount <= 0 {
		return fmt.Errorf("invalid pasture parameters: animal_count must be positive, got %d", p.AnimalCount)
	}
	if p.AreaHectares <= 0 {
		return fmt.Errorf("invalid pasture parameters: area_hectares must be positive, got %f", p.AreaHectares)
	}
	if p.ExpectedRainfallMm < 0 {
		return fmt.Errorf("invalid pasture parameters: expected_rainfall_mm is negative (%f)", p.ExpectedRainfallMm)
	}
	for name, c := range map[string]float64{
		"maintenance_costs": p.MaintenanceCosts,
		"labor_costs":       p.LaborCosts,
	} {
		if c < 0 {
			return fmt.Errorf("invalid pasture parameters: %s is negative (%f)", name, c)
		}
	}
	return nil
}

func (p PastureManagementParameters) Perturb(f PerturbationFactors) InputParameters {
	out := p
	out.PricePerKg = scale(p.PricePerKg, f.Price)
	out.DailyGainKg = scale(p.DailyGainKg, f.Gain)
	out.MaintenanceCosts = scale(p.MaintenanceCosts, f.Cost)
	out.LaborCosts = scale(p.LaborCosts, f.Cost)
	out.ExpectedRainfallMm = scale(p.ExpectedRainfallMm, f.Rainfall)
	return out
}

type ProductionParameters struct {
	AreaHectares        float64 `json:"area_hectares"`
	ExpectedYieldKgHa   float64 `json:"expected_yield_kg_ha"`
	ExpectedRainfallMm  float64 `json:"expected_rainfall_mm"`
	ReferenceRainfallMm float64 `json:"reference_rainfall_mm"`
	PricePerKg          float64 `json:"price_per_kg"`
	InputCosts          float64 `json:"input_costs"`
	MachineryCosts      float64 `json:"machinery_costs"`
	LaborCosts          float64 `json:"labor_costs"`
	OtherCosts          float64 `json:"other_costs"`
}

func (p ProductionParameters) SimulationType() SimulationType {
	return SimulationType_Production
}

func (p ProductionParameters) Validate() error {
	if p.AreaHectares <= 0 {
		return fmt.Errorf("invalid production parameters: area_hectares must be positive, got %f", p.AreaHectares)
	}
	if p.ExpectedYieldKgHa < 0 {
		return fmt.Errorf("invalid production parameters: expected_yield_kg_ha is negative (%f)", p.ExpectedYieldKgHa)
	}
	if p.ExpectedRainfallMm < 0 {
		return fmt.Errorf("invalid production parameters: expected_rainfall_mm is negative (%f)", p.ExpectedRainfallMm)
	}
	for name, c := range map[string]float64{
		"input_costs":     p.InputCosts,
		"machinery_costs": p.MachineryCosts,
		"labor_costs":     p.LaborCosts,
		"other_costs":     p.OtherCosts,
	} {
		if c < 0 {
			return fmt.Errorf("invalid production parameters: %s is negative (%f)", name, c)
		}
	}
	return nil
}

func (p ProductionParameters) Perturb(f PerturbationFactors) InputParameters {
	out := p
	out.PricePerKg = scale(p.PricePerKg, f.Price)
	out.ExpectedYieldKgHa = scale(p.ExpectedYieldKgHa, f.Gain)
	out.InputCosts = scale(p.InputCosts, f.Cost)
	out.MachineryCosts = scale(p.MachineryCosts, f.Cost)
	out.LaborCosts = scale(p.LaborCosts, f.Cost)
	out.OtherCosts = scale(p.OtherCosts, f.Cost)
	out.ExpectedRainfallMm = scale(p.ExpectedRainfallMm, f.Rainfall)
	return out
}

type IntegralParameters struct {
	Livestock    LivestockLoadParameters `json:"livestock"`
	Agricultural ProductionParameters    `json:"agricultural"`
}

func (p IntegralParameters) SimulationType() SimulationType {
	return SimulationType_Integral
}

func (p IntegralParameters) Validate() error {
	if err := p.Livestock.Validate(); err != nil {
		return err
	}
	return p.Agricultural.Validate()
}

func (p IntegralParameters) Perturb(f PerturbationFactors) InputParameters {
	return IntegralParameters{
		Livestock:    p.Livestock.Perturb(f).(LivestockLoadParameters),
		Agricultural: p.Agricultural.Perturb(f).(ProductionParameters),
	}
}

// ParseInputParameters decodes the jsonb parameter blob into the
// concrete struct for the given simulation type and validates it.
func ParseInputParameters(simulationType SimulationType, raw []byte) (InputParameters, error) {
	var params InputParameters
	switch simulationType {
	case SimulationType_Economic:
		p := EconomicParameters{}
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("failed to parse economic parameters: %w", err)
		}
		params = p
	case SimulationType_LivestockLoad:
		p := LivestockLoadParameters{}
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("failed to parse livestock parameters: %w", err)
		}
		params = p
	case SimulationType_PastureManagement:
		p := PastureManagementParameters{}
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("failed to parse pasture parameters: %w", err)
		}
		params = p
	case SimulationType_Production:
		p := ProductionParameters{}
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("failed to parse production parameters: %w", err)
		}
		params = p
	case SimulationType_Integral:
		p := IntegralParameters{}
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("failed to parse integral parameters: %w", err)
		}
		params = p
	default:
		return nil, fmt.Errorf("unknown simulation type %q", simulationType)
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return params, nil
}

func MarshalInputParameters(params InputParameters) (string, error) {
	bytes, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("failed to marshal input parameters: %w", err)
	}
	return string(bytes), nil
}
