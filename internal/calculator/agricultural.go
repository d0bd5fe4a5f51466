package calculator

import (
	"agroplan/internal/domain"
	"fmt"
)

// rainfall adjustment is capped so an unusually wet forecast doesn't
// project unbounded yield
const maxRainfallAdjustment = 1.2

// CalculateAgricultural models crop production: expected yield scaled
// by the rainfall outlook, then priced through the economic calculator.
func CalculateAgricultural(params domain.ProductionParameters) (*domain.AgriculturalMetrics, *domain.EconomicMetrics, error) {
	if err := params.Validate(); err != nil {
		return nil, nil, err
	}

	adjustment := 1.0
	if params.ReferenceRainfallMm > 0 {
		adjustment = params.ExpectedRainfallMm / params.ReferenceRainfallMm
		if adjustment > maxRainfallAdjustment {
			adjustment = maxRainfallAdjustment
		}
	}

	yieldKgPerHa := params.ExpectedYieldKgHa * adjustment
	productionKg := yieldKgPerHa * params.AreaHectares

	economic, err := CalculateEconomic(domain.EconomicParameters{
		InputCosts:     params.InputCosts,
		MachineryCosts: params.MachineryCosts,
		LaborCosts:     params.LaborCosts,
		OtherCosts:     params.OtherCosts,
		ProductionKg:   productionKg,
		PricePerKg:     params.PricePerKg,
		AreaHectares:   params.AreaHectares,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to price agricultural production: %w", err)
	}

	return &domain.AgriculturalMetrics{
		ProductionKg:       productionKg,
		YieldKgPerHa:       yieldKgPerHa,
		RainfallAdjustment: adjustment,
	}, economic, nil
}
