package calculator

import (
	"agroplan/internal/domain"
	"fmt"
)

// Calculate dispatches to the calculator(s) for the scenario's
// simulation type and assembles the raw (risk-free) results. The switch
// is exhaustive on purpose: an unknown type is a fatal error, never a
// silent default.
func Calculate(simulationType domain.SimulationType, params domain.InputParameters) (*domain.SimulationResults, error) {
	switch simulationType {
	case domain.SimulationType_Economic:
		p, ok := params.(domain.EconomicParameters)
		if !ok {
			return nil, fmt.Errorf("parameter type %T does not match simulation type %s", params, simulationType)
		}
		economic, err := CalculateEconomic(p)
		if err != nil {
			return nil, err
		}
		return &domain.SimulationResults{
			Economic:     economic,
			AreaHectares: p.AreaHectares,
		}, nil

	case domain.SimulationType_LivestockLoad:
		p, ok := params.(domain.LivestockLoadParameters)
		if !ok {
			return nil, fmt.Errorf("parameter type %T does not match simulation type %s", params, simulationType)
		}
		livestock, economic, err := CalculateLivestockLoad(p)
		if err != nil {
			return nil, err
		}
		return &domain.SimulationResults{
			Economic:     economic,
			Livestock:    livestock,
			AreaHectares: p.AreaHectares,
		}, nil

	case domain.SimulationType_PastureManagement:
		p, ok := params.(domain.PastureManagementParameters)
		if !ok {
			return nil, fmt.Errorf("parameter type %T does not match simulation type %s", params, simulationType)
		}
		livestock, economic, err := CalculatePastureManagement(p)
		if err != nil {
			return nil, err
		}
		return &domain.SimulationResults{
			Economic:     economic,
			Livestock:    livestock,
			AreaHectares: p.AreaHectares,
		}, nil

	case domain.SimulationType_Production:
		p, ok := params.(domain.ProductionParameters)
		if !ok {
			return nil, fmt.Errorf("parameter type %T does not match simulation type %s", params, simulationType)
		}
		agricultural, economic, err := CalculateAgricultural(p)
		if err != nil {
			return nil, err
		}
		return &domain.SimulationResults{
			Economic:     economic,
			Agricultural: agricultural,
			AreaHectares: p.AreaHectares,
		}, nil

	case domain.SimulationType_Integral:
		p, ok := params.(domain.IntegralParameters)
		if !ok {
			return nil, fmt.Errorf("parameter type %T does not match simulation type %s", params, simulationType)
		}
		return calculateIntegral(p)
	}

	return nil, fmt.Errorf("unknown simulation type %q", simulationType)
}

// calculateIntegral combines livestock and agricultural runs
// additively (production, cost, revenue); the recomputed economic
// sub-result over the combined totals is authoritative for
// cost/margin/ROI.
func calculateIntegral(params domain.IntegralParameters) (*domain.SimulationResults, error) {
	livestock, livestockEconomic, err := CalculateLivestockLoad(params.Livestock)
	if err != nil {
		return nil, fmt.Errorf("failed integral livestock leg: %w", err)
	}
	agricultural, agriculturalEconomic, err := CalculateAgricultural(params.Agricultural)
	if err != nil {
		return nil, fmt.Errorf("failed integral agricultural leg: %w", err)
	}

	combinedProduction := livestock.ProductionKg + agricultural.ProductionKg
	combinedRevenue := livestockEconomic.Revenue + agriculturalEconomic.Revenue

	// the two legs sell at different prices, so break-even and
	// sensitivity run off the blended realized price
	effectivePrice := 0.0
	if combinedProduction > 0 {
		effectivePrice = combinedRevenue / combinedProduction
	}

	economic, err := CalculateEconomic(domain.EconomicParameters{
		InputCosts:     params.Livestock.FeedCosts + params.Agricultural.InputCosts,
		MachineryCosts: params.Agricultural.MachineryCosts,
		LaborCosts:     params.Livestock.LaborCosts + params.Agricultural.LaborCosts,
		OtherCosts:     params.Livestock.HealthCosts + params.Agricultural.OtherCosts,
		ProductionKg:   combinedProduction,
		PricePerKg:     effectivePrice,
		AreaHectares:   params.Livestock.AreaHectares + params.Agricultural.AreaHectares,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to price combined production: %w", err)
	}

	return &domain.SimulationResults{
		Economic:     economic,
		Livestock:    livestock,
		Agricultural: agricultural,
		AreaHectares: params.Livestock.AreaHectares + params.Agricultural.AreaHectares,
	}, nil
}
