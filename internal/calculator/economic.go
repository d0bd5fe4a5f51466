package calculator

import (
	"agroplan/internal/domain"
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// sensitivityGrid is the fixed set of price variations (in percent)
// every economic simulation is evaluated at.
var sensitivityGrid = []float64{-20, -15, -10, -5, 0, 5, 10, 15, 20}

// CalculateEconomic runs the money model over validated inputs. Pure,
// deterministic, no I/O.
func CalculateEconomic(params domain.EconomicParameters) (*domain.EconomicMetrics, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	totalCost := params.InputCosts + params.MachineryCosts + params.LaborCosts + params.OtherCosts
	revenue := params.ProductionKg * params.PricePerKg
	margin := revenue - totalCost

	marginPercent := 0.0
	if revenue > 0 {
		marginPercent = margin / revenue * 100
	}

	roiPercent := 0.0
	if totalCost > 0 {
		roiPercent = margin / totalCost * 100
	}

	costPerKg := 0.0
	kgPerHa := 0.0
	costPerHa := 0.0
	if params.ProductionKg > 0 {
		costPerKg = totalCost / params.ProductionKg
	}
	if params.AreaHectares > 0 {
		costPerHa = totalCost / params.AreaHectares
		kgPerHa = params.ProductionKg / params.AreaHectares
	}

	var breakEvenKg *float64
	safetyMarginPercent := -100.0
	if params.PricePerKg > 0 {
		be := totalCost / params.PricePerKg
		breakEvenKg = &be
		safetyMarginPercent = 0
		if params.ProductionKg > be {
			safetyMarginPercent = (params.ProductionKg - be) / params.ProductionKg * 100
		}
	}

	sensitivity, err := calculateSensitivity(params, totalCost)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate sensitivity analysis: %w", err)
	}

	return &domain.EconomicMetrics{
		TotalCost:           totalCost,
		Revenue:             revenue,
		Margin:              margin,
		MarginPercent:       marginPercent,
		RoiPercent:          roiPercent,
		ProductionKg:        params.ProductionKg,
		CostPerKg:           costPerKg,
		CostPerHa:           costPerHa,
		KgPerHa:             kgPerHa,
		BreakEvenKg:         breakEvenKg,
		SafetyMarginPercent: safetyMarginPercent,
		Sensitivity:         sensitivity,
	}, nil
}

func calculateSensitivity(params domain.EconomicParameters, totalCost float64) (*domain.SensitivityAnalysis, error) {
	points := make([]domain.SensitivityPoint, 0, len(sensitivityGrid))
	margins := make([]float64, 0, len(sensitivityGrid))

	basePrice := decimal.NewFromFloat(params.PricePerKg)
	for _, variation := range sensitivityGrid {
		factor := decimal.NewFromFloat(1).Add(decimal.NewFromFloat(variation).Div(decimal.NewFromInt(100)))
		price := basePrice.Mul(factor).InexactFloat64()

		revenue := params.ProductionKg * price
		margin := revenue - totalCost
		roi := 0.0
		if totalCost > 0 {
			roi = margin / totalCost * 100
		}

		points = append(points, domain.SensitivityPoint{
			PriceVariationPercent: variation,
			PricePerKg:            price,
			Revenue:               revenue,
			Margin:                margin,
			RoiPercent:            roi,
			IsProfitable:          margin > 0,
		})
		margins = append(margins, margin)
	}

	maxMargin, err := stats.Max(margins)
	if err != nil {
		return nil, err
	}
	minMargin, err := stats.Min(margins)
	if err != nil {
		return nil, err
	}

	return &domain.SensitivityAnalysis{
		Points:          points,
		MaxMargin:       maxMargin,
		MinMargin:       minMargin,
		MarginRange:     maxMargin - minMargin,
		PriceElasticity: priceElasticity(points),
	}, nil
}

// priceElasticity compares exactly the -10% and +10% grid points.
func priceElasticity(points []domain.SensitivityPoint) float64 {
	var low, high *domain.SensitivityPoint
	for i := range points {
		switch points[i].PriceVariationPercent {
		case -10:
			low = &points[i]
		case 10:
			high = &points[i]
		}
	}
	if low == nil || high == nil {
		return 0
	}
	priceChange := high.PricePerKg - low.PricePerKg
	if priceChange == 0 {
		return 0
	}
	return (high.Margin - low.Margin) / priceChange
}
