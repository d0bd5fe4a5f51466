package l2_service

import (
	"agroplan/internal/domain"
	"fmt"
)

// RiskThresholds externalizes the rule cutoffs so the engine stays pure
// and testable. Defaults mirror the product's baseline assumptions.
type RiskThresholds struct {
	// CapacityMaxKgPerHa is the max sustainable liveweight load per hectare.
	CapacityMaxKgPerHa float64
	// CostBenchmarkPerKg is the reference production cost per kg.
	CostBenchmarkPerKg float64
	// CriticalMarginLoss is the loss beyond which a negative margin
	// escalates from HIGH to CRITICAL.
	CriticalMarginLoss float64
}

func DefaultRiskThresholds() RiskThresholds {
	return RiskThresholds{
		CapacityMaxKgPerHa: 400,
		CostBenchmarkPerKg: 10,
		CriticalMarginLoss: 50_000,
	}
}

type RiskService interface {
	IdentifyRisks(results domain.SimulationResults) []domain.RiskFactor
}

type riskServiceHandler struct {
	Thresholds RiskThresholds
}

func NewRiskService(thresholds RiskThresholds) RiskService {
	return riskServiceHandler{Thresholds: thresholds}
}

// IdentifyRisks evaluates the rules in a fixed priority order: margin,
// load, cost, ROI, break-even, price sensitivity, scale. Order matters -
// downstream consumers rely on it, and the derived risk level counts
// whatever comes out. No matched rule means an empty list, not an error.
func (h riskServiceHandler) IdentifyRisks(results domain.SimulationResults) []domain.RiskFactor {
	factors := []domain.RiskFactor{}

	economic := results.Economic
	if economic == nil {
		return factors
	}

	if economic.Margin < 0 {
		severity := domain.Severity_High
		if economic.Margin < -h.Thresholds.CriticalMarginLoss {
			severity = domain.Severity_Critical
		}
		factors = append(factors, domain.RiskFactor{
			Type:           domain.RiskType_MarginNegative,
			Severity:       severity,
			Message:        fmt.Sprintf("projected margin is negative (%.2f)", economic.Margin),
			Recommendation: "revisit the cost structure or the price assumption before committing to this plan",
		})
	}

	if results.Livestock != nil && results.Livestock.LoadPerHa > h.Thresholds.CapacityMaxKgPerHa {
		excessPercent := (results.Livestock.LoadPerHa/h.Thresholds.CapacityMaxKgPerHa - 1) * 100
		severity := domain.Severity_High
		if excessPercent > 20 {
			severity = domain.Severity_Critical
		}
		factors = append(factors, domain.RiskFactor{
			Type:           domain.RiskType_Overgrazing,
			Severity:       severity,
			Message:        fmt.Sprintf("animal load of %.0f kg/ha exceeds carrying capacity by %.1f%%", results.Livestock.LoadPerHa, excessPercent),
			Recommendation: "reduce the herd or secure additional grazing area",
		})
	}

	if economic.CostPerKg > h.Thresholds.CostBenchmarkPerKg*1.2 {
		severity := domain.Severity_Medium
		if economic.CostPerKg > h.Thresholds.CostBenchmarkPerKg*1.5 {
			severity = domain.Severity_High
		}
		factors = append(factors, domain.RiskFactor{
			Type:           domain.RiskType_CostOutOfRange,
			Severity:       severity,
			Message:        fmt.Sprintf("cost of %.2f per kg is well above the %.2f benchmark", economic.CostPerKg, h.Thresholds.CostBenchmarkPerKg),
			Recommendation: "audit input and machinery spend against comparable operations",
		})
	}

	if economic.RoiPercent > 0 && economic.RoiPercent < 10 {
		factors = append(factors, domain.RiskFactor{
			Type:           domain.RiskType_LowROI,
			Severity:       domain.Severity_Medium,
			Message:        fmt.Sprintf("return on investment of %.1f%% is below the 10%% floor", economic.RoiPercent),
			Recommendation: "consider alternatives with better capital efficiency",
		})
	}

	if economic.BreakEvenKg != nil && economic.ProductionKg < *economic.BreakEvenKg {
		factors = append(factors, domain.RiskFactor{
			Type:           domain.RiskType_BreakEvenUnreachable,
			Severity:       domain.Severity_High,
			Message:        fmt.Sprintf("projected production of %.0f kg is below the %.0f kg break-even volume", economic.ProductionKg, *economic.BreakEvenKg),
			Recommendation: "increase projected volume or cut fixed costs to bring break-even within reach",
		})
	}

	if economic.Sensitivity != nil {
		for _, point := range economic.Sensitivity.Points {
			if point.PriceVariationPercent < -10 && !point.IsProfitable {
				factors = append(factors, domain.RiskFactor{
					Type:           domain.RiskType_PriceSensitive,
					Severity:       domain.Severity_Medium,
					Message:        "the operation turns unprofitable under a price drop of more than 10%",
					Recommendation: "consider forward contracts or price insurance to cap downside",
				})
				break
			}
		}
	}

	if results.AreaHectares < 1 {
		factors = append(factors, domain.RiskFactor{
			Type:           domain.RiskType_SmallScale,
			Severity:       domain.Severity_Medium,
			Message:        fmt.Sprintf("operated area of %.2f ha is below minimum efficient scale", results.AreaHectares),
			Recommendation: "fixed costs dominate at this scale; evaluate leasing additional area",
		})
	}

	return factors
}
