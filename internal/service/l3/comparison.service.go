package l3_service

import (
	"context"
	"fmt"
	"sort"

	"agroplan/internal/domain"
	"agroplan/internal/repository"

	"github.com/google/uuid"
)

const maxScore = 10.0

// ComparisonService normalizes executed scenarios onto a 0-10 scale,
// weights the criteria, ranks, and explains the ranking.
type ComparisonService interface {
	Compare(ctx context.Context, scenarioIDs []uuid.UUID, weights *domain.CriteriaWeights) (*domain.ComparisonResult, error)
}

type comparisonServiceHandler struct {
	ScenarioRepository repository.ScenarioRepository
}

func NewComparisonService(scenarioRepository repository.ScenarioRepository) ComparisonService {
	return comparisonServiceHandler{ScenarioRepository: scenarioRepository}
}

// Compare accepts caller weights verbatim - no renormalization when
// they don't sum to 1. Ties keep the caller's input order
// (sort.SliceStable); neither behavior is strengthened here.
func (h comparisonServiceHandler) Compare(ctx context.Context, scenarioIDs []uuid.UUID, weights *domain.CriteriaWeights) (*domain.ComparisonResult, error) {
	profile, endProfile := domain.GetProfile(ctx)
	defer endProfile()

	if len(scenarioIDs) == 0 {
		return nil, fmt.Errorf("cannot compare 0 scenarios")
	}

	w := domain.DefaultCriteriaWeights()
	if weights != nil {
		w = *weights
	}

	_, endSpan := profile.StartNewSpan("load scenarios")
	scored := make([]domain.ScoredScenario, 0, len(scenarioIDs))
	for _, id := range scenarioIDs {
		scenario, err := h.ScenarioRepository.Get(id)
		if err != nil {
			return nil, err
		}
		if scenario.Results == nil {
			return nil, fmt.Errorf("scenario %s has not been executed and cannot be compared", id)
		}
		results, err := domain.ParseSimulationResults([]byte(*scenario.Results))
		if err != nil {
			return nil, err
		}
		if results.Economic == nil {
			return nil, fmt.Errorf("scenario %s has no economic results to compare", id)
		}

		row := domain.ScoredScenario{
			ScenarioID:      scenario.ScenarioID,
			Name:            scenario.Name,
			ScenarioType:    domain.ScenarioType(scenario.ScenarioType),
			Margin:          results.Economic.Margin,
			MarginPercent:   results.Economic.MarginPercent,
			RoiPercent:      results.Economic.RoiPercent,
			TotalCost:       results.Economic.TotalCost,
			RiskFactorCount: len(results.RiskFactors),
			RiskLevel:       results.RiskLevel,
		}
		row.MarginScore = marginScore(results.Economic.MarginPercent, results.Economic.Revenue)
		row.ROIScore = roiScore(results.Economic.RoiPercent)
		row.RiskScore = riskScore(results.RiskFactors, results.RiskLevel)

		score := row.MarginScore*w.Margin + row.ROIScore*w.ROI + row.RiskScore*w.Risk
		if score > maxScore {
			score = maxScore
		}
		row.Score = score

		scored = append(scored, row)
	}
	endSpan()

	_, endSpan = profile.StartNewSpan("rank and analyze")
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	result := &domain.ComparisonResult{
		Ranking:  scored,
		Winner:   scored[0],
		Analysis: buildAnalysis(scored),
		Weights:  w,
	}
	endSpan()

	return result, nil
}

// marginScore buckets marginPercent onto 0-10. Monotonically
// non-decreasing across bucket boundaries.
func marginScore(marginPercent float64, revenue float64) float64 {
	if revenue <= 0 {
		return 0
	}
	switch {
	case marginPercent > 50:
		return 10
	case marginPercent > 40:
		return 9
	case marginPercent > 30:
		return 8
	case marginPercent > 20:
		return 7
	case marginPercent > 10:
		return 6
	case marginPercent > 0:
		return 4
	case marginPercent > -10:
		return 2
	default:
		return 0
	}
}

func roiScore(roiPercent float64) float64 {
	switch {
	case roiPercent > 100:
		return 10
	case roiPercent > 50:
		return 9
	case roiPercent > 25:
		return 8
	case roiPercent > 10:
		return 7
	case roiPercent > 5:
		return 5
	case roiPercent > 0:
		return 3
	case roiPercent > -5:
		return 1
	default:
		return 0
	}
}

// riskScore starts at 10 minus 2 per detected factor (floored at 2),
// then shifts by the explicit risk signal: a LOW classification earns
// +2, HIGH costs 2, and any CRITICAL-severity factor costs 4.
func riskScore(factors []domain.RiskFactor, riskLevel domain.Severity) float64 {
	base := 10.0 - 2.0*float64(len(factors))
	if base < 2 {
		base = 2
	}

	adjustment := 0.0
	switch riskLevel {
	case domain.Severity_Low:
		adjustment = 2
	case domain.Severity_High:
		adjustment = -2
	}
	for _, factor := range factors {
		if factor.Severity == domain.Severity_Critical {
			adjustment = -4
			break
		}
	}

	score := base + adjustment
	if score < 0 {
		score = 0
	}
	if score > maxScore {
		score = maxScore
	}
	return score
}

func buildAnalysis(ranking []domain.ScoredScenario) domain.ComparisonAnalysis {
	winner := ranking[0]

	analysis := domain.ComparisonAnalysis{
		WinnerName:     winner.Name,
		WinnerScore:    winner.Score,
		Strengths:      strengths(winner),
		Weaknesses:     weaknesses(winner),
		Recommendation: recommendationFor(winner),
	}
	if len(ranking) > 1 {
		analysis.RunnerUpName = ranking[1].Name
	}

	highestMargin := ranking[0]
	highestROI := ranking[0]
	lowestRisk := ranking[0]
	lowestCost := ranking[0]
	for _, row := range ranking[1:] {
		if row.Margin > highestMargin.Margin {
			highestMargin = row
		}
		if row.RoiPercent > highestROI.RoiPercent {
			highestROI = row
		}
		if row.RiskScore > lowestRisk.RiskScore {
			lowestRisk = row
		}
		if row.TotalCost < lowestCost.TotalCost {
			lowestCost = row
		}
	}
	analysis.HighestMargin = highestMargin.Name
	analysis.HighestROI = highestROI.Name
	analysis.LowestRisk = lowestRisk.Name
	analysis.LowestCost = lowestCost.Name

	return analysis
}

func strengths(s domain.ScoredScenario) []string {
	out := []string{}
	if s.MarginScore >= 8 {
		out = append(out, "strong projected margin")
	}
	if s.ROIScore >= 8 {
		out = append(out, "strong return on investment")
	}
	if s.RiskScore >= 8 {
		out = append(out, "low risk exposure")
	}
	return out
}

func weaknesses(s domain.ScoredScenario) []string {
	out := []string{}
	if s.MarginScore <= 4 {
		out = append(out, "weak projected margin")
	}
	if s.ROIScore <= 4 {
		out = append(out, "weak return on investment")
	}
	if s.RiskScore <= 4 {
		out = append(out, "high risk exposure")
	}
	return out
}

// recommendationFor applies the product's rules to the winner; the
// first matching rule wins.
func recommendationFor(winner domain.ScoredScenario) string {
	switch {
	case winner.Margin < 0:
		return "Not recommended: the projected margin is negative."
	case winner.RoiPercent < 5:
		return "Low return: the projected ROI does not justify the capital at risk."
	case winner.RiskFactorCount > 3:
		return "High risk: proceed with caution and mitigate the flagged risk factors first."
	case winner.Margin > 50_000 && winner.RoiPercent > 25:
		return "Highly recommended: strong margin and return with the best overall profile."
	case winner.Margin > 20_000 && winner.RoiPercent > 10:
		return "Recommended: solid margin and return relative to the alternatives."
	default:
		return "Viable: evaluate against the alternatives before committing."
	}
}
