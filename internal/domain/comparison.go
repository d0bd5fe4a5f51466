package domain

import "github.com/google/uuid"

// CriteriaWeights weight the normalized margin/ROI/risk scores. They
// are used exactly as supplied - a caller passing weights that don't
// sum to 1 gets exactly what they asked for.
type CriteriaWeights struct {
	Margin float64 `json:"margin"`
	ROI    float64 `json:"roi"`
	Risk   float64 `json:"risk"`
}

func DefaultCriteriaWeights() CriteriaWeights {
	return CriteriaWeights{
		Margin: 0.4,
		ROI:    0.3,
		Risk:   0.3,
	}
}

// ScoredScenario is one row of a comparison ranking.
type ScoredScenario struct {
	ScenarioID      uuid.UUID    `json:"scenarioId"`
	Name            string       `json:"name"`
	ScenarioType    ScenarioType `json:"scenarioType"`
	Margin          float64      `json:"margin"`
	MarginPercent   float64      `json:"marginPercent"`
	RoiPercent      float64      `json:"roiPercent"`
	TotalCost       float64      `json:"totalCost"`
	RiskFactorCount int          `json:"riskFactorCount"`
	RiskLevel       Severity     `json:"riskLevel"`
	MarginScore     float64      `json:"marginScore"`
	ROIScore        float64      `json:"roiScore"`
	RiskScore       float64      `json:"riskScore"`
	Score           float64      `json:"score"`
}

// ComparisonAnalysis is the qualitative half of a comparison result.
type ComparisonAnalysis struct {
	WinnerName     string   `json:"winnerName"`
	WinnerScore    float64  `json:"winnerScore"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	Recommendation string   `json:"recommendation"`
	RunnerUpName   string   `json:"runnerUpName,omitempty"`
	HighestMargin  string   `json:"highestMargin"`
	HighestROI     string   `json:"highestRoi"`
	LowestRisk     string   `json:"lowestRisk"`
	LowestCost     string   `json:"lowestCost"`
}

// ComparisonResult is ephemeral - the engine never persists it.
type ComparisonResult struct {
	Ranking  []ScoredScenario   `json:"ranking"`
	Winner   ScoredScenario     `json:"winner"`
	Analysis ComparisonAnalysis `json:"analysis"`
	Weights  CriteriaWeights    `json:"weights"`
}
