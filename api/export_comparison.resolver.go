package api

import (
	"bytes"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
)

type comparisonCsvRow struct {
	Rank            int     `csv:"rank"`
	Name            string  `csv:"name"`
	ScenarioType    string  `csv:"scenario_type"`
	Margin          float64 `csv:"margin"`
	MarginPercent   float64 `csv:"margin_percent"`
	RoiPercent      float64 `csv:"roi_percent"`
	TotalCost       float64 `csv:"total_cost"`
	RiskFactorCount int     `csv:"risk_factor_count"`
	RiskLevel       string  `csv:"risk_level"`
	Score           float64 `csv:"score"`
}

// exportComparison runs the same comparison as /compareScenarios and
// streams the ranking back as a CSV download.
func (m ApiHandler) exportComparison(c *gin.Context) {
	ctx, profile := profiledContext(c)
	defer profile.End()

	var requestBody CompareScenariosRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	result, err := m.runComparison(ctx, requestBody)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	rows := make([]comparisonCsvRow, 0, len(result.Ranking))
	for i, row := range result.Ranking {
		rows = append(rows, comparisonCsvRow{
			Rank:            i + 1,
			Name:            row.Name,
			ScenarioType:    string(row.ScenarioType),
			Margin:          row.Margin,
			MarginPercent:   row.MarginPercent,
			RoiPercent:      row.RoiPercent,
			TotalCost:       row.TotalCost,
			RiskFactorCount: row.RiskFactorCount,
			RiskLevel:       string(row.RiskLevel),
			Score:           row.Score,
		})
	}

	buf := bytes.Buffer{}
	if err := gocsv.Marshal(rows, &buf); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="comparison.csv"`)
	c.Data(200, "text/csv", buf.Bytes())
}
