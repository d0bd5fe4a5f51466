package api

import (
	"context"
	"fmt"

	"agroplan/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CompareScenariosRequest struct {
	ScenarioIDs []string                `json:"scenarioIds"`
	Weights     *domain.CriteriaWeights `json:"weights"`
}

func (m ApiHandler) compareScenarios(c *gin.Context) {
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

	c.JSON(200, result)
}

func (m ApiHandler) runComparison(ctx context.Context, requestBody CompareScenariosRequest) (*domain.ComparisonResult, error) {
	scenarioIDs := make([]uuid.UUID, 0, len(requestBody.ScenarioIDs))
	for _, raw := range requestBody.ScenarioIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid scenario id %q: %w", raw, err)
		}
		scenarioIDs = append(scenarioIDs, id)
	}

	return m.ComparisonService.Compare(ctx, scenarioIDs, requestBody.Weights)
}
