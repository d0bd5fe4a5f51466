package api

import (
	"fmt"

	"agroplan/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScreenScenariosRequest struct {
	FirmID     string `json:"firmId"`
	Expression string `json:"expression"`
}

// screenScenarios filters a firm's executed scenarios with a metric
// expression, e.g. "margin > 0 && roiPercent > 10".
func (m ApiHandler) screenScenarios(c *gin.Context) {
	var requestBody ScreenScenariosRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	firmID, err := uuid.Parse(requestBody.FirmID)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid firmId: %w", err), c, 400)
		return
	}

	scenarios, err := m.ScenarioRepository.List(repository.ScenarioListFilter{
		FirmID: &firmID,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	matches, err := m.ScreenerService.Screen(scenarios, requestBody.Expression)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, gin.H{"scenarioIds": matches})
}
