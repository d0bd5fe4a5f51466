package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ConvertScenarioRequest struct {
	ScenarioID string `json:"scenarioId"`
}

func (m ApiHandler) convertScenario(c *gin.Context) {
	var requestBody ConvertScenarioRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	scenarioID, err := uuid.Parse(requestBody.ScenarioID)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid scenarioId: %w", err), c, 400)
		return
	}

	scenario, projection, err := m.ScenarioService.Convert(c.Request.Context(), scenarioID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"scenario":   scenario,
		"projection": projection,
	})
}
