package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExecuteScenarioRequest struct {
	ScenarioID string `json:"scenarioId"`
}

func (m ApiHandler) executeScenario(c *gin.Context) {
	ctx, profile := profiledContext(c)
	defer profile.End()

	var requestBody ExecuteScenarioRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	scenarioID, err := uuid.Parse(requestBody.ScenarioID)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid scenarioId: %w", err), c, 400)
		return
	}

	executed, err := m.ScenarioService.Execute(ctx, scenarioID, userIDFromContext(c))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, executed)
}
