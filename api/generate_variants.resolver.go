package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GenerateVariantsRequest struct {
	ScenarioID string `json:"scenarioId"`
}

func (m ApiHandler) generateVariants(c *gin.Context) {
	ctx, profile := profiledContext(c)
	defer profile.End()

	var requestBody GenerateVariantsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	scenarioID, err := uuid.Parse(requestBody.ScenarioID)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid scenarioId: %w", err), c, 400)
		return
	}

	variants, err := m.VariantService.GenerateVariants(ctx, scenarioID, userIDFromContext(c))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"variants": variants})
}
