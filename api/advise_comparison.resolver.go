package api

import (
	"encoding/json"
	"fmt"

	"agroplan/internal/logger"

	"github.com/gin-gonic/gin"
)

// adviseComparison layers an LLM-written narrative on top of the
// deterministic comparison. The ranking and recommendation come from
// the scoring engine either way; the narrative is decoration.
func (m ApiHandler) adviseComparison(c *gin.Context) {
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

	summary, err := json.Marshal(result)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to serialize comparison summary: %w", err), c)
		return
	}

	// the narrative is best-effort; the deterministic comparison still
	// goes back if the model call fails
	advisory, err := m.AdvisoryRepository.AdviseOnComparison(ctx, string(summary))
	if err != nil {
		logger.Error(err)
		advisory = ""
	}

	c.JSON(200, gin.H{
		"advisory":   advisory,
		"comparison": result,
	})
}
