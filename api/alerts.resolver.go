package api

import (
	"fmt"

	"agroplan/internal/domain"
	"agroplan/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) listAlerts(c *gin.Context) {
	filter := repository.PredictiveAlertListFilter{}

	if v := c.Query("firmId"); v != "" {
		firmID, err := uuid.Parse(v)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid firmId: %w", err), c, 400)
			return
		}
		filter.FirmID = &firmID
	}
	if v := c.Query("scenarioId"); v != "" {
		scenarioID, err := uuid.Parse(v)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid scenarioId: %w", err), c, 400)
			return
		}
		filter.ScenarioID = &scenarioID
	}
	if v := c.Query("status"); v != "" {
		status, err := domain.ParseAlertStatus(v)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		filter.Status = &status
	}

	alerts, err := m.PredictiveAlertRepository.List(filter)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"alerts": alerts})
}
