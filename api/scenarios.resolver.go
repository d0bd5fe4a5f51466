package api

import (
	"encoding/json"
	"fmt"
	"strconv"

	"agroplan/internal/db/models/postgres/public/model"
	"agroplan/internal/domain"
	"agroplan/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateScenarioRequest struct {
	FirmID          string                `json:"firmId"`
	PremiseID       *string               `json:"premiseId"`
	LotID           *string               `json:"lotId"`
	Name            string                `json:"name"`
	Description     *string               `json:"description"`
	SimulationType  string                `json:"simulationType"`
	BaseReference   *domain.BaseReference `json:"baseReference"`
	InputParameters json.RawMessage       `json:"inputParameters"`
}

func (m ApiHandler) createScenario(c *gin.Context) {
	var requestBody CreateScenarioRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	firmID, err := uuid.Parse(requestBody.FirmID)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid firmId: %w", err), c, 400)
		return
	}
	if requestBody.Name == "" {
		returnErrorJsonCode(fmt.Errorf("scenario name is required"), c, 400)
		return
	}

	simulationType, err := domain.ParseSimulationType(requestBody.SimulationType)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	// reject malformed parameters at the door - a DRAFT that can never
	// execute helps nobody
	if _, err := domain.ParseInputParameters(simulationType, requestBody.InputParameters); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	scenario := model.Scenario{
		ScenarioID:      uuid.New(),
		FirmID:          firmID,
		Name:            requestBody.Name,
		Description:     requestBody.Description,
		ScenarioType:    string(domain.ScenarioType_Custom),
		SimulationType:  string(simulationType),
		InputParameters: string(requestBody.InputParameters),
		Status:          string(domain.ScenarioStatus_Draft),
	}
	if requestBody.PremiseID != nil {
		premiseID, err := uuid.Parse(*requestBody.PremiseID)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid premiseId: %w", err), c, 400)
			return
		}
		scenario.PremiseID = &premiseID
	}
	if requestBody.LotID != nil {
		lotID, err := uuid.Parse(*requestBody.LotID)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid lotId: %w", err), c, 400)
			return
		}
		scenario.LotID = &lotID
	}
	if requestBody.BaseReference != nil {
		scenario.BaseReferenceKind = &requestBody.BaseReference.Kind
		scenario.BaseReferenceID = &requestBody.BaseReference.ID
	}

	inserted, err := m.ScenarioRepository.Add(scenario)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, inserted)
}

func (m ApiHandler) getScenario(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid scenario id: %w", err), c, 400)
		return
	}

	scenario, err := m.ScenarioRepository.Get(id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, scenario)
}

func (m ApiHandler) listScenarios(c *gin.Context) {
	filter := repository.ScenarioListFilter{}

	if v := c.Query("firmId"); v != "" {
		firmID, err := uuid.Parse(v)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid firmId: %w", err), c, 400)
			return
		}
		filter.FirmID = &firmID
	}
	if v := c.Query("premiseId"); v != "" {
		premiseID, err := uuid.Parse(v)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid premiseId: %w", err), c, 400)
			return
		}
		filter.PremiseID = &premiseID
	}
	if v := c.Query("lotId"); v != "" {
		lotID, err := uuid.Parse(v)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid lotId: %w", err), c, 400)
			return
		}
		filter.LotID = &lotID
	}
	if v := c.Query("simulationType"); v != "" {
		simulationType, err := domain.ParseSimulationType(v)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		filter.SimulationType = &simulationType
	}
	if v := c.Query("scenarioType"); v != "" {
		scenarioType, err := domain.ParseScenarioType(v)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		filter.ScenarioType = &scenarioType
	}
	if v := c.Query("status"); v != "" {
		status, err := domain.ParseScenarioStatus(v)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		filter.Status = &status
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.ParseInt(v, 10, 64)
		if err != nil || limit <= 0 {
			returnErrorJsonCode(fmt.Errorf("invalid limit %q", v), c, 400)
			return
		}
		filter.Limit = &limit
	}

	scenarios, err := m.ScenarioRepository.List(filter)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"scenarios": scenarios})
}

func (m ApiHandler) deleteScenario(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid scenario id: %w", err), c, 400)
		return
	}

	if err := m.ScenarioRepository.Delete(id); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"deleted": id})
}
