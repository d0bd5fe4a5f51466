package l3_service

import (
	"context"
	"fmt"

	"agroplan/internal/db/models/postgres/public/model"
	"agroplan/internal/domain"
	"agroplan/internal/logger"
	"agroplan/internal/repository"
	"agroplan/internal/util"

	"github.com/google/uuid"
)

type variantDefinition struct {
	Label        string
	ScenarioType domain.ScenarioType
	Factors      domain.PerturbationFactors
}

// The three what-if perturbations applied to a base scenario. Factors
// multiply price, weight gain / yield, cost components, and expected
// rainfall respectively.
var variantDefinitions = []variantDefinition{
	{
		Label:        "Optimistic",
		ScenarioType: domain.ScenarioType_Optimistic,
		Factors:      domain.PerturbationFactors{Price: 1.15, Gain: 1.20, Cost: 1.00, Rainfall: 1.00},
	},
	{
		Label:        "Conservative",
		ScenarioType: domain.ScenarioType_Conservative,
		Factors:      domain.PerturbationFactors{Price: 0.90, Gain: 0.90, Cost: 1.10, Rainfall: 0.80},
	},
	{
		Label:        "Critical",
		ScenarioType: domain.ScenarioType_Critical,
		Factors:      domain.PerturbationFactors{Price: 0.75, Gain: 0.70, Cost: 1.20, Rainfall: 0.60},
	},
}

// VariantService derives the Optimistic/Conservative/Critical what-if
// scenarios from a base scenario and executes each one.
type VariantService interface {
	GenerateVariants(ctx context.Context, baseScenarioID uuid.UUID, executedBy *uuid.UUID) ([]model.Scenario, error)
}

type variantServiceHandler struct {
	ScenarioRepository repository.ScenarioRepository
	ScenarioService    ScenarioService
}

func NewVariantService(
	scenarioRepository repository.ScenarioRepository,
	scenarioService ScenarioService,
) VariantService {
	return variantServiceHandler{
		ScenarioRepository: scenarioRepository,
		ScenarioService:    scenarioService,
	}
}

// GenerateVariants runs sequentially on purpose: one variant failing to
// insert or execute is logged and skipped, and the rest of the batch
// still comes back. Partial success is the contract.
func (h variantServiceHandler) GenerateVariants(ctx context.Context, baseScenarioID uuid.UUID, executedBy *uuid.UUID) ([]model.Scenario, error) {
	base, err := h.ScenarioRepository.Get(baseScenarioID)
	if err != nil {
		return nil, err
	}

	simulationType, err := domain.ParseSimulationType(base.SimulationType)
	if err != nil {
		return nil, err
	}
	baseParams, err := domain.ParseInputParameters(simulationType, []byte(base.InputParameters))
	if err != nil {
		return nil, fmt.Errorf("cannot derive variants from invalid base parameters: %w", err)
	}

	lg := logger.FromContext(ctx)
	out := []model.Scenario{}
	for _, def := range variantDefinitions {
		perturbed := baseParams.Perturb(def.Factors)
		paramsJSON, err := domain.MarshalInputParameters(perturbed)
		if err != nil {
			lg.Warnf("skipping %s variant of scenario %s: %v", def.Label, baseScenarioID, err)
			continue
		}

		description := fmt.Sprintf("%s variant of scenario %q", def.Label, base.Name)
		inserted, err := h.ScenarioRepository.Add(model.Scenario{
			ScenarioID:        uuid.New(),
			FirmID:            base.FirmID,
			PremiseID:         base.PremiseID,
			LotID:             base.LotID,
			Name:              fmt.Sprintf("%s - %s", base.Name, def.Label),
			Description:       &description,
			ScenarioType:      string(def.ScenarioType),
			SimulationType:    base.SimulationType,
			BaseReferenceKind: util.StrPtr("SCENARIO"),
			BaseReferenceID:   util.StrPtr(base.ScenarioID.String()),
			InputParameters:   paramsJSON,
			Status:            string(domain.ScenarioStatus_Draft),
		})
		if err != nil {
			lg.Warnf("skipping %s variant of scenario %s: %v", def.Label, baseScenarioID, err)
			continue
		}

		executed, err := h.ScenarioService.Execute(ctx, inserted.ScenarioID, executedBy)
		if err != nil {
			lg.Warnf("skipping %s variant of scenario %s: execution failed: %v", def.Label, baseScenarioID, err)
			continue
		}

		out = append(out, *executed)
	}

	return out, nil
}
