package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"agroplan/api"
	"agroplan/internal"
	"agroplan/internal/repository"
	l1_service "agroplan/internal/service/l1"
	l2_service "agroplan/internal/service/l2"
	l3_service "agroplan/internal/service/l3"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	scenarioRepository := repository.NewScenarioRepository(dbConn)
	alertRepository := repository.NewPredictiveAlertRepository(dbConn)
	projectionRepository := repository.NewProjectionRepository(dbConn)
	decisionAuditRepository := repository.NewDecisionAuditRepository(dbConn)
	marketPriceRepository := repository.NewMarketPriceRepository()

	advisoryRepository, err := repository.NewAdvisoryRepository(secrets.ChatGPTApiKey)
	if err != nil {
		return nil, err
	}
	emailRepository, err := repository.NewEmailRepository(secrets.Ses.Region, secrets.Ses.FromAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to create email repository: %w", err)
	}

	alertService := l1_service.NewAlertService(alertRepository)
	alertDigestService := l1_service.NewAlertDigestService(alertRepository, emailRepository)
	riskService := l2_service.NewRiskService(l2_service.DefaultRiskThresholds())
	screenerService := l2_service.NewScreenerService()

	scenarioService := l3_service.NewScenarioService(
		scenarioRepository,
		projectionRepository,
		decisionAuditRepository,
		riskService,
		alertService,
	)
	variantService := l3_service.NewVariantService(scenarioRepository, scenarioService)
	comparisonService := l3_service.NewComparisonService(scenarioRepository)

	apiHandler := &api.ApiHandler{
		Db:                        dbConn,
		ScenarioRepository:        scenarioRepository,
		PredictiveAlertRepository: alertRepository,
		MarketPriceRepository:     marketPriceRepository,
		AdvisoryRepository:        advisoryRepository,
		ScenarioService:           scenarioService,
		VariantService:            variantService,
		ComparisonService:         comparisonService,
		ScreenerService:           screenerService,
		AlertDigestService:        alertDigestService,
		SupabaseDecodeToken:       secrets.SupabaseDecodeToken,
	}

	return apiHandler, nil
}
