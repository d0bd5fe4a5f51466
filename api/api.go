package api

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"agroplan/internal/domain"
	"agroplan/internal/logger"
	"agroplan/internal/repository"
	l1_service "agroplan/internal/service/l1"
	l2_service "agroplan/internal/service/l2"
	l3_service "agroplan/internal/service/l3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db                        *sql.DB
	ScenarioRepository        repository.ScenarioRepository
	PredictiveAlertRepository repository.PredictiveAlertRepository
	MarketPriceRepository     repository.MarketPriceRepository
	AdvisoryRepository        repository.AdvisoryRepository
	ScenarioService           l3_service.ScenarioService
	VariantService            l3_service.VariantService
	ComparisonService         l3_service.ComparisonService
	ScreenerService           l2_service.ScreenerService
	AlertDigestService        l1_service.AlertDigestService
	SupabaseDecodeToken       string
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)
	router.Use(m.authMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to agroplan"})
	})

	router.POST("/scenarios", m.createScenario)
	router.GET("/scenarios", m.listScenarios)
	router.GET("/scenarios/:id", m.getScenario)
	router.DELETE("/scenarios/:id", m.deleteScenario)

	router.POST("/executeScenario", m.executeScenario)
	router.POST("/convertScenario", m.convertScenario)
	router.POST("/generateVariants", m.generateVariants)
	router.POST("/compareScenarios", m.compareScenarios)
	router.POST("/screenScenarios", m.screenScenarios)
	router.POST("/exportComparison", m.exportComparison)
	router.POST("/adviseComparison", m.adviseComparison)

	router.GET("/alerts", m.listAlerts)
	router.POST("/sendAlertDigest", m.sendAlertDigest)

	router.GET("/suggestPrice", m.suggestPrice)
	router.GET("/suggestRainfall", m.suggestRainfall)

	return router
}

func returnErrorJson(err error, c *gin.Context) {
	code := 500
	if errors.Is(err, qrm.ErrNoRows) {
		code = 404
	}
	returnErrorJsonCode(err, c, code)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// authMiddleware verifies a Bearer token when one is presented and
// stashes the caller's user id in the request context. Requests without
// a token pass through - the engine sits behind a gateway in prod and
// runs open in dev.
func (m ApiHandler) authMiddleware(ctx *gin.Context) {
	authHeader := ctx.GetHeader("Authorization")
	if authHeader == "" {
		ctx.Next()
		return
	}

	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	parsed, err := parseSupabaseJWT(tokenStr, m.SupabaseDecodeToken)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid auth token: %w", err), ctx, 401)
		return
	}

	userID, err := uuid.Parse(parsed.Subject)
	if err == nil {
		ctx.Set("userID", userID)
	}

	ctx.Next()
}

// userIDFromContext returns the authenticated user, if any. Anonymous
// requests get a nil user and still work.
func userIDFromContext(ctx *gin.Context) *uuid.UUID {
	v, ok := ctx.Get("userID")
	if !ok {
		return nil
	}
	userID, ok := v.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	start := time.Now().UTC()
	ctx.Next()

	logger.Info("%s %s -> %d (%dms)",
		ctx.Request.Method,
		ctx.Request.URL.Path,
		ctx.Writer.Status(),
		time.Since(start).Milliseconds(),
	)
}

// profiledContext seeds the request context with a fresh performance
// profile so the service layer's spans land in one place.
func profiledContext(c *gin.Context) (context.Context, *domain.Profile) {
	profile, _ := domain.NewProfile()
	return context.WithValue(c.Request.Context(), domain.ContextProfileKey, profile), profile
}
