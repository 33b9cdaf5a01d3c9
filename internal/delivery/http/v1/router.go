package v1

import (
	"net/http"
	"time"

	"grh-backend/config"
	"grh-backend/internal/delivery/http/middleware"
	"grh-backend/internal/delivery/http/response"
	"grh-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	JobOfferUC  domain.JobOfferUsecase
	CandidateUC domain.CandidateUsecase
	EmployeeUC  domain.EmployeeUsecase
	HRUC        domain.HRUsecase
	InsightUC   domain.InsightUsecase
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loginLimiter := middleware.RateLimit(middleware.RateLimitConfig{
		Limit:     deps.Config.RateLimitLoginThreshold,
		Window:    time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
		KeyPrefix: "rl:login:",
	})

	// Protected routes resolve the session to a user; the admin/hr permission
	// gate itself lives in the usecases.
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config, deps.AuthUC))

	NewAuthHandler(v1, protected, deps.AuthUC, deps.Config, loginLimiter)
	NewJobOfferHandler(v1, protected, deps.JobOfferUC)
	NewCandidateHandler(v1, protected, deps.CandidateUC)
	NewEmployeeHandler(v1, protected, deps.EmployeeUC)
	NewHRHandler(protected, deps.HRUC)
	NewInsightHandler(v1, protected, deps.InsightUC)

	return r
}
