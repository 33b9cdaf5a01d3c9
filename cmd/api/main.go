package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grh-backend/config"
	_ "grh-backend/docs" // Important for Swagger
	v1 "grh-backend/internal/delivery/http/v1"
	"grh-backend/internal/repository/postgres"
	"grh-backend/internal/usecase"
	"grh-backend/pkg/ai"
	"grh-backend/pkg/database"
	"grh-backend/pkg/logger"
	"grh-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           GRH Backend API
// @version         1.0
// @description     Backend for the bilingual HR management system (employees, attendance, leave, payroll, training, recruitment, AI insights).
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting GRH backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (login rate limiting; optional)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	offerRepo := postgres.NewJobOfferRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	employeeRepo := postgres.NewEmployeeRepository(dbPool)
	hrRepo := postgres.NewHRRepository(dbPool)
	statsRepo := postgres.NewStatsRepository(dbPool)

	// 6. Setup AI Generator
	generator := ai.NewOpenAIGenerator(cfg.AIAPIKey, cfg.AIAPIBase, cfg.AIModel)

	// 7. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(userRepo)
	offerUC := usecase.NewJobOfferUsecase(offerRepo)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo)
	employeeUC := usecase.NewEmployeeUsecase(employeeRepo, validate)
	hrUC := usecase.NewHRUsecase(hrRepo)
	insightUC := usecase.NewInsightUsecase(statsRepo, candidateRepo, generator)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		JobOfferUC:  offerUC,
		CandidateUC: candidateUC,
		EmployeeUC:  employeeUC,
		HRUC:        hrUC,
		InsightUC:   insightUC,
		Config:      cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
