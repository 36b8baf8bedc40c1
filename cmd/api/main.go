package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "loanflow-service/internal/adapter/http"
	"loanflow-service/internal/adapter/middleware"
	"loanflow-service/internal/adapter/repository/mysql"
	"loanflow-service/internal/config"
	"loanflow-service/internal/infrastructure/cache"
	"loanflow-service/internal/infrastructure/db"
	authUC "loanflow-service/internal/usecase/auth"
	customerUC "loanflow-service/internal/usecase/customer"
	dashboardUC "loanflow-service/internal/usecase/dashboard"
	loanUC "loanflow-service/internal/usecase/loan"
	perceptionUC "loanflow-service/internal/usecase/perception"
	requestUC "loanflow-service/internal/usecase/request"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		logger.Fatal("mysql connect failed", zap.Error(err))
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		logger.Fatal("redis connect failed", zap.Error(err))
	}

	// repositories
	customers := mysql.NewCustomerRepository(gdb)
	identities := mysql.NewIdentityStore(gdb)
	loans := mysql.NewLoanRepository(gdb)
	requests := mysql.NewRequestRepository(gdb)
	references := mysql.NewReferenceRepository(gdb)
	history := mysql.NewHistoryRepository(gdb)
	documents := mysql.NewDocumentRepository(gdb)
	perceptions := mysql.NewPerceptionRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	// usecases
	auth := authUC.NewUsecase(identities, customers, tx, cfg.JWTSecret, cfg.JWTTTL, logger)
	customer := customerUC.NewUsecase(customers, identities, logger)
	loan := loanUC.NewUsecase(loans)
	request := requestUC.NewUsecase(requests, references, history, documents, loans, customers, tx, logger)
	perception := perceptionUC.NewUsecase(perceptions, requests, loans, customers, logger)
	dashboard := dashboardUC.NewUsecase(requests, perceptions, rdb,
		time.Duration(cfg.DashboardTTLSecs)*time.Second, logger)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	authMW := middleware.Auth(auth)
	adminMW := middleware.RequireAdmin()
	idemMW := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, logger)

	httpadp.RegisterRoutes(e, httpadp.Handlers{
		Base:       httpadp.NewHandler(),
		Auth:       httpadp.NewAuthHandler(auth),
		Customer:   httpadp.NewCustomerHandler(customer),
		Loan:       httpadp.NewLoanHandler(loan),
		Request:    httpadp.NewRequestHandler(request, customer),
		Perception: httpadp.NewPerceptionHandler(perception),
		Dashboard:  httpadp.NewDashboardHandler(dashboard),
	}, authMW, adminMW, idemMW)

	addr := ":" + cfg.AppPort
	logger.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
