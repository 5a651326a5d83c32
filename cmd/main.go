package main

import (
	"context"

	"visa-console-backend/config"
	"visa-console-backend/middleware"
	"visa-console-backend/token"
	"visa-console-backend/utils"

	// Repositories
	agents_repositories "visa-console-backend/agents/repositories"
	applicants_repositories "visa-console-backend/applicants/repositories"
	countries_repositories "visa-console-backend/countries/repositories"
	payments_repositories "visa-console-backend/payments/repositories"
	pcc_repositories "visa-console-backend/pcc/repositories"
	records_repositories "visa-console-backend/records/repositories"
	users_repositories "visa-console-backend/users/repositories"

	// Routes
	agent_routes "visa-console-backend/agents/routes"
	applicant_routes "visa-console-backend/applicants/routes"
	country_routes "visa-console-backend/countries/routes"
	dashboard_routes "visa-console-backend/dashboard/routes"
	payment_routes "visa-console-backend/payments/routes"
	pcc_routes "visa-console-backend/pcc/routes"
	record_routes "visa-console-backend/records/routes"
	user_routes "visa-console-backend/users/routes"

	dashboard_controllers "visa-console-backend/dashboard/controllers"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Initialize Zap logger
	config.InitLogger()

	// Load environment variables
	err := godotenv.Load(".env")
	if err != nil {
		config.Logger.Fatal("Error loading .env file", zap.Error(err))
	}

	app := fiber.New()

	// Apply CORS middleware from middleware package
	middleware.InitCors(app)

	// Initialize database and configs
	db := config.ConfigureDatabase()
	port := config.GetEnvOrDefault("PORT", "8080")
	ctx := context.Background()

	redisClient := config.InitRedisServer(ctx)

	tokenKey := config.GetEnv("TOKEN_SYMMETRIC_KEY")
	tokenMaker, err := token.NewPasetoMaker(tokenKey)
	if err != nil {
		config.Logger.Fatal("Cannot create token maker", zap.Error(err))
	}

	appCtx := &middleware.AppContext{
		PasetoMaker: tokenMaker,
		Ctx:         ctx,
		RedisClient: redisClient,
	}

	// Repositories
	userRepo := users_repositories.NewUserRepository(db)
	applicantRepo := applicants_repositories.NewApplicantRepository(db)
	agentRepo := agents_repositories.NewAgentRepository(db)
	countryRepo := countries_repositories.NewCountryRepository(db)
	recordRepo := records_repositories.NewRecordRepository(db)
	paymentRepo := payments_repositories.NewPaymentRepository(db)
	pccRepo := pcc_repositories.NewPccRepository(db)

	dashboardController := dashboard_controllers.NewDashboardController(
		applicantRepo,
		recordRepo,
		paymentRepo,
		agentRepo,
		pccRepo,
	)

	// Routes
	user_routes.InitUserRoutes(app, appCtx, userRepo)
	applicant_routes.InitApplicantRoutes(app, appCtx, applicantRepo)
	agent_routes.InitAgentRoutes(app, appCtx, agentRepo)
	country_routes.InitCountryRoutes(app, appCtx, countryRepo)
	record_routes.InitRecordRoutes(app, appCtx, recordRepo)
	payment_routes.InitPaymentRoutes(app, appCtx, paymentRepo)
	pcc_routes.InitPccRoutes(app, appCtx, pccRepo)
	dashboard_routes.InitDashboardRoutes(app, appCtx, dashboardController)

	// Sweep stale export files daily
	cleanupScheduler := utils.RunScheduledCleanup()
	defer cleanupScheduler.Stop()

	config.Logger.Info("Starting server", zap.String("port", port))
	if err := app.Listen(":" + port); err != nil {
		config.Logger.Fatal("Server stopped", zap.Error(err))
	}
}
