package routes

import (
	"log"

	"smarthaus/config"
	_ "smarthaus/docs"
	"smarthaus/internal/adapter/http/handlers"
	"smarthaus/internal/adapter/persistence/repository"
	"smarthaus/internal/infrastructure/database"
	"smarthaus/internal/infrastructure/mailer"
	"smarthaus/internal/infrastructure/payments"
	"smarthaus/internal/infrastructure/planner"
	"smarthaus/internal/usecase"
	"smarthaus/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run wires the application and starts the server.
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := config.AppConfig.Server.Port
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

func getRoutes() {
	db := database.Connect()
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	projectRepo := repository.NewProjectGormRepository(db)
	quoteRepo := repository.NewQuoteGormRepository(db)
	milestoneRepo := repository.NewMilestoneGormRepository(db)
	shipmentRepo := repository.NewDeviceShipmentGormRepository(db)
	tripRepo := repository.NewTripGormRepository(db)
	notificationRepo := repository.NewNotificationGormRepository(db)

	var planSource interfaces.IPlanSource
	if cfg := config.AppConfig.Planner; cfg.Enabled && cfg.APIKey != "" {
		planSource = planner.NewAssistantPlanSource(cfg.APIKey, cfg.Endpoint)
	} else {
		log.Printf("Plan assistant not configured; deterministic fallback planner only")
	}

	var gateway interfaces.IPaymentGateway
	psGateway, err := payments.NewPaystackGateway(config.AppConfig.Paystack.SecretKey, config.AppConfig.Paystack.BaseURL)
	if err != nil {
		log.Printf("Payment gateway not configured: %v", err)
	} else {
		gateway = psGateway
	}

	mail := mailer.New(config.AppConfig.Email)

	planUseCase := usecase.NewPaymentPlanUseCase(projectRepo, quoteRepo, milestoneRepo, planSource)
	paymentUseCase := usecase.NewMilestonePaymentUseCase(
		milestoneRepo, projectRepo, quoteRepo, shipmentRepo, tripRepo, notificationRepo,
		gateway, mail,
		usecase.MilestonePaymentOptions{
			CallbackURL:  config.AppConfig.Server.BaseURL + "/v1/payments/verify",
			DashboardURL: config.AppConfig.Server.DashboardURL,
			OpsInbox:     config.AppConfig.Email.OpsInbox,
		},
	)
	transferUseCase := usecase.NewTransferUseCase(projectRepo, gateway)

	planHandler := handlers.NewPaymentPlanHandler(planUseCase)
	paymentHandler := handlers.NewMilestonePaymentHandler(paymentUseCase)
	transferHandler := handlers.NewTransferHandler(transferUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMilestoneRoutes(v1, planHandler, paymentHandler, transferHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.Default())
}
