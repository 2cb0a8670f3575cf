package routes

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jsau0309/altarflowdev-sub007/docs" // swag-generated
	"github.com/jsau0309/altarflowdev-sub007/internal/adapter/http/handlers"
	repository2 "github.com/jsau0309/altarflowdev-sub007/internal/adapter/persistence/repository"
	"github.com/jsau0309/altarflowdev-sub007/internal/infrastructure/authprovider"
	"github.com/jsau0309/altarflowdev-sub007/internal/infrastructure/database"
	"github.com/jsau0309/altarflowdev-sub007/internal/infrastructure/payments"
	"github.com/jsau0309/altarflowdev-sub007/internal/usecase"
	"github.com/jsau0309/altarflowdev-sub007/internal/usecase/interfaces"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid PORT %q: %v", v, err)
		}
		port = p
	}

	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	db := database.ConnectMySQL()
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	churchRepo := repository2.NewChurchGormRepository(db)
	donationRepo := repository2.NewDonationGormRepository(db)
	payoutRepo := repository2.NewPayoutSummaryGormRepository(db)
	idempotencyRepo := repository2.NewIdempotencyGormRepository(db)

	var gateway interfaces.IPaymentsGateway
	stripeGateway, err := payments.NewStripeGateway(os.Getenv("STRIPE_SECRET_KEY"))
	if err != nil {
		log.Printf("Stripe gateway not configured: %v", err)
	} else {
		gateway = stripeGateway
	}

	reconcileUseCase := usecase.NewPayoutReconcileUseCase(payoutRepo, gateway)
	importUseCase := usecase.NewPayoutImportUseCase(payoutRepo, gateway, reconcileUseCase)
	sweepUseCase := usecase.NewDonationSweepUseCase(donationRepo, churchRepo, gateway)
	setupUseCase := usecase.NewAccountSetupUseCase(churchRepo, gateway)
	idempotencyUseCase := usecase.NewIdempotencyUseCase(idempotencyRepo)

	var healthClient interfaces.IAuthHealthClient
	client, err := authprovider.NewHealthClient(os.Getenv("AUTH_HEALTH_URL"))
	if err != nil {
		log.Printf("Auth health client not configured: %v", err)
	} else {
		healthClient = client
	}
	healthUseCase := usecase.NewAuthHealthUseCase(
		healthClient,
		authprovider.NewMemoryHealthCache(),
		authprovider.NewWebhookNotifier(os.Getenv("HEALTH_WEBHOOK_URL")),
	)

	reconcileHandler := handlers.NewReconcileHandler(reconcileUseCase, importUseCase, payoutRepo)
	accountHandler := handlers.NewAccountHandler(setupUseCase, idempotencyUseCase)
	cronHandler := handlers.NewCronHandler(sweepUseCase, idempotencyRepo)
	healthHandler := handlers.NewHealthHandler(healthUseCase)

	authRequired := handlers.ChurchAuthMiddleware(churchRepo)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addReconcileRoutes(v1, authRequired, reconcileHandler, accountHandler, healthHandler)

	cron := router.Group("/cron")
	addCronRoutes(cron, cronHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
