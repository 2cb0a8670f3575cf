package main

import (
	"github.com/jsau0309/altarflowdev-sub007/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           AltarFlow Reconciliation API
// @version         1.0
// @description     Payout reconciliation and donation cleanup service backed by MySQL and Stripe.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the organization API key.

func main() {
	routes.Run()
}
