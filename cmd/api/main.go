package main

import (
	_ "nardoo_storefront/docs"
	"nardoo_storefront/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Nardoo Storefront API
// @version         1.0
// @description     Order ledger, payments and analytics aggregator of the Nardoo storefront.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserRole
// @in header
// @name X-User-Role
// @description Storefront role: admin, merchant_approved, merchant_pending or customer.

func main() {
	routes.Run()
}
