package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/jil-inventory/inventory-api/cmd/app"
)

// @title       Inventory API
// @version     1.0
// @description Stock ledger, catalog and reports for multi-location inventory.
//
// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @host      localhost:8000
// @BasePath  /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
//
// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
