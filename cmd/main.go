// Package main is the entry point for the sizing-service application.
//
// @title           Aircraft Sizing Service API
// @version         1.0.0
// @description     API for iterative takeoff gross weight sizing of transport aircraft.
//
//	The service solves the coupled weight-fraction equations for a mission
//	profile and aircraft variant, and answers design, fixed-weight,
//	maximum-range and sweep queries.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/conceptair/sizing-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Sizing
// @tag.description Takeoff gross weight sizing operations
//
// @tag.name        Variants
// @tag.description Aircraft variant catalog management
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/conceptair/sizing-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/conceptair/sizing-service/config"
	"github.com/conceptair/sizing-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
