// Package main is the entry point for the packlist-service application.
//
// @title           Packing List Service API
// @version         1.0.0
// @description     API for turning shipment orders into packing lists and proforma workbooks.
//
//	Order lines are priced in a counting unit (case or piece), grouped by product series,
//	and the pallet weight is spread evenly over every unit shipped.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/packlist-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Packing
// @tag.description Packing list calculation and workbook export
//
// @tag.name        Products
// @tag.description Catalog management and spreadsheet import
//
// @tag.name        Proformas
// @tag.description Stored proformas (requires MongoDB)
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/packlist-service/docs" // swagger docs

	"github.com/guttosm/packlist-service/config"
	"github.com/guttosm/packlist-service/internal/app"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server.Port,
		app.WithOnShutdown(application.Close),
	)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
