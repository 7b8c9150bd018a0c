package main

import (
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/orgbudget/backend/internal/config"
	v1 "github.com/orgbudget/backend/internal/controllers/v1"
	"github.com/orgbudget/backend/internal/models"
	"github.com/orgbudget/backend/internal/router"
	"github.com/orgbudget/backend/internal/store"
	"github.com/orgbudget/backend/internal/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

//go:generate go run github.com/swaggo/swag/cmd/swag@v1.16.6 init --outputTypes go --output api

// @title			Organization Budget
// @description	The backend for the organization budget dashboard.
// @license.name	AGPL-3.0
// @BasePath		/
func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, the configuration defaults
	// to release for security reasons
	gin.SetMode(cfg.GinMode)

	output := io.Writer(os.Stdout)
	if cfg.HumanLogs() {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Connect to the database. This also migrates the schema.
	db, err := models.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	s := store.New(db)
	defer func() {
		if err := s.Close(); err != nil {
			log.Error().Msg(err.Error())
		}
	}()

	if cfg.SeedSampleData {
		created, err := s.Seed()
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
		log.Info().Bool("created", created).Msg("Sample data seeded")
	}

	money, err := types.NewMoneyFormatter(cfg.Currency, language.AmericanEnglish)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(cfg)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(v1.Controller{Store: s, Money: money}, r.Group("/"), cfg)

	log.Info().Str("address", cfg.ListenAddress).Str("url", cfg.APIURL).Msg("Starting server")
	if err := r.Run(cfg.ListenAddress); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
