package main

import (
	"fmt"

	"github.com/MKhiriev/holiday-planner/internal/adapter"
	"github.com/MKhiriev/holiday-planner/internal/client"
	"github.com/MKhiriev/holiday-planner/internal/config"
	"github.com/MKhiriev/holiday-planner/internal/logger"
	"github.com/MKhiriev/holiday-planner/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("holiday-planner-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	plannerAPI, err := adapter.NewHTTPPlannerAPI(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create planner adapter")
	}

	ui, err := tui.New(plannerAPI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
