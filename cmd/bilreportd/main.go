package main

import (
	_ "embed"
	"flag"
	"os"
	"strings"
	"time"

	"bilreport/pkg/inventory"
	"bilreport/pkg/log"
	"bilreport/pkg/server"
)

const defaultFetchTimeout = 30 * time.Second

//go:embed VERSION
var Version string

func main() {
	// Initialize logger first
	_ = log.Logger

	addr := flag.String("addr", ":8080", "Listen address")
	reportURL := flag.String("url", inventory.DefaultURL, "Daily inventory report URL")
	webDir := flag.String("web", "web", "Web assets directory path")
	fetchTimeout := flag.Duration("timeout", defaultFetchTimeout, "Report fetch timeout")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *debug {
		log.SetDebugMode()
		log.Debug().Msg("Debug mode enabled")
	}

	if _, err := os.Stat(*webDir); os.IsNotExist(err) {
		log.Fatal().Str("web_dir", *webDir).Msg("Web directory does not exist")
	}

	client := inventory.New(*reportURL, *fetchTimeout)
	srv := server.NewReportServer(client, *webDir, strings.TrimSpace(Version))

	if err := srv.Start(*addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}

	os.Exit(0)
}
