// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-sudo-profiles/internal/client"
	"github.com/MKhiriev/go-sudo-profiles/internal/config"
	"github.com/MKhiriev/go-sudo-profiles/internal/logger"
	"github.com/MKhiriev/go-sudo-profiles/internal/workers"
	"github.com/MKhiriev/go-sudo-profiles/profiles"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("sudo-sync-daemon", cfg.Log.File)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sudoClient, closeStores, err := profiles.NewFromConfig(ctx, cfg, prometheus.DefaultRegisterer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create profile client")
	}
	defer func() {
		if err := closeStores(); err != nil {
			log.Err(err).Msg("close key store")
		}
	}()

	var jobs []workers.Worker
	if cfg.Workers.RefreshInterval > 0 {
		jobs = append(jobs, workers.NewRefreshWorker(sudoClient, cfg.Workers.RefreshInterval, log))
	}

	app, err := client.NewApp(sudoClient, workers.New(jobs...), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		stop()
		os.Exit(1)
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
