package main

import (
	"log/slog"
	"os"

	"sorarelay/internal/adapter/relay"
	"sorarelay/internal/adapter/sentinelapi"
	"sorarelay/internal/adapter/store"
	"sorarelay/internal/adapter/transport/rest"
	"sorarelay/internal/app"
	"sorarelay/internal/service"
	"sorarelay/pkg/config"
	"sorarelay/pkg/logger"
)

func main() {
	cfg := config.Parse()

	log := logger.NewJSON(logger.LevelFromEnv(cfg.LogLevel))

	var (
		src   service.EndpointSource
		admin rest.EndpointAdmin
		pool  *service.EndpointPool
	)

	if cfg.EndpointsFile != "" {
		fs, err := store.NewFileSource(log, cfg.EndpointsFile)
		if err != nil {
			log.Error("load endpoints file", slog.Any("err", err))
			os.Exit(1)
		}
		defer fs.Close()
		src = fs
		pool = service.NewEndpointPool(log, src, cfg.PoolTTL)
		if err := fs.Watch(pool.InvalidateCache); err != nil {
			log.Error("watch endpoints file", slog.Any("err", err))
			os.Exit(1)
		}
	} else {
		db, err := store.Open(cfg.DBPath)
		if err != nil {
			log.Error("open endpoint store", slog.Any("err", err))
			os.Exit(1)
		}
		defer db.Close()
		src = db
		admin = db
		pool = service.NewEndpointPool(log, src, cfg.PoolTTL)
	}

	solver := service.NewSolver()
	prints := service.NewFingerprinter()
	tokens := service.NewAssembler(solver, prints)
	challenge := sentinelapi.NewClient(cfg.SentinelBaseURL, cfg.SentinelTimeout)
	tasks := relay.NewClient(cfg.RelayTimeout)

	disp := service.NewDispatcher(log, solver, prints, tokens, challenge, tasks, pool)
	srv := rest.NewServer(log, cfg.ListenAddr, cfg.SharedKey, cfg.ShutdownWait, disp, admin, pool)

	if err := app.New(srv).Run(); err != nil {
		log.Error("server stopped with error", slog.Any("err", err))
		os.Exit(1)
	}
}
