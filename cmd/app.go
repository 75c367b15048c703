package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"traffix/internal/components"
	"traffix/internal/config"
)

func Run() error {
	bootLogger := components.SetupLogger("local")

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(appCtx)
	if err != nil {
		bootLogger.Error("load config failed", "err", err)
		return err
	}
	logger := components.SetupLogger(cfg.Env)

	comps, err := components.InitComponents(appCtx, cfg, logger)
	if err != nil {
		logger.Error("could not init components", "err", err)
		return err
	}

	comps.StartWorkers(appCtx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := comps.HttpServer.Run(appCtx); err != nil {
			logger.Error("http server failed", "err", err)
			cancel()
		}
		logger.Info("http server stopped")
	}()

	quitChan := make(chan os.Signal, 1)
	signal.Notify(quitChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quitChan:
		logger.Info("captured signal, initiating shutdown", "signal", sig.String())
	case <-appCtx.Done():
		logger.Info("context canceled, initiating shutdown")
	}
	cancel()

	wg.Wait()

	logger.Info("shutting down the services...")
	comps.ShutdownAll()
	logger.Info("gracefully shut down")

	return nil
}
