package main

import (
	"time"

	"github.com/chokiwild/ChainFund-Dapp/internal/config"
	"github.com/chokiwild/ChainFund-Dapp/internal/coordinator"
	"github.com/chokiwild/ChainFund-Dapp/internal/ethereum"
	"github.com/chokiwild/ChainFund-Dapp/internal/governance"
	"github.com/chokiwild/ChainFund-Dapp/internal/logger"
	"github.com/chokiwild/ChainFund-Dapp/internal/monitor"
	"github.com/chokiwild/ChainFund-Dapp/internal/registry"
	"github.com/chokiwild/ChainFund-Dapp/internal/router"
	"github.com/chokiwild/ChainFund-Dapp/internal/session"
	"github.com/chokiwild/ChainFund-Dapp/internal/task"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	level := logger.ParseLogLevel(cfg.Log.Level)
	if cfg.Log.Output == "file" {
		l, err := logger.NewWithFileRotation(level, cfg.Log.File)
		if err != nil {
			logger.Fatal("Failed to initialize file logger: %v", err)
		}
		logger.SetDefaultLogger(l)
	}
	defer logger.Sync()

	gateway, err := ethereum.Init(cfg.Chain)
	if err != nil {
		logger.Fatal("Failed to initialize ethereum client: %v", err)
	}
	defer gateway.Close()

	factory := session.NewFactoryPointer(common.HexToAddress(cfg.Chain.FactoryAddress))
	store := session.NewStore()
	reader := registry.NewReader(gateway)
	coord := coordinator.New(gateway, reader, store, factory)
	gov := governance.New(gateway, coord, store, factory)

	eventMonitor, err := monitor.NewEventMonitor(gateway, coord, factory,
		time.Duration(cfg.Task.MonitorInterval)*time.Second)
	if err != nil {
		logger.Fatal("Failed to create event monitor: %v", err)
	}
	if err := eventMonitor.Start(); err != nil {
		logger.Warn("Event monitor not started: %v", err)
	}
	defer eventMonitor.Stop()

	taskManager := task.Start(coord, cfg)
	defer taskManager.Stop()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.Setup(coord, gov, store, factory)

	logger.Info("Server starting on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
