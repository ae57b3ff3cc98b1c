package main

import (
	"github.com/umaydie-cyber/promotion/internal/api"
	"github.com/umaydie-cyber/promotion/internal/config"
	"github.com/umaydie-cyber/promotion/internal/constants"
	"github.com/umaydie-cyber/promotion/internal/logging"
	"github.com/umaydie-cyber/promotion/internal/service"
	"github.com/umaydie-cyber/promotion/internal/version"

	"github.com/gin-gonic/gin"
)

func main() {
	env, err := config.ParseEnv()
	if err != nil {
		logging.Fatal("Invalid environment", err, nil)
	}

	cfg := loadConfigOrExit(env.ConfigPath)
	env.Apply(cfg)

	repo := createRepositoryOrExit(env.DBPath)
	svc := service.NewBattleService(cfg.Catalog, repo, service.Options{
		HandSize:  cfg.HandSize,
		IntentMin: cfg.IntentMin,
		IntentMax: cfg.IntentMax,
	})

	// Background scanner: close battles nobody has touched for the idle
	// TTL. Unfinished ones are recorded as abandoned.
	startIdleScanner(svc, cfg.IdleBattleTTL)

	router := gin.Default()
	api.RegisterRoutes(router, api.NewBattleHandler(svc))

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{
		constants.LogFieldAddr: addr,
		"version":              version.Version,
	})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
