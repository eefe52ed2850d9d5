package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-platform-api/internal/api"
	"github.com/vfg2006/meta-ads-platform-api/internal/config"
	"github.com/vfg2006/meta-ads-platform-api/pkg/log"
	"github.com/vfg2006/meta-ads-platform-api/pkg/utils"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel, cfg.App.Env)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := api.New(cfg, api.NewServices(utils.SystemClock{}))

	// Falha ao abrir a porta encerra o processo com status 1
	if err := server.Run(ctx); err != nil {
		logrus.Fatal(err)
	}
}
