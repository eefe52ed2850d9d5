package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-platform-api/internal/adapter/awslambda"
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

	log.Configure(cfg.App.LogLevel, cfg.App.Env)

	// O handler é montado uma vez por instância e reaproveitado entre invocações
	h := api.NewHandler(cfg, api.NewServices(utils.SystemClock{}))

	lambda.Start(awslambda.New(h).Handle)
}
