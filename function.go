// Package function expõe a API como Cloud Function HTTP.
// O deploy aponta para o ponto de entrada MetaAdsAPI.
package function

import (
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-platform-api/internal/adapter/cloudfunction"
	"github.com/vfg2006/meta-ads-platform-api/internal/api"
	"github.com/vfg2006/meta-ads-platform-api/internal/config"
	"github.com/vfg2006/meta-ads-platform-api/pkg/log"
	"github.com/vfg2006/meta-ads-platform-api/pkg/utils"
)

// EntryPoint é o nome registrado no Functions Framework
const EntryPoint = "MetaAdsAPI"

func init() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel, cfg.App.Env)

	fn := cloudfunction.New(api.NewHandler(cfg, api.NewServices(utils.SystemClock{})))
	functions.HTTP(EntryPoint, fn.ServeHTTP)
}
