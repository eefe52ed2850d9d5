// Executa a Cloud Function localmente com o Functions Framework
package main

import (
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/sirupsen/logrus"

	_ "github.com/vfg2006/meta-ads-platform-api"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// FUNCTION_TARGET seleciona a função registrada
	if os.Getenv("FUNCTION_TARGET") == "" {
		os.Setenv("FUNCTION_TARGET", "MetaAdsAPI")
	}

	if err := funcframework.Start(port); err != nil {
		logrus.Fatalf("funcframework.Start: %v", err)
	}
}
