package main

import (
	"context"
	"os"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
)

const appName string = "sd-connector"

func main() {
	appVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), appName, appVersion, "json")
	defer cleanup()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		log.Error("command failed", "err", err.Error())
		os.Exit(1)
	}
}
