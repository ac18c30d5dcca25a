package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/bod/internal/buildinfo"
	"github.com/dmitrijs2005/bod/internal/client/cli"
	"github.com/dmitrijs2005/bod/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
