package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/bod/internal/fakeapi"
	"github.com/dmitrijs2005/bod/internal/fakeapi/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := fakeapi.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
