package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pbishop/crispychat/internal/buildinfo"
	"github.com/pbishop/crispychat/internal/client/cli"
	"github.com/pbishop/crispychat/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
