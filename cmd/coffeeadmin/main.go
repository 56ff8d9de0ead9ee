package main

import (
	"context"
	"time"

	"github.com/niksmo/coffee-admin/config"
	"github.com/niksmo/coffee-admin/internal/app"
	"github.com/niksmo/coffee-admin/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	admin := app.New(sigCtx, cfg)

	admin.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	admin.Close(ctx)
}
