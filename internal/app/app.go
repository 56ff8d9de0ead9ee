package app

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/coffee-admin/config"
	"github.com/niksmo/coffee-admin/internal/adapter/chart"
	"github.com/niksmo/coffee-admin/internal/adapter/httphandler"
	"github.com/niksmo/coffee-admin/internal/adapter/kafka"
	"github.com/niksmo/coffee-admin/internal/adapter/restapi"
	"github.com/niksmo/coffee-admin/internal/core/port"
	"github.com/niksmo/coffee-admin/internal/core/service"
	"github.com/niksmo/coffee-admin/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type charts struct {
	stock *chart.Line
	sales *chart.Line
}

type coreService struct {
	cache     *service.ProductCache
	top       *service.TopView
	editor    *service.Editor
	dashboard *service.Dashboard
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	api        port.ProductsAPI
	producer   *kafka.ChangesProducer
	charts     charts
	service    coreService
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initOutboundAdapters()
	app.initChangeFeed()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	api, err := restapi.New(
		app.cfg.API.BaseURL,
		restapi.TimeoutOpt(app.cfg.API.RequestTimeout),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.api = api

	app.charts.stock = chart.NewLine("Stock")
	app.charts.sales = chart.NewLine("Ventas")
}

func (app *App) initChangeFeed() {
	const op = "App.initChangeFeed"

	feed := app.cfg.ChangeFeed
	if !feed.Enabled() {
		slog.Info("change feed is disabled", "op", op)
		return
	}

	srClient, err := sr.NewClient(sr.URLs(feed.SchemaRegistryURLs...))
	if err != nil {
		app.fallDown(op, err)
	}

	identifier, err := schema.NewRegistryIdentifier(srClient)
	if err != nil {
		app.fallDown(op, err)
	}

	serde, err := schema.NewSerdeProductChangeV1(
		app.ctx,
		schema.SubjectOpt(feed.Topic+"-value"),
		schema.SchemaIdentifierOpt(identifier),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	var tlsCfg *tls.Config
	if feed.TLS.Enabled() {
		tlsCfg, err = kafka.MakeTLSConfig(
			feed.TLS.CAFile, feed.TLS.CertFile, feed.TLS.KeyFile,
		)
		if err != nil {
			app.fallDown(op, err)
		}
	}

	producer, err := kafka.NewChangesProducer(
		kafka.ProducerClientOpt(app.ctx, feed.SeedBrokers, feed.Topic, tlsCfg),
		kafka.ProducerEncoderOpt(serde),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.producer = &producer
	app.api = service.NewChangeFeed(app.api, producer)
	slog.Info("change feed is enabled", "op", op, "topic", feed.Topic)
}

func (app *App) initCoreService() {
	const op = "App.initCoreService"

	cache := service.NewProductCache(app.api)
	app.service = coreService{
		cache:     cache,
		top:       service.NewTopView(cache, app.cfg.TopN),
		editor:    service.NewEditor(cache),
		dashboard: service.NewDashboard(cache),
	}

	err := app.service.dashboard.Ready(app.charts.stock, app.charts.sales)
	if err != nil {
		app.fallDown(op, err)
	}
}

func (app *App) initInboundAdapters() {
	s := app.service

	mux := http.NewServeMux()
	httphandler.RegisterHome(mux, s.cache, s.top, s.editor)
	httphandler.RegisterEditor(mux, httphandler.EditorConfig{
		Prefix: "/products",
		Title:  "Productos",
	}, s.editor)
	httphandler.RegisterEditor(mux, httphandler.EditorConfig{
		Prefix: "/dashboard",
		Title:  "Dashboard",
		Charts: true,
	}, s.dashboard)
	httphandler.RegisterCharts(mux, map[string]io.WriterTo{
		"stock": app.charts.stock,
		"sales": app.charts.sales,
	})
	httphandler.RegisterAPI(mux, s.cache, s.top)

	app.httpServer = httphandler.NewHTTPServer(
		app.cfg.HTTPServerAddr, httphandler.Chain(mux),
	)
}

// Run starts the initial load and the http server.
func (app *App) Run(stopFn context.CancelFunc) {
	go app.load()
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) load() {
	const op = "App.load"

	if err := app.service.cache.Load(app.ctx); err != nil {
		slog.Warn("initial load failed", "op", op, "err", err)
		return
	}
	slog.Info("products are loaded", "op", op,
		"count", app.service.cache.Snapshot().Len())
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if app.producer != nil {
		app.producer.Close()
	}
	app.service.cache.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
