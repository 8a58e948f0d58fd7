package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "payments-service/docs"
	"payments-service/internal/app"
	"payments-service/internal/checkout"
	"payments-service/internal/config"
	"payments-service/internal/events"
	"payments-service/internal/handler"
	"payments-service/internal/postgres"
	"payments-service/internal/repo"
	"payments-service/internal/service"
	"payments-service/internal/stripe"
	"payments-service/pkg/cache"
	"payments-service/pkg/trm"
	"payments-service/pkg/utils"

	"github.com/jmoiron/sqlx"
)

// @title           Payments Service API
// @version         1.0
// @description     Каталог товаров и оплата через Stripe
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	var db *sqlx.DB
	err := utils.Retry(utils.RetryConfig{
		MaxAttempts:  5,
		InitialDelay: time.Second,
	}, func() (err error) {
		db, err = postgres.New(conf.Postgres)
		return err
	})
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	catalogRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	itemCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	processor := stripe.NewClient(conf.Stripe)

	publisher := events.NewKafkaPublisher(logger, conf.Kafka)
	defer publisher.Close()

	urls := checkout.ReturnURLs{
		Success: conf.Stripe.SuccessURL,
		Cancel:  conf.Stripe.CancelURL,
	}
	paymentService := service.NewPaymentService(logger, catalogRepo, processor, publisher, itemCache, urls)
	catalogService := service.NewCatalogService(logger, txManager, catalogRepo, itemCache)

	paymentHandler := handler.NewPaymentHandler(logger, paymentService)
	catalogHandler := handler.NewCatalogHandler(logger, catalogService)

	service.RegisterMetrics()

	application := app.New(logger, conf)
	application.SetHTTPHandlers(paymentHandler, catalogHandler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	itemCache.StartJanitor(ctx)
	application.Start(ctx)
	<-ctx.Done()
	application.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
