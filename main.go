package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/bson"

	"DestinyRealEstate/catalog"
	"DestinyRealEstate/config"
	"DestinyRealEstate/events"
	"DestinyRealEstate/handlers"
	"DestinyRealEstate/routes"
	"DestinyRealEstate/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}

	if err := config.ConnectDB(cfg); err != nil {
		slog.Error("connect database", "err", err)
		os.Exit(1)
	}

	utils.InitRedis(cfg.RedisAddr, cfg.RedisPassword)

	var pub events.Publisher = events.Noop{}
	if cfg.AMQPURL != "" {
		p, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			slog.Error("connect amqp", "err", err)
			os.Exit(1)
		}
		defer p.Close()
		pub = p
	}

	if cfg.FixtureCount > 0 {
		if err := seedProperties(cfg); err != nil {
			slog.Error("seed properties", "err", err)
			os.Exit(1)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.HTTPErrorHandler

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	routes.RegisterRoutes(e, pub)

	slog.Info("server starting", "port", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

// seedProperties fills an empty catalog with deterministic fixtures so
// a fresh environment has something to browse.
func seedProperties(cfg config.App) error {
	coll := config.GetCollection("properties")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	props := catalog.Fixture(cfg.FixtureSeed, cfg.FixtureCount)
	docs := make([]interface{}, len(props))
	for i, p := range props {
		docs[i] = p
	}
	_, err = coll.InsertMany(ctx, docs)
	return err
}
