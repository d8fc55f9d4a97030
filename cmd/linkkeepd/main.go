package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-print"

	"github.com/linkkeep/linkkeep"
)

func main() {
	lgr := glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithName("linkkeep"),
		glog.WithAddSource(false),
		glog.WithRichErrorHandler(goerrors.ToSlogAttributes),
	)

	cfg, err := linkkeep.LoadConfig()
	if err != nil {
		lgr.Error("configuration error", "error", err)
		os.Exit(1)
	}

	fmt.Println(print.MaybePrettyJSON(cfg.Redacted()))

	ctx := context.Background()

	db, err := linkkeep.OpenDB(cfg.DatabaseDSN)
	if err != nil {
		lgr.Error("database open error", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := linkkeep.CreateSchema(ctx, db); err != nil {
		lgr.Error("schema bootstrap error", "error", err)
		os.Exit(1)
	}

	repo := linkkeep.NewRepositoryManager(db)
	repo.MustValidate()

	tokens := linkkeep.NewTokenService(
		[]byte(cfg.JWTSecret),
		cfg.TokenTTL,
		cfg.TokenIssuer,
		lgr.GetLogger("tokens"),
	)

	auther := linkkeep.NewAuthenticator(repo, tokens).
		WithLogger(lgr.GetLogger("auth"))

	app := fiber.New(fiber.Config{
		AppName:      "linkkeep",
		ErrorHandler: linkkeep.NewHTTPErrorHandler(lgr.GetLogger("http")),
	})

	linkkeep.RegisterRoutes(app, repo, auther, tokens, lgr.GetLogger("router"))

	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			lgr.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	waitExitSignal()

	if err := app.Shutdown(); err != nil {
		lgr.Error("shutdown error", "error", err)
	}
}

func waitExitSignal() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
}
