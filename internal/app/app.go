package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ytinfo/backend/internal/config"
	"github.com/ytinfo/backend/internal/handlers"
	"github.com/ytinfo/backend/internal/httpserver"
	"github.com/ytinfo/backend/internal/logging"
	"github.com/ytinfo/backend/internal/middleware"
	"github.com/ytinfo/backend/internal/telegram"
	"github.com/ytinfo/backend/internal/videos"
)

// stdout receives command output; logs go to stderr for lookup.
var stdout io.Writer = os.Stdout

// Run bootstraps the ytinfo application.
func Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("expected command: serve, lookup, or bot")
	}

	switch args[0] {
	case "serve":
		return serve(ctx)
	case "lookup":
		return lookup(ctx, args[1:])
	case "bot":
		return runBot(ctx)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func setup(logOutput io.Writer) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}

	logger, err := logging.New(logOutput, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return config.Config{}, nil, err
	}
	slog.SetDefault(logger)

	return cfg, logger, nil
}

func serve(ctx context.Context) error {
	cfg, logger, err := setup(os.Stdout)
	if err != nil {
		return err
	}

	deps := buildDependencies(cfg)

	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux, deps)

	handler := middleware.RequestLogger(logger)(mux)

	srv := httpserver.New(cfg.AppPort, handler)

	logger.Info("starting http server", "port", cfg.AppPort, "oembed_endpoint", cfg.OEmbedEndpoint)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- srv.Start()
	}()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signalCh)

	select {
	case <-ctx.Done():
		logger.Info("context canceled, shutting down server")
	case sig := <-signalCh:
		logger.Info("received signal, shutting down", "signal", sig.String())
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), httpserver.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// lookup resolves a single URL and prints the result or error JSON.
func lookup(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("expected url: lookup <url>")
	}

	cfg, logger, err := setup(os.Stderr)
	if err != nil {
		return err
	}

	service := buildMetadataService(cfg, http.DefaultClient)
	ctx = logging.WithLogger(ctx, logger)

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	result, err := service.FetchMetadata(ctx, strings.Join(args, " "))
	if err != nil {
		res := videos.ResultFor(err)
		if encErr := enc.Encode(res); encErr != nil {
			return fmt.Errorf("write result: %w", encErr)
		}
		return fmt.Errorf("lookup failed: %s", res.Kind)
	}

	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

func runBot(ctx context.Context) error {
	cfg, logger, err := setup(os.Stdout)
	if err != nil {
		return err
	}
	if cfg.TelegramToken == "" {
		return errors.New("YTINFO_TELEGRAM_TOKEN is required for the bot command")
	}

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return fmt.Errorf("connect telegram: %w", err)
	}
	api.Debug = cfg.TelegramDebug

	logger.Info("telegram bot authorized", "username", api.Self.UserName)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)
	defer api.StopReceivingUpdates()

	bot := telegram.New(api, buildMetadataService(cfg, http.DefaultClient), logger)
	return bot.Run(ctx, updates)
}
