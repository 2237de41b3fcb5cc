package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // by design
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/pitwall-dev/pit-strategy-go/log"
	"github.com/pitwall-dev/pit-strategy-go/pkg/config"
	"github.com/pitwall-dev/pit-strategy-go/pkg/server"
	"github.com/pitwall-dev/pit-strategy-go/pkg/simulation"
)

func NewServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "starts the strategy API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return startServer()
		},
	}
	cmd.Flags().StringVarP(&config.ServerAddr,
		"server-addr",
		"a",
		"localhost:8000",
		"HTTP server listen address")
	cmd.Flags().StringVar(&config.LogLevel,
		"log-level",
		"info",
		"controls the log level (debug, info, warn, error, fatal)")
	cmd.Flags().StringVar(&config.LogFormat,
		"log-format",
		"json",
		"controls the log output format")
	cmd.Flags().BoolVar(&config.EnableTelemetry,
		"enable-telemetry",
		false,
		"enables telemetry")
	cmd.Flags().StringVar(&config.TelemetryEndpoint,
		"telemetry-endpoint",
		"localhost:4317",
		"Endpoint that receives open telemetry data")
	cmd.Flags().IntVar(&config.ProfilingPort,
		"profiling-port",
		0,
		"port to use for providing profiling data")
	cmd.Flags().Uint64Var(&config.Seed,
		"seed",
		0,
		"fixed seed for the simulation randomness (0: time based)")
	return cmd
}

func parseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

func setupLogger() *log.Logger {
	switch config.LogFormat {
	case "json":
		return log.New(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	default:
		return log.DevLogger(
			os.Stderr,
			parseLogLevel(config.LogLevel, log.DebugLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	}
}

//nolint:funlen // by design
func startServer() error {
	log.ResetDefault(setupLogger())

	var telemetry *config.Telemetry
	if config.EnableTelemetry {
		log.Info("Enabling telemetry")
		var err error
		if telemetry, err = config.SetupTelemetry(context.Background()); err != nil {
			log.Warn("Could not setup telemetry", log.ErrorField(err))
		}
	}

	if config.ProfilingPort > 0 {
		log.Info("Starting profiling server", log.Int("port", config.ProfilingPort))
		go func() {
			//nolint:gosec // by design
			err := http.ListenAndServe(
				fmt.Sprintf("localhost:%d", config.ProfilingPort),
				nil)
			if err != nil {
				log.Error("Profiling server stopped", log.ErrorField(err))
			}
		}()
	}

	apiServer := server.NewServer(
		server.WithLogger(log.Default().Named("api")),
		server.WithTracer(otel.Tracer("psg")),
		server.WithSimulatorFactory(simulatorFactory()),
	)

	//nolint:gosec // by design
	httpServer := &http.Server{
		Addr:    config.ServerAddr,
		Handler: h2c.NewHandler(newCORS().Handler(apiServer.Handler()), &http2.Server{}),
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", log.String("addr", config.ServerAddr))
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errChan:
		log.Error("server could not be started", log.ErrorField(err))
		return err
	case v := <-sigChan:
		log.Debug("Got signal", log.Any("signal", v))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Warn("could not shutdown server gracefully", log.ErrorField(err))
	}
	if telemetry != nil {
		telemetry.Shutdown()
	}
	log.Info("Server terminated")
	return nil
}

func simulatorFactory() server.SimulatorFactory {
	if config.Seed > 0 {
		seed := config.Seed
		return func() *simulation.Simulator {
			return simulation.NewSimulator(simulation.WithSeed(seed))
		}
	}
	return func() *simulation.Simulator {
		return simulation.NewSimulator()
	}
}

func newCORS() *cors.Cors {
	return cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
		},
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         int(2 * time.Hour / time.Second),
	})
}
