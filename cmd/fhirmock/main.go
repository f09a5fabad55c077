package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ehr/fhirmock/internal/config"
	"github.com/ehr/fhirmock/internal/domain/resource"
	"github.com/ehr/fhirmock/internal/domain/synthetic"
	"github.com/ehr/fhirmock/internal/platform/fhir"
	"github.com/ehr/fhirmock/internal/platform/middleware"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:          "fhirmock",
		Short:        "Mock FHIR R4 API serving synthetic clinical data",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(kindsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the mock FHIR server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runServer(cfg)
		},
	}
}

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <resourceType>",
		Short: "Print generated resources as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			bundle, _ := cmd.Flags().GetBool("bundle")
			seed, _ := cmd.Flags().GetInt64("seed")
			return runGenerate(cmd.OutOrStdout(), args[0], count, bundle, seed)
		},
	}
	cmd.Flags().Int("count", 1, "Number of resources to generate")
	cmd.Flags().Bool("bundle", false, "Wrap the resources in a collection Bundle")
	cmd.Flags().Int64("seed", 0, "Random seed (0 seeds from the clock)")
	return cmd
}

func kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the resource types the server generates",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, k := range resource.DefaultRegistry(synthetic.New(0), 0).Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), k.Type)
			}
			return nil
		},
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, out io.Writer) zerolog.Logger {
	logger := zerolog.New(out).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: out}).With().Timestamp().Logger()
	}
	return logger.Level(cfg.Level())
}

// newServer wires the middleware chain and FHIR routes.
func newServer(cfg *config.Config, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = fhir.JSONSerializer{}
	e.HTTPErrorHandler = middleware.ErrorHandler(logger)

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(fhir.CORSPreflightMiddleware())

	fhirGroup := e.Group("/fhir")
	fhirGroup.Use(middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}))
	fhirGroup.Use(middleware.RequestTimeout(cfg.RequestTimeout))
	fhirGroup.Use(fhir.ContentNegotiationMiddleware())

	gen := synthetic.New(cfg.RandomSeed)
	registry := resource.DefaultRegistry(gen, cfg.ListSize)

	capBuilder := fhir.NewCapabilityBuilder(cfg.BaseURL, version)
	registry.RegisterCapabilities(capBuilder)
	logger.Debug().Int("resource_types", capBuilder.ResourceCount()).Msg("capabilities registered")
	fhir.NewCapabilityHandler(capBuilder).RegisterRoutes(fhirGroup)

	resource.NewHandler(registry).RegisterRoutes(fhirGroup)

	e.GET("/health", func(c echo.Context) error {
		return fhir.Respond(c, http.StatusOK, map[string]string{"status": "ok"})
	})

	return e
}

func runServer(cfg *config.Config) error {
	logger := newLogger(cfg, os.Stdout)
	e := newServer(cfg, logger)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("base_url", cfg.BaseURL).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	logger.Info().Msg("server stopped")
	return nil
}

// runGenerate writes count resources of resourceType to w, one JSON document
// per line, or a single collection Bundle when bundle is set.
func runGenerate(w io.Writer, resourceType string, count int, bundle bool, seed int64) error {
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}
	k, ok := resource.DefaultRegistry(synthetic.New(seed), count).Lookup(resourceType)
	if !ok {
		return fmt.Errorf("unknown resource type %q", resourceType)
	}

	resources := make([]fhir.Resource, count)
	for i := range resources {
		resources[i] = k.Generate()
	}

	if bundle {
		return writeBody(w, fhir.NewBundle(fhir.BundleTypeCollection, resources))
	}
	for _, r := range resources {
		if err := writeBody(w, r); err != nil {
			return err
		}
	}
	return nil
}

func writeBody(w io.Writer, payload interface{}) error {
	env := fhir.BuildResponse(http.StatusOK, payload)
	if env.StatusCode != http.StatusOK {
		return fmt.Errorf("encode %T: %s", payload, env.Body)
	}
	_, err := fmt.Fprintln(w, env.Body)
	return err
}
