package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/triage/triage/internal/config"
	"github.com/triage/triage/internal/domain/report"
	"github.com/triage/triage/internal/domain/triage"
	"github.com/triage/triage/internal/platform/auth"
	"github.com/triage/triage/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "triaged",
		Short: "Symptom triage decision-support server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(analyzeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the triage API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run a one-shot analysis and print the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			age, _ := cmd.Flags().GetInt("age")
			symptoms, _ := cmd.Flags().GetStringSlice("symptoms")
			text, _ := cmd.Flags().GetString("text")
			allergies, _ := cmd.Flags().GetStringSlice("allergies")
			seed, _ := cmd.Flags().GetInt64("seed")

			engine, err := buildEngine(seed)
			if err != nil {
				return err
			}

			req := triage.AnalysisRequest{
				PatientName: name,
				Age:         age,
				Text:        text,
				Allergies:   allergies,
			}
			for _, s := range symptoms {
				req.Symptoms = append(req.Symptoms, triage.Symptom(strings.TrimSpace(s)))
			}

			res, err := engine.Analyze(req)
			if err != nil {
				return err
			}

			fmt.Print(report.NewService(nil).RenderText(res))
			return nil
		},
	}
	cmd.Flags().String("name", "CLI patient", "Patient name")
	cmd.Flags().Int("age", 30, "Patient age in years")
	cmd.Flags().StringSlice("symptoms", nil, "Reported symptoms (comma-separated identifiers)")
	cmd.Flags().String("text", "", "Free-text symptom description (used when --symptoms is empty)")
	cmd.Flags().StringSlice("allergies", nil, "Known drug allergies")
	cmd.Flags().Int64("seed", 1, "Classifier training seed")
	return cmd
}

func buildEngine(seed int64) (*triage.Service, error) {
	registry, err := triage.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("load reference data: %w", err)
	}
	classifier, err := triage.NewClassifier(registry, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("train classifier: %w", err)
	}
	return triage.NewService(registry, classifier), nil
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	// Reference data and one-time classifier training
	engine, err := buildEngine(cfg.ClassifierSeed)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize decision engine")
	}
	logger.Info().Int64("seed", cfg.ClassifierSeed).Msg("classifier trained")

	reports := report.NewService(cfg.ReportFontDirs)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Auth applies to the API surface only; /health stays open for probes.
	var authMW echo.MiddlewareFunc
	if cfg.IsDev() {
		logger.Warn().Msg("development mode: all requests get admin access")
		authMW = auth.DevAuthMiddleware()
	} else {
		authMW = auth.JWTMiddleware(auth.JWTConfig{
			Secret:   []byte(cfg.AuthSecret),
			Issuer:   cfg.AuthIssuer,
			Audience: cfg.AuthAudience,
		})
	}

	apiV1 := e.Group("/api/v1", authMW)
	triage.NewHandler(engine).RegisterRoutes(apiV1)
	report.NewHandler(engine, reports).RegisterRoutes(apiV1)

	// Start server with graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("server listening")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
