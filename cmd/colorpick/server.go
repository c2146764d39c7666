package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/colorpick/internal/auth"
	"github.com/thatcatcamp/colorpick/internal/config"
	"github.com/thatcatcamp/colorpick/internal/db"
	"github.com/thatcatcamp/colorpick/internal/generation"
	"github.com/thatcatcamp/colorpick/internal/handlers"
	"github.com/thatcatcamp/colorpick/internal/logger"
	"github.com/thatcatcamp/colorpick/internal/middleware"
	"github.com/thatcatcamp/colorpick/internal/storage"
	"github.com/thatcatcamp/colorpick/internal/workspace"
)

const shutdownTimeout = 10 * time.Second

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start and manage the colorpick HTTP server",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		log, err := newLogger()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		secret := config.GetString("auth.session_secret")
		if secret == "CHANGE_ME_IN_PRODUCTION_USE_ENV_VAR" {
			log.Warn().Msg("auth.session_secret is the default; set COLORPICK_AUTH_SESSION_SECRET in production")
		}
		sessions, err := auth.NewSessions(secret, time.Duration(config.GetInt("auth.session_ttl_hours"))*time.Hour)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		apiKey := config.APIKey()
		if err := generation.CheckAPIKey(apiKey); err != nil {
			// The page reports this on every generate; the server still serves collections
			log.Warn().Msg(generation.UserMessage(err))
		}
		client := generation.NewClient(generation.ClientConfig{
			APIKey:   apiKey,
			Model:    config.GetString("gemini.model"),
			Endpoint: config.GetString("gemini.endpoint"),
			Timeout:  config.GetDuration("gemini.timeout"),
		})

		slots := storage.NewSlotStore(db.GetDB())
		registry := workspace.NewRegistry(slots,
			workspace.WithHistory(slots),
			workspace.WithLogger(logger.Component(log, "workspace")),
		)

		janitor := workspace.NewJanitor(registry,
			config.GetDuration("workspace.idle_ttl"),
			config.GetDuration("workspace.sweep_interval"),
			logger.Component(log, "janitor"),
		)
		janitorDone := janitor.Start()

		limiter := middleware.NewRateLimiter(config.GetInt("ratelimit.generate_per_minute"), time.Minute)
		defer limiter.Close()

		gin.SetMode(gin.ReleaseMode)
		r := gin.New()
		if err := r.SetTrustedProxies(config.GetStringSlice("server.trusted_proxies")); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid server.trusted_proxies: %v\n", err)
			os.Exit(1)
		}
		r.Use(
			gin.Recovery(),
			middleware.RequestLogger(logger.Component(log, "http")),
			middleware.SecurityHeadersMiddleware(),
			middleware.IPFilterMiddleware(
				config.GetStringSlice("server.blocked_ips"),
				config.GetStringSlice("server.allowed_ips"),
			),
		)

		srv := handlers.NewServer(registry, client, slots, logger.Component(log, "handlers"))
		srv.Register(r, sessions, limiter)

		httpAddr := fmt.Sprintf(":%s", config.GetString("server.http_port"))
		server := &http.Server{
			Addr:              httpAddr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Info().Str("addr", httpAddr).Msg("starting HTTP server")
			errCh <- server.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
				os.Exit(1)
			}
		case <-ctx.Done():
			log.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("graceful shutdown failed")
			}
		}

		janitor.Stop()
		<-janitorDone
	},
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
