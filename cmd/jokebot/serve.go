package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"jokebot/internal/di"
	"jokebot/internal/infrastructure/httpapi"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve jokes over HTTP",
	Long: `Starts the joke API server:

  GET /v1/joke?category=&lang=&source=   one joke as JSON
  GET /v1/categories                     available categories
  GET /v1/sources                        registered sources
  GET /healthz                           liveness probe

The server drains in-flight requests on SIGINT/SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", `Listen address (default ":8080", or SERVE_ADDR)`)
}

func runServe(cmd *cobra.Command, args []string) error {
	envService, err := loadEnv()
	if err != nil {
		return err
	}

	cfg, err := containerConfig(envService, "serve")
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = envService.GetWithDefault("SERVE_ADDR", ":8080")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	server := httpapi.NewServer(addr, container.Jokes, cfg.Source, container.Logger)
	return server.Start(ctx)
}
