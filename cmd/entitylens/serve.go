package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/leofalp/entitylens/core/registry"
	"github.com/leofalp/entitylens/internal/config"
	"github.com/leofalp/entitylens/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cfg.ApplyGinMode()

			observer, logFile, err := newObserver(cfg.Log)
			if err != nil {
				return err
			}
			defer logFile.Close()

			srv, err := server.New(cfg,
				server.WithObserver(observer),
				server.WithRegistry(registry.New()),
			)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			printBanner(cmd.OutOrStdout(), cfg)
			if err := srv.Run(ctx); err != nil {
				return err
			}
			color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "Server stopped")
			return nil
		},
	}
}

func printBanner(w io.Writer, cfg config.Config) {
	mode := color.GreenString(cfg.Mode)
	if !cfg.IsProduction() {
		mode = color.RedString(cfg.Mode)
	}

	fmt.Fprintf(w, "%s %s\n", color.GreenString("entitylens"), mode)
	fmt.Fprintln(w, color.WhiteString("---------------------------------"))
	fmt.Fprintf(w, "%s http://%s\n", color.GreenString("Listening:"), cfg.Addr())
	fmt.Fprintf(w, "%s %s %s\n", color.GreenString("Proxy:    "), color.YellowString("POST"), server.ProxyPath)
	switch {
	case cfg.IsProduction():
		fmt.Fprintf(w, "%s %s\n", color.GreenString("Frontend: "), cfg.StaticDir)
	case cfg.DevServerURL != "":
		fmt.Fprintf(w, "%s %s\n", color.GreenString("Frontend: "), cfg.DevServerURL)
	}
	fmt.Fprintf(w, "%s %s\n", color.GreenString("CORS:     "), strings.Join(cfg.AllowOrigins, ","))
	if cfg.MetricsEnabled {
		fmt.Fprintf(w, "%s %s\n", color.GreenString("Metrics:  "), "/metrics")
	}
	fmt.Fprintln(w, color.WhiteString("---------------------------------"))
}
