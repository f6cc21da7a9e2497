package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/leofalp/entitylens/core/client"
	"github.com/leofalp/entitylens/core/client/middleware"
	"github.com/leofalp/entitylens/core/entity"
	"github.com/leofalp/entitylens/core/registry"
)

func newLookupCmd() *cobra.Command {
	flags := &queryFlags{}
	var (
		provider   string
		apiKey     string
		proxyURL   string
		autoDeep   bool
		noValidate bool
		repair     bool
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "lookup <name>",
		Short: "Look up an entity through an LLM provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			observer, logFile, err := newObserver(cfg.Log)
			if err != nil {
				return err
			}
			defer logFile.Close()

			if proxyURL == "" {
				proxyURL = cfg.ProxyURL
			}

			var mws []client.Middleware
			if timeout > 0 {
				mws = append(mws, middleware.NewTimeoutMiddleware(timeout))
			}
			mws = append(mws, middleware.NewLoggingMiddleware(observer.Logger(), middleware.LogLevelMinimal))

			c, err := client.New(
				client.WithDefaultAPIKey(cfg.APIKey),
				client.WithProxyURL(proxyURL),
				client.WithSchemaValidation(!noValidate),
				client.WithAutoDeepSearch(autoDeep),
				client.WithResponseRepair(repair),
				client.WithObserver(observer),
				client.WithMiddleware(mws...),
			)
			if err != nil {
				return err
			}

			res, err := c.Lookup(cmd.Context(), registry.ProviderName(provider), apiKey, flags.query(args[0]))
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), res)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&provider, "provider", "p", string(registry.Gemini),
		"Provider: "+strings.Join(providerNames(), ", "))
	cmd.Flags().StringVarP(&apiKey, "api-key", "k", "", "Provider API key (the local route falls back to API_KEY)")
	cmd.Flags().StringVar(&proxyURL, "proxy-url", "", "Server base URL for proxied providers (default PROXY_URL)")
	cmd.Flags().BoolVar(&autoDeep, "auto-deep", false, "Retry with deep search when nothing is found")
	cmd.Flags().BoolVar(&noValidate, "no-validate", false, "Skip checking the reply against the response schema")
	cmd.Flags().BoolVar(&repair, "repair", false, "Accept near-JSON replies from directly called providers")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Per-call timeout, 0 waits indefinitely")
	return cmd
}

func providerNames() []string {
	names := make([]string, 0, len(registry.ProviderNames))
	for _, n := range registry.ProviderNames {
		names = append(names, string(n))
	}
	return names
}

func printResult(w io.Writer, res *entity.EntityResult) error {
	header := color.New(color.FgGreen, color.Bold)
	if !res.Found() {
		header = color.New(color.FgYellow, color.Bold)
	}
	header.Fprintf(w, "%s (%s)\n", res.ResolvedName, res.EntityType)
	for _, issue := range res.ValidationIssues {
		color.New(color.FgYellow).Fprintf(w, "! %s\n", issue)
	}

	body, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(body))
	return err
}
