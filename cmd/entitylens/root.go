package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/leofalp/entitylens/internal/config"
	"github.com/leofalp/entitylens/providers/observability/slogobs"
)

var envFile string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "entitylens",
		Short:         "Biological and chemical entity lookup through LLM providers",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.PersistentFlags().StringVarP(&envFile, "env", "e", "", "Environment file")
	root.AddCommand(newServeCmd(), newLookupCmd(), newPromptCmd())
	return root
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads --env when given, ./.env otherwise.
func loadConfig() (config.Config, error) {
	if envFile != "" {
		return config.LoadFrom(envFile)
	}
	return config.Load()
}

// newObserver builds the slog observer described by cfg. The returned closer
// releases the log file.
func newObserver(cfg config.Log) (*slogobs.Observer, io.Closer, error) {
	opts := []slogobs.Option{}
	if cfg.Format != "" {
		opts = append(opts, slogobs.WithFormat(slogobs.ParseFormat(cfg.Format)))
	}
	if cfg.Level != "" {
		level, err := slogobs.ParseLogLevel(cfg.Level)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, slogobs.WithLevel(level))
	}

	if cfg.File == "" {
		// Keep the *os.File so terminal colors are detected.
		opts = append(opts, slogobs.WithOutput(os.Stderr))
		return slogobs.New(opts...), nopCloser{}, nil
	}

	out, err := cfg.OpenLog()
	if err != nil {
		return nil, nil, err
	}
	opts = append(opts, slogobs.WithOutput(out))
	return slogobs.New(opts...), out, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
