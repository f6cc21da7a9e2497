package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/leofalp/entitylens/core/client"
	"github.com/leofalp/entitylens/internal/utils"
)

// LogLevel controls how much detail the logging middleware emits per call.
type LogLevel int

const (
	// LogLevelMinimal logs the provider and total duration.
	LogLevelMinimal LogLevel = iota

	// LogLevelStandard adds the prompt length and reply size.
	LogLevelStandard

	// LogLevelVerbose adds the prompt and reply text, each truncated to 500
	// characters.
	//
	// WARNING: DO NOT use LogLevelVerbose in production. Prompts carry the
	// user's background text verbatim.
	LogLevelVerbose
)

// truncateLen is the maximum content length included in verbose log output.
const truncateLen = 500

// NewLoggingMiddleware logs every completion on logger. The API key is never
// logged. The logger must not be nil.
func NewLoggingMiddleware(logger *slog.Logger, level LogLevel) client.Middleware {
	return func(next client.Completer) client.Completer {
		return client.CompleterFunc(func(ctx context.Context, call client.Call) (json.RawMessage, error) {
			logger.InfoContext(ctx, "entity completion", buildCallAttrs(call, level)...)

			start := time.Now()
			raw, err := next.Complete(ctx, call)
			elapsed := time.Since(start)

			if err != nil {
				logger.ErrorContext(ctx, "entity completion failed",
					slog.String("provider", string(call.Provider)),
					slog.Duration("duration", elapsed),
					slog.String("error", err.Error()),
				)
				return nil, err
			}

			logger.InfoContext(ctx, "entity completion completed", buildResultAttrs(call, raw, elapsed, level)...)
			return raw, nil
		})
	}
}

func buildCallAttrs(call client.Call, level LogLevel) []any {
	attrs := []any{
		slog.String("provider", string(call.Provider)),
	}

	if level >= LogLevelStandard {
		attrs = append(attrs, slog.Int("prompt_length", len(call.Prompt)))
	}

	if level >= LogLevelVerbose {
		attrs = append(attrs, slog.String("prompt", utils.TruncateString(call.Prompt, truncateLen)))
	}

	return attrs
}

func buildResultAttrs(call client.Call, raw json.RawMessage, elapsed time.Duration, level LogLevel) []any {
	attrs := []any{
		slog.String("provider", string(call.Provider)),
		slog.Duration("duration", elapsed),
	}

	if level >= LogLevelStandard {
		attrs = append(attrs, slog.Int("result_size", len(raw)))
	}

	if level >= LogLevelVerbose {
		attrs = append(attrs, slog.String("result", utils.TruncateString(string(raw), truncateLen)))
	}

	return attrs
}
