// Package slogobs provides an observability.Provider implementation backed by
// Go's standard library log/slog package.
//
// It routes span events and levelled logs through a configurable slog.Handler
// that can emit compact, pretty, or JSON output. Level names are colored with
// fatih/color when the output is a terminal. The main entry point is [New];
// output format and level can be tuned with [WithFormat], [WithLevel],
// [WithOutput], [WithColors], and [WithLogger].
package slogobs
