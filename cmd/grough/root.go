package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/grough/core"
	"github.com/katalvlaran/grough/edgelist"
)

// version is the grough CLI version.
var version = "0.1.0"

// app holds state shared by every subcommand.
type app struct {
	logFormat string
	logLevel  string
	log       *slog.Logger
}

func newRootCmd(outW, errW io.Writer) *cobra.Command {
	a := &app{log: slog.Default()}

	root := &cobra.Command{
		Use:           "grough",
		Short:         "grough - undirected weighted graph contraction and traversal",
		Long:          `grough loads "<u> <v> <w>" edge lists and contracts, samples or traverses them.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configureLogger(errW)
		},
	}
	root.SetOut(outW)
	root.SetErr(errW)

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Logging level: debug, info, warn or error.")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "Log output format: text or json.")

	root.AddCommand(
		newStatsCmd(a),
		newContractCmd(a),
		newRandomCmd(a),
		newSearchCmd(a),
		newGenCmd(a),
		newMSTCmd(a),
	)

	return root
}

// configureLogger validates the log flags and installs the logger.
func (a *app) configureLogger(w io.Writer) error {
	format := strings.ToLower(a.logFormat)
	if format != "text" && format != "json" {
		return &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	var level slog.Level
	switch strings.ToLower(a.logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	a.log = slog.New(handler)

	return nil
}

// loadGraph reads an edge-list file, logging its shape.
func (a *app) loadGraph(path string, opts ...core.GraphOption) (*core.Graph[int, int64], error) {
	a.log.Debug("Loading edge list.", "path", path)
	g, err := edgelist.ReadFile(path, edgelist.WithGraphOptions(opts...))
	if err != nil {
		return nil, &ExitError{Code: 1, Message: fmt.Sprintf("failed to load graph: %v", err)}
	}
	a.log.Debug("Edge list loaded.", "path", path, "order", g.Order(), "size", g.Size())

	return g, nil
}
