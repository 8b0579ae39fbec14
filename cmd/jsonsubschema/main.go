// Package main provides the CLI entry point for jsonsubschema: given two
// JSON Schema documents, it reports whether the first is a subschema of
// the second.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/Perf-Org-5KRepos/jsonsubschema"
	validator "github.com/Perf-Org-5KRepos/jsonsubschema/validator"
)

var logLevel string

func main() {
	rootCmd := &cobra.Command{
		Use:           "jsonsubschema <left.json> <right.json>",
		Short:         "Decide whether a JSON Schema is a subschema of another",
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(args[0], args[1])
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level, one of: debug, info, warn, error")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(leftPath, rightPath string) error {
	level, err := parseLevel(logLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	left, err := readSchema(logger, leftPath)
	if err != nil {
		return err
	}
	right, err := readSchema(logger, rightPath)
	if err != nil {
		return err
	}

	result, err := jsonsubschema.IsSubschema(left, right)
	if err != nil {
		if errors.Is(err, jsonsubschema.ErrUnsupportedNegation) || errors.Is(err, jsonsubschema.ErrUnsupportedOneOf) {
			logger.Error("unsupported construct", "error", err)
		}
		return err
	}

	fmt.Println(result)
	return nil
}

// readSchema loads, metaschema-validates, and decodes a schema document
// from path. The algebra never sees a document that fails the draft-4
// metaschema gate.
func readSchema(logger *slog.Logger, path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := validator.ValidateDocument(raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("validated schema document", "path", path)

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return decoded, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
