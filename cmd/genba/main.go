package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alexanderramin/genbaflow/internal/cli"
	"github.com/alexanderramin/genbaflow/internal/clipboard"
	"github.com/alexanderramin/genbaflow/internal/intelligence"
	"github.com/alexanderramin/genbaflow/internal/llm"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, err := newLogger(os.Getenv("GENBA_LOG_FILE"), os.Getenv("GENBA_DEBUG"))
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	app := &cli.App{
		Config:    llm.LoadConfig(),
		Clipboard: clipboard.NewSystem(),
		Logger:    logger,
	}

	// Built after flag overrides, on first use.
	app.NewReports = reportBuilder(logger)

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

// availabilityTimeout bounds the startup reachability check.
const availabilityTimeout = 2 * time.Second

// reportBuilder returns the factory that wires the configured LLM client into
// a report service. An unusable backend is logged, not refused: generation
// then fails with the generic message and the form stays editable.
func reportBuilder(logger *zap.Logger) func(llm.LLMConfig) (intelligence.ReportService, error) {
	return func(cfg llm.LLMConfig) (intelligence.ReportService, error) {
		var observer llm.Observer = llm.NoopObserver{}
		if cfg.LogCalls {
			observer = llm.NewLogObserver(logger.Named("llm"))
		}
		client, err := llm.NewClient(cfg, observer)
		if err != nil {
			return nil, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), availabilityTimeout)
		defer cancel()
		if !client.Available(ctx) {
			logger.Warn("language model backend not available; generation will fail until it is configured",
				zap.String("provider", string(cfg.Provider)),
				zap.String("model", cfg.Model))
		}
		return intelligence.NewReportService(client, logger.Named("report")), nil
	}
}

// newLogger writes JSON logs to path, or discards everything when path is
// empty since the TUI owns the terminal.
func newLogger(path, debug string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if on, _ := strconv.ParseBool(debug); on {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
