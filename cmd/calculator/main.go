package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/calculator/internal/calculator"
	"github.com/GriffinCanCode/calculator/internal/config"
	"github.com/GriffinCanCode/calculator/internal/console"
	"github.com/GriffinCanCode/calculator/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/calculator/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// Parse flags; env config supplies the defaults
	fs := flag.NewFlagSet("calculator", flag.ContinueOnError)
	typeName := fs.String("type", cfg.Calculator.Type, "Numeric type: int, float, double, decimal, long")
	format := fs.String("format", cfg.Calculator.Format, "Output format: "+strings.Join(config.Formats, ", "))
	dev := fs.Bool("dev", cfg.Logging.Development, "Development logging (debug level, console encoder)")
	list := fs.Bool("list", false, "Print the supported operations for -type and exit")
	loop := fs.Bool("loop", false, "Keep evaluating until input ends")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg.Calculator.Type = *typeName
	cfg.Calculator.Format = *format
	cfg.Logging.Development = *dev
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 2
	}
	rep, _ := calculator.ParseRepresentation(cfg.Calculator.Type)

	if *list {
		fmt.Println(strings.Join(console.Operators(rep), " "))
		return 0
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	if cfg.Logging.Development {
		logCfg = logging.DevelopmentConfig()
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	var metrics *monitoring.Metrics
	if cfg.Metrics.Enabled {
		metrics = monitoring.NewMetrics(prometheus.NewRegistry())
	}

	session, err := console.NewSession(os.Stdin, os.Stdout, console.Options{
		Representation: rep,
		Format:         cfg.Calculator.Format,
		Logger:         logger,
		Metrics:        metrics,
	})
	if err != nil {
		logger.Error("Failed to start session", zap.Error(err))
		return 1
	}

	logger.Debug("Session started",
		zap.String("representation", rep.String()),
		zap.String("format", cfg.Calculator.Format),
		zap.Bool("loop", *loop),
	)

	if *loop {
		err = session.RunAll()
	} else {
		err = session.Run()
	}
	if err != nil {
		logger.Warn("Session ended early", zap.Error(err))
	}

	if metrics != nil {
		summary := metrics.Snapshot()
		logger.Debug("Evaluation summary",
			zap.Int64("total", summary.Total),
			zap.Int64("failures", summary.Failures),
			zap.Any("outcomes", summary.Outcomes),
		)
	}

	// Calculation and input errors never change the exit status
	return 0
}
