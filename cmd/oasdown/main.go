package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/oasdown/oasdown/internal/config"
	"github.com/oasdown/oasdown/internal/converter"
)

func main() {
	os.Exit(run())
}

func run() int {
	var src string
	var dst string
	var cfgPath string
	var generateIDs bool
	var verbose bool

	flag.StringVar(&src, "src", "", "path to source OpenAPI file or directory")
	flag.StringVar(&dst, "dst", "", "output directory for converted documents")
	flag.StringVar(&cfgPath, "config", "", "path to optional YAML config file")
	flag.BoolVar(&generateIDs, "generate-ids", false, "synthesize ids for operations without one")
	flag.BoolVar(&verbose, "verbose", false, "enable debug logging")
	flag.Parse()

	if len(flag.Args()) == 2 && src == "" && dst == "" {
		src = flag.Args()[0]
		dst = flag.Args()[1]
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	cfg, err := config.NewConfigFromFile(cfgPath)
	if err != nil {
		slog.Error("error loading config", "error", err)
		return 1
	}

	// flags win over config file and environment
	if dst != "" {
		cfg.Output = dst
	}
	if generateIDs {
		cfg.GenerateOperationIDs = true
	}
	if verbose {
		cfg.Verbose = true
	}

	if cfg.Verbose {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)
	}

	if src == "" {
		fmt.Fprintln(os.Stderr, "src flag is required")
		flag.Usage()
		return 1
	}

	if err := converter.New(cfg).Run(src); err != nil {
		slog.Error("conversion failed", "error", err)
		if errors.Is(err, converter.ErrNotRegularFile) {
			return 2
		}
		return 1
	}

	return 0
}
