package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/zeusync/vecmath/internal/check"
	"github.com/zeusync/vecmath/internal/injector"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("algebracheck", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to a YAML configuration file")
	createDefault := fs.Bool("default", false, "Write the default configuration to -config and exit")
	list := fs.Bool("list", false, "List the known properties and exit")
	seed := fs.Uint64("seed", 0, "Override the sampling seed")
	samples := fs.Int("samples", 0, "Override the number of samples per property")
	workers := fs.Int("workers", 0, "Override the number of properties checked at once")
	properties := fs.String("properties", "", "Comma separated subset of properties to check")
	logLevel := fs.String("log-level", "", "Override the log level (debug, info, warn, error, silent)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *list {
		for _, p := range check.Properties() {
			fmt.Printf("%-28s %s\n", p.Name, p.Description)
		}
		return 0
	}

	if *createDefault {
		if *configPath == "" {
			fmt.Fprintln(os.Stderr, "-default requires -config")
			return 2
		}
		if err := check.DefaultConfig().SaveFile(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to write configuration:", err)
			return 1
		}
		return 0
	}

	cfg := check.DefaultConfig()
	if *configPath != "" {
		loaded, err := check.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
			return 1
		}
		cfg = loaded
	}

	// only flags given on the command line override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "samples":
			cfg.Samples = *samples
		case "workers":
			cfg.Workers = *workers
		case "properties":
			cfg.Properties = splitList(*properties)
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Invalid configuration:", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := injector.InitializeRunner(cfg).Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Interrupted")
		} else {
			fmt.Fprintln(os.Stderr, "Property run failed:", err)
		}
		return 1
	}

	if _, err := report.WriteTo(os.Stdout); err != nil {
		return 1
	}
	if !report.Passed() {
		return 1
	}
	return 0
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
