package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/crimson-sun/winnow/internal/config"
	"github.com/crimson-sun/winnow/internal/ingest"
	"github.com/crimson-sun/winnow/internal/logging"
	"github.com/crimson-sun/winnow/internal/model"
	"github.com/crimson-sun/winnow/internal/output"
	"github.com/crimson-sun/winnow/internal/pipeline"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	outputIsStdout := cfg.Output.Path == ""
	logging.Init(outputIsStdout, logging.ParseLevel(cfg.LogLevel))

	// Set up graceful shutdown: a signal stops UDP ingestion and the run
	// proceeds with whatever was collected.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Fprintf(os.Stderr, "\nreceived %v, shutting down...\n", sig)
		cancel()
	}()

	p := pipeline.New(time.Duration(cfg.WindowSeconds) * time.Second)
	for _, name := range cfg.Sources {
		if err := p.Collect(ctx, name, sourceConfig(cfg, name)); err != nil {
			log.Fatalf("ingestion failed: %v", err)
		}
	}

	if err := writeFeatures(cfg.Output, p.Features()); err != nil {
		log.Fatalf("failed to write feature table: %v", err)
	}
}

// writeFeatures writes the feature table to the configured destination. A
// file destination is closed before returning so a write flushed at close
// still surfaces as an error instead of a silently short file.
func writeFeatures(cfg config.OutputConfig, records []model.FeatureRecord) error {
	var write output.Writer = output.WriteCSV
	if cfg.Format == "json" {
		write = output.WriteJSON
	}

	if cfg.Path == "" {
		return write(os.Stdout, records)
	}

	f, err := os.Create(cfg.Path)
	if err != nil {
		return fmt.Errorf("create %s: %w", cfg.Path, err)
	}
	if err := write(f, records); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", cfg.Path, err)
	}
	return nil
}

// sourceConfig maps the loaded configuration to the settings one source
// needs.
func sourceConfig(cfg config.Config, name string) ingest.Config {
	switch name {
	case "file":
		return ingest.Config{Path: cfg.File.Path}
	case "dir":
		return ingest.Config{Path: cfg.Dir.Path}
	case "udp":
		return ingest.Config{
			Host:        cfg.UDP.Host,
			Port:        cfg.UDP.Port,
			MaxLogs:     cfg.UDP.MaxLogs,
			IdleTimeout: cfg.UDP.IdleTimeout,
		}
	default:
		return ingest.Config{}
	}
}
