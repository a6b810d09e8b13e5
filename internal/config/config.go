package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all winnow configuration.
type Config struct {
	Sources       []string // ingestion sources, in invocation order
	File          FileConfig
	Dir           DirConfig
	UDP           UDPConfig
	WindowSeconds int
	Output        OutputConfig
	LogLevel      string
}

// FileConfig holds single-file ingestion settings.
type FileConfig struct {
	Path string
}

// DirConfig holds directory ingestion settings.
type DirConfig struct {
	Path string
}

// UDPConfig holds UDP syslog listener settings.
type UDPConfig struct {
	Host        string
	Port        int
	MaxLogs     int
	IdleTimeout time.Duration
}

// OutputConfig holds feature-table destination settings.
type OutputConfig struct {
	Format string // "csv" or "json"
	Path   string // empty = stdout
}

// Load reads configuration from environment variables with sensible
// defaults. The UDP port defaults to the conventional syslog port.
func Load() Config {
	return Config{
		Sources: splitList(getenv("WINNOW_SOURCES", "file")),
		File: FileConfig{
			Path: os.Getenv("WINNOW_FILE_PATH"),
		},
		Dir: DirConfig{
			Path: os.Getenv("WINNOW_DIR_PATH"),
		},
		UDP: UDPConfig{
			Host:        getenv("WINNOW_UDP_HOST", "0.0.0.0"),
			Port:        getenvInt("WINNOW_UDP_PORT", 514),
			MaxLogs:     getenvInt("WINNOW_UDP_MAX_LOGS", 1000),
			IdleTimeout: getenvDuration("WINNOW_UDP_IDLE_TIMEOUT", 30*time.Second),
		},
		WindowSeconds: getenvInt("WINNOW_WINDOW_SECONDS", 60),
		Output: OutputConfig{
			Format: getenv("WINNOW_OUTPUT_FORMAT", "csv"),
			Path:   os.Getenv("WINNOW_OUTPUT_PATH"),
		},
		LogLevel: getenv("WINNOW_LOG_LEVEL", "info"),
	}
}

// Validate checks the configuration for values no run could succeed with.
func (c Config) Validate() error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("config: at least one source is required")
	}
	for _, s := range c.Sources {
		switch s {
		case "file":
			if c.File.Path == "" {
				return fmt.Errorf("config: file source requires WINNOW_FILE_PATH")
			}
		case "dir":
			if c.Dir.Path == "" {
				return fmt.Errorf("config: dir source requires WINNOW_DIR_PATH")
			}
		case "udp":
			if c.UDP.Port < 1 || c.UDP.Port > 65535 {
				return fmt.Errorf("config: udp port out of range: %d", c.UDP.Port)
			}
			if c.UDP.MaxLogs <= 0 {
				return fmt.Errorf("config: udp max logs must be positive, got %d", c.UDP.MaxLogs)
			}
			if c.UDP.IdleTimeout < 0 {
				return fmt.Errorf("config: udp idle timeout must not be negative")
			}
		default:
			return fmt.Errorf("config: unknown source: %s", s)
		}
	}
	if c.WindowSeconds <= 0 {
		return fmt.Errorf("config: window seconds must be positive, got %d", c.WindowSeconds)
	}
	switch c.Output.Format {
	case "csv", "json":
	default:
		return fmt.Errorf("config: unknown output format: %s", c.Output.Format)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

// splitList parses a comma-separated list, trimming whitespace and
// dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
