// Command leiden-server exposes community detection over HTTP.
// Configuration comes from an optional YAML file with flag overrides.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-leiden/pkg/api"
	"github.com/dd0wney/cluso-leiden/pkg/leiden"
	"github.com/dd0wney/cluso-leiden/pkg/logging"
	"github.com/dd0wney/cluso-leiden/pkg/metrics"
	"github.com/dd0wney/cluso-leiden/pkg/server"
)

// Config holds the server configuration
type Config struct {
	Port           int     `yaml:"port"`
	LogLevel       string  `yaml:"log_level"`
	Resolution     float64 `yaml:"resolution"`
	Iterations     int     `yaml:"n_iterations"`
	Seed           int64   `yaml:"seed"`
	MaxBodyBytes   int64   `yaml:"max_body_bytes"`
	RequestTimeout string  `yaml:"request_timeout"`
}

func defaultConfig() Config {
	return Config{
		Port:           8080,
		LogLevel:       "info",
		Resolution:     1.0,
		Iterations:     -1,
		Seed:           1,
		MaxBodyBytes:   64 << 20,
		RequestTimeout: "5m",
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	port := flag.Int("port", 0, "Server port, overrides the config file")
	logLevel := flag.String("log-level", "", "Log level, overrides the config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	timeout, err := time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		log.Fatalf("Invalid request_timeout %q: %v", cfg.RequestTimeout, err)
	}

	logger := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	opts := leiden.Options{
		Resolution:    cfg.Resolution,
		MaxIterations: cfg.Iterations,
		RandomSeed:    cfg.Seed,
	}

	apiServer := api.NewServer(cfg.Port,
		api.WithLogger(logger),
		api.WithMetrics(metrics.DefaultRegistry()),
		api.WithDetectionOptions(opts),
		api.WithMaxBodyBytes(cfg.MaxBodyBytes),
		api.WithRequestTimeout(timeout),
	)

	addr := fmt.Sprintf(":%d", cfg.Port)
	gs := server.NewGracefulServer(addr, apiServer.Handler(), logger)

	logger.Info("leiden-server starting",
		logging.String("addr", addr),
		logging.Resolution(cfg.Resolution),
		logging.Int("n_iterations", cfg.Iterations),
	)

	if err := gs.Start(); err != nil {
		logger.Error("server exited", logging.Error(err))
		os.Exit(1)
	}
}
