package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"profitswitch/internal/profit"
)

type Server struct {
	Port string `json:"port"`
}

type NiceHash struct {
	Endpoint              string `json:"endpoint"`
	RequestTimeoutSec     int    `json:"request_timeout_sec"`
	UserAgent             string `json:"user_agent"`
	MaxBodyBytes          int64  `json:"max_body_bytes"`
	MaxRequestsPerMinute  int    `json:"max_requests_per_minute"`
	MinRequestIntervalSec int    `json:"min_request_interval_sec"`
	Burst                 int    `json:"burst"`
}

type Watch struct {
	IntervalSec int `json:"interval_sec"`
}

type Log struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

type Config struct {
	Server     Server             `json:"server"`
	NiceHash   NiceHash           `json:"nicehash"`
	Watch      Watch              `json:"watch"`
	Log        Log                `json:"log"`
	Algorithms []profit.Algorithm `json:"algorithms"`
}

func Default() Config {
	return Config{
		Server: Server{Port: "8080"},
		NiceHash: NiceHash{
			Endpoint:             "https://www.nicehash.com",
			RequestTimeoutSec:    15,
			UserAgent:            "profitswitch/1.0",
			MaxBodyBytes:         4 << 20,
			MaxRequestsPerMinute: 2,
			Burst:                1,
		},
		Watch: Watch{IntervalSec: 60},
		Log:   Log{Level: "info", Format: "text"},
	}
}

// Load reads JSON config from path. If path is empty or file does not exist,
// it returns defaults. Environment variables override select fields.
// Algorithm names are lowercased to match the service's convention.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat("config.json"); err == nil {
			path = "config.json"
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	for i := range cfg.Algorithms {
		cfg.Algorithms[i].Name = strings.ToLower(strings.TrimSpace(cfg.Algorithms[i].Name))
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("NICEHASH_ENDPOINT"); v != "" {
		cfg.NiceHash.Endpoint = v
	}
	if v := os.Getenv("USER_AGENT"); v != "" {
		cfg.NiceHash.UserAgent = v
	}
	if x, ok := envInt("REQUEST_TIMEOUT_SEC", 1); ok {
		cfg.NiceHash.RequestTimeoutSec = x
	}
	if x, ok := envInt("NICEHASH_MAX_RPM", 0); ok {
		cfg.NiceHash.MaxRequestsPerMinute = x
	}
	if x, ok := envInt("NICEHASH_BURST", 1); ok {
		cfg.NiceHash.Burst = x
	}
	if x, ok := envInt("NICEHASH_MIN_INTERVAL_SEC", 0); ok {
		cfg.NiceHash.MinRequestIntervalSec = x
	}
	if x, ok := envInt("WATCH_INTERVAL_SEC", 1); ok {
		cfg.Watch.IntervalSec = x
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("ALGORITHMS"); v != "" {
		algos, err := ParseAlgorithms(v)
		if err != nil {
			return fmt.Errorf("ALGORITHMS: %w", err)
		}
		cfg.Algorithms = algos
	}
	return nil
}

// envInt reads an integer override. Unset, malformed, or below-min values
// leave the current setting alone.
func envInt(key string, floor int) (int, bool) {
	x, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || x < floor {
		return 0, false
	}
	return x, true
}

// ParseAlgorithms parses "name:factor,name:factor". Names are lowercased.
func ParseAlgorithms(s string) ([]profit.Algorithm, error) {
	parts := splitCSV(s)
	out := make([]profit.Algorithm, 0, len(parts))
	for _, p := range parts {
		name, factor, ok := strings.Cut(p, ":")
		name = strings.ToLower(strings.TrimSpace(name))
		if !ok || name == "" {
			return nil, fmt.Errorf("want name:factor, got %q", p)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(factor), 64)
		if err != nil {
			return nil, fmt.Errorf("factor for %q: %w", name, err)
		}
		out = append(out, profit.Algorithm{Name: name, Factor: f})
	}
	return out, nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
