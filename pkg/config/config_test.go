package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var configKeys = []string{
	"PORT", "RATE_LIMIT",
	"FEED_FETCH_TIMEOUT", "FEED_MAX_ITEMS", "FEED_MAX_CONCURRENCY", "FEED_MAX_BODY_BYTES",
	"FEED_PROXY_TEMPLATE", "FEED_SOURCES_FILE",
	"SEARCH_API_URL", "SEARCH_MAX_RESULTS", "SEARCH_CACHE_TTL", "SEARCH_RETRIES",
	"CACHE_TYPE", "REDIS_ADDRESS", "REDIS_PASSWORD", "REDIS_DB", "MEMORY_CACHE_EXPIRATION",
	"LOG_LEVEL", "LOG_FORMAT", "LOG_FILE",
}

// clearEnv blanks every key LoadFromEnv reads; empty values mean "use default"
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name            string
		envVars         map[string]string
		expectedPort    string
		expectedTimeout time.Duration
		expectedItems   int
	}{
		{
			name:            "defaults",
			envVars:         map[string]string{},
			expectedPort:    "8000",
			expectedTimeout: 10 * time.Second,
			expectedItems:   50,
		},
		{
			name:            "uses PORT env var when set",
			envVars:         map[string]string{"PORT": "3000"},
			expectedPort:    "3000",
			expectedTimeout: 10 * time.Second,
			expectedItems:   50,
		},
		{
			name:            "timeout as go duration",
			envVars:         map[string]string{"FEED_FETCH_TIMEOUT": "2500ms"},
			expectedPort:    "8000",
			expectedTimeout: 2500 * time.Millisecond,
			expectedItems:   50,
		},
		{
			name:            "timeout as seconds",
			envVars:         map[string]string{"FEED_FETCH_TIMEOUT": "4"},
			expectedPort:    "8000",
			expectedTimeout: 4 * time.Second,
			expectedItems:   50,
		},
		{
			name:            "invalid values fall back to defaults",
			envVars:         map[string]string{"FEED_FETCH_TIMEOUT": "soon", "FEED_MAX_ITEMS": "many"},
			expectedPort:    "8000",
			expectedTimeout: 10 * time.Second,
			expectedItems:   50,
		},
		{
			name:            "max items override",
			envVars:         map[string]string{"FEED_MAX_ITEMS": "20"},
			expectedPort:    "8000",
			expectedTimeout: 10 * time.Second,
			expectedItems:   20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := LoadFromEnv()
			if err != nil {
				t.Fatalf("LoadFromEnv() error = %v", err)
			}

			if cfg.Server.Port != tt.expectedPort {
				t.Errorf("Port = %v, want %v", cfg.Server.Port, tt.expectedPort)
			}
			if cfg.Feed.FetchTimeout != tt.expectedTimeout {
				t.Errorf("FetchTimeout = %v, want %v", cfg.Feed.FetchTimeout, tt.expectedTimeout)
			}
			if cfg.Feed.MaxItems != tt.expectedItems {
				t.Errorf("MaxItems = %v, want %v", cfg.Feed.MaxItems, tt.expectedItems)
			}
		})
	}
}

func TestLoadFromEnv_DefaultsAreValid(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default configuration should be valid: %v", err)
	}
	if cfg.Search.MaxResults != 20 {
		t.Errorf("Search.MaxResults = %v, want 20", cfg.Search.MaxResults)
	}
	if cfg.Server.RateLimit != 0 {
		t.Errorf("Server.RateLimit = %v, want 0 (disabled)", cfg.Server.RateLimit)
	}
}

func TestLoadFromEnv_NormalizesLogSettings(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v, want lower-cased level and format", cfg.Log)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("PORT=9090\nFEED_MAX_ITEMS=7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	// godotenv never overrides variables that are present, even blank ones
	os.Unsetenv("PORT")
	os.Unsetenv("FEED_MAX_ITEMS")

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}

	cfg, _ := LoadFromEnv()
	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %v, want 9090", cfg.Server.Port)
	}
	if cfg.Feed.MaxItems != 7 {
		t.Errorf("MaxItems = %v, want 7", cfg.Feed.MaxItems)
	}
}

func TestLoadDotEnv_NoFiles(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("LoadDotEnv() with missing files should not fail: %v", err)
	}
}

func validConfig() Config {
	return Config{
		Server: ServerConfig{Port: "8000"},
		Feed: FeedConfig{
			FetchTimeout:   10 * time.Second,
			MaxItems:       50,
			MaxConcurrency: 10,
			MaxBodyBytes:   1 << 20,
			ProxyTemplate:  "https://proxy.example/raw?url=%s",
		},
		Search: SearchConfig{
			APIURL:     "https://search.example/api",
			MaxResults: 20,
		},
		Cache: CacheConfig{Type: "memory"},
		Log:   LogConfig{Level: "info", Format: "text"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: true,
			errMsg:  "port cannot be empty",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Feed.FetchTimeout = 0 },
			wantErr: true,
			errMsg:  "feed fetch timeout must be positive",
		},
		{
			name:    "zero max items",
			mutate:  func(c *Config) { c.Feed.MaxItems = 0 },
			wantErr: true,
			errMsg:  "feed max items must be at least 1",
		},
		{
			name:    "proxy template without placeholder",
			mutate:  func(c *Config) { c.Feed.ProxyTemplate = "https://proxy.example/raw" },
			wantErr: true,
			errMsg:  "feed proxy template must contain exactly one %s",
		},
		{
			name:    "invalid cache type",
			mutate:  func(c *Config) { c.Cache.Type = "invalid" },
			wantErr: true,
			errMsg:  "cache type must be 'redis' or 'memory'",
		},
		{
			name: "redis type with empty address",
			mutate: func(c *Config) {
				c.Cache.Type = "redis"
				c.Cache.Redis.Address = ""
			},
			wantErr: true,
			errMsg:  "redis address cannot be empty when using redis cache",
		},
		{
			name:    "invalid log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: true,
			errMsg:  "log format must be 'text' or 'json'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil && tt.errMsg != "" && err.Error() != tt.errMsg {
				t.Errorf("Validate() error = %v, want %v", err.Error(), tt.errMsg)
			}
		})
	}
}
