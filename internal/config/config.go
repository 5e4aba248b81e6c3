// Package config handles environment-driven configuration with an
// optional TOML file layer.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure. Environment variables
// always override file values.
type Config struct {
	Jellyfin JellyfinConfig `toml:"jellyfin"`
	TMDB     TMDBConfig     `toml:"tmdb"`
	Playlist PlaylistConfig `toml:"playlist"`

	LogLevel       string `toml:"log_level"`
	RequestTimeout int    `toml:"request_timeout"` // seconds

	// Parsed from TMDB.CacheTTL during validation.
	TMDBCacheTTL time.Duration `toml:"-"`
}

type JellyfinConfig struct {
	URL    string `toml:"url"`
	APIKey string `toml:"api_key"`
}

type TMDBConfig struct {
	APIKey    string `toml:"api_key"`
	CachePath string `toml:"cache_path"`
	CacheTTL  string `toml:"cache_ttl"` // e.g. "24h"
}

type PlaylistConfig struct {
	Name              string  `toml:"name"`
	MaxWatchedItems   int     `toml:"max_watched_items"`
	MaxSimilarPerItem int     `toml:"max_similar_per_item"`
	MaxItems          int     `toml:"max_items"`
	MinRating         float64 `toml:"min_rating"`
	MinVotes          int     `toml:"min_votes"`
}

// Timeout returns the HTTP client timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// Load builds the configuration from an optional TOML file plus
// environment variables. path may be empty or point at a file that
// doesn't exist; only a present-but-malformed file is an error.
// Required values missing after all layers are a fatal error.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// env-only run
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			content := substituteEnvVars(string(data))
			if _, err := toml.Decode(content, &cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv overrides config fields from recognized environment
// variables. Empty values are treated as unset.
func applyEnv(cfg *Config) error {
	setString(&cfg.Jellyfin.URL, "JELLYFIN_URL")
	setString(&cfg.Jellyfin.APIKey, "JELLYFIN_API_KEY")
	setString(&cfg.TMDB.APIKey, "TMDB_API_KEY")
	setString(&cfg.TMDB.CachePath, "TMDB_CACHE_PATH")
	setString(&cfg.TMDB.CacheTTL, "TMDB_CACHE_TTL")
	setString(&cfg.Playlist.Name, "PLAYLIST_NAME")
	setString(&cfg.LogLevel, "LOG_LEVEL")

	for _, v := range []struct {
		dst  *int
		name string
	}{
		{&cfg.Playlist.MaxWatchedItems, "MAX_WATCHED_ITEMS"},
		{&cfg.Playlist.MaxSimilarPerItem, "MAX_SIMILAR_PER_ITEM"},
		{&cfg.Playlist.MaxItems, "MAX_PLAYLIST_ITEMS"},
		{&cfg.Playlist.MinVotes, "MIN_TMDB_VOTES"},
		{&cfg.RequestTimeout, "REQUEST_TIMEOUT"},
	} {
		if err := setInt(v.dst, v.name); err != nil {
			return err
		}
	}

	if s := os.Getenv("MIN_TMDB_RATING"); s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("MIN_TMDB_RATING: %w", err)
		}
		cfg.Playlist.MinRating = f
	}
	return nil
}

func setString(dst *string, name string) {
	if s := os.Getenv(name); s != "" {
		*dst = s
	}
}

func setInt(dst *int, name string) error {
	s := os.Getenv(name)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = n
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Playlist.Name == "" {
		cfg.Playlist.Name = "Suggested For You"
	}
	if cfg.Playlist.MaxWatchedItems == 0 {
		cfg.Playlist.MaxWatchedItems = 20
	}
	if cfg.Playlist.MaxSimilarPerItem == 0 {
		cfg.Playlist.MaxSimilarPerItem = 5
	}
	if cfg.Playlist.MaxItems == 0 {
		cfg.Playlist.MaxItems = 50
	}
	if cfg.Playlist.MinRating == 0 {
		cfg.Playlist.MinRating = 6.0
	}
	if cfg.Playlist.MinVotes == 0 {
		cfg.Playlist.MinVotes = 50
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 30
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.TMDB.CacheTTL == "" {
		cfg.TMDB.CacheTTL = "24h"
	}
}

func validate(cfg *Config) error {
	var missing []string
	if cfg.Jellyfin.URL == "" {
		missing = append(missing, "JELLYFIN_URL")
	}
	if cfg.Jellyfin.APIKey == "" {
		missing = append(missing, "JELLYFIN_API_KEY")
	}
	if cfg.TMDB.APIKey == "" {
		missing = append(missing, "TMDB_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	cfg.Jellyfin.URL = strings.TrimSuffix(cfg.Jellyfin.URL, "/")

	ttl, err := time.ParseDuration(cfg.TMDB.CacheTTL)
	if err != nil {
		return fmt.Errorf("TMDB_CACHE_TTL: %w", err)
	}
	cfg.TMDBCacheTTL = ttl
	return nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
