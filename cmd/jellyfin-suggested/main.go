// jellyfin-suggested generates a personalized "Suggested For You"
// playlist for every Jellyfin user from their watch history and TMDB
// similar-title recommendations, limited to what the library already
// holds. It is meant to run from cron or a systemd timer.
package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jessedye/jellyfin-suggested/internal/config"
	"github.com/jessedye/jellyfin-suggested/internal/jellyfin"
	"github.com/jessedye/jellyfin-suggested/internal/metadata"
	"github.com/jessedye/jellyfin-suggested/internal/suggest"
	"github.com/jessedye/jellyfin-suggested/internal/tmdb"
)

var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "jellyfin-suggested",
	Short: "Personalized Jellyfin playlists from TMDB recommendations",
	Long: `jellyfin-suggested - personalized playlist generator

For each Jellyfin user: fetch recent watch history, look up similar
titles on TMDB, keep only titles already in the library, rank by
rating, and upsert the result as a named playlist.

Configuration is environment-driven (JELLYFIN_URL, JELLYFIN_API_KEY,
TMDB_API_KEY are required); an optional TOML file supplies the same
settings with environment variables taking precedence.`,
	SilenceUsage: true,
	RunE:         run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to optional TOML config file")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("jellyfin-suggested {{.Version}}\n")
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpClient := &http.Client{Timeout: cfg.Timeout()}

	jf := jellyfin.NewClient(cfg.Jellyfin.URL, cfg.Jellyfin.APIKey,
		jellyfin.WithHTTPClient(httpClient))

	var cache metadata.Cache = metadata.NewMemoryCache()
	if cfg.TMDB.CachePath != "" {
		store, err := metadata.Open(cfg.TMDB.CachePath)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		if n, err := store.Prune(ctx); err == nil && n > 0 {
			logger.Debug("pruned expired cache entries", "count", n)
		}
		cache = store
	}

	tm := tmdb.NewClient(cfg.TMDB.APIKey,
		tmdb.WithHTTPClient(httpClient),
		tmdb.WithCache(cache, cfg.TMDBCacheTTL))

	gen := suggest.NewGenerator(jf, tm, suggest.Config{
		PlaylistName:      cfg.Playlist.Name,
		MaxWatchedItems:   cfg.Playlist.MaxWatchedItems,
		MaxSimilarPerItem: cfg.Playlist.MaxSimilarPerItem,
		MaxPlaylistItems:  cfg.Playlist.MaxItems,
		MinRating:         cfg.Playlist.MinRating,
		MinVotes:          cfg.Playlist.MinVotes,
	}, logger)

	logger.Info("starting run",
		"jellyfin", cfg.Jellyfin.URL,
		"playlist", cfg.Playlist.Name,
		"log_level", cfg.LogLevel,
		"tmdb_cache", cfg.TMDB.CachePath != "",
	)

	if _, err := gen.Run(ctx); err != nil {
		logger.Error("run failed", "error", err)
		return err
	}
	return nil
}
