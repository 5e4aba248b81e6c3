// Package suggest implements the recommendation pipeline: per user,
// watch history is fanned out to similar-title lookups, candidates are
// resolved against the library snapshot, filtered, ranked, and written
// back as a named playlist.
package suggest

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/jessedye/jellyfin-suggested/internal/jellyfin"
	"github.com/jessedye/jellyfin-suggested/internal/tmdb"
)

// MediaServer is the media-server surface the pipeline consumes.
// *jellyfin.Client satisfies it.
type MediaServer interface {
	Users(ctx context.Context) ([]jellyfin.User, error)
	WatchedItems(ctx context.Context, userID, itemType string, limit int) ([]jellyfin.Item, error)
	LibraryItems(ctx context.Context, itemType string) ([]jellyfin.Item, error)
	ItemInfo(ctx context.Context, userID, itemID string) (*jellyfin.Item, error)
	Playlists(ctx context.Context, userID string) ([]jellyfin.Item, error)
	CreatePlaylist(ctx context.Context, userID, name string, itemIDs []string) (string, error)
	ReplacePlaylistItems(ctx context.Context, playlistID string, itemIDs []string) error
}

// MetadataSource is the recommendation surface the pipeline consumes.
// *tmdb.Client satisfies it.
type MetadataSource interface {
	Similar(ctx context.Context, tmdbID int64, mediaType tmdb.MediaType) ([]tmdb.Title, error)
	Search(ctx context.Context, query string, mediaType tmdb.MediaType) (*tmdb.Title, error)
}

var (
	_ MediaServer    = (*jellyfin.Client)(nil)
	_ MetadataSource = (*tmdb.Client)(nil)
)

// Config holds the pipeline knobs.
type Config struct {
	PlaylistName      string
	MaxWatchedItems   int
	MaxSimilarPerItem int
	MaxPlaylistItems  int
	MinRating         float64
	MinVotes          int
}

// Candidate is a library item proposed for a user's playlist.
type Candidate struct {
	Item   LibraryItem
	Rating float64
	Votes  int
	Via    string // watched title that surfaced it
}

// Result summarizes one run.
type Result struct {
	Users            int // users fully processed
	SkippedUsers     int
	PlaylistsWritten int
	PlaylistsCreated int
}

// Generator runs the pipeline for every user, sequentially. One user's
// failure never aborts the run; only config or total media-server
// connectivity failures do.
type Generator struct {
	server MediaServer
	source MetadataSource
	cfg    Config
	log    *slog.Logger
}

// NewGenerator creates a Generator.
func NewGenerator(server MediaServer, source MetadataSource, cfg Config, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		server: server,
		source: source,
		cfg:    cfg,
		log:    logger.With("component", "suggest"),
	}
}

// Run executes one generation pass. The returned error is non-nil only
// for fatal conditions (library or user listing unreachable); per-user
// and per-item failures are logged and skipped.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	movies, err := g.server.LibraryItems(ctx, jellyfin.TypeMovie)
	if err != nil {
		return nil, fmt.Errorf("fetch movie library: %w", err)
	}
	series, err := g.server.LibraryItems(ctx, jellyfin.TypeSeries)
	if err != nil {
		return nil, fmt.Errorf("fetch series library: %w", err)
	}
	index := NewLibraryIndex(movies, series)
	g.log.Info("library indexed", "movies", len(movies), "series", len(series))

	users, err := g.server.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	g.log.Info("processing users", "count", len(users))

	res := &Result{}
	for _, user := range users {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := g.processUser(ctx, user, index, res); err != nil {
			g.log.Error("user skipped", "user", user.Name, "error", err)
			res.SkippedUsers++
			continue
		}
		res.Users++
	}

	g.log.Info("run complete",
		"users", res.Users,
		"skipped", res.SkippedUsers,
		"playlists_written", res.PlaylistsWritten,
		"playlists_created", res.PlaylistsCreated,
	)
	return res, nil
}

// processUser computes and writes one user's playlist. Returned errors
// mean the whole user was skipped (history fetch or playlist write
// failed); candidate-level problems are logged inside.
func (g *Generator) processUser(ctx context.Context, user jellyfin.User, index *LibraryIndex, res *Result) error {
	watched, err := g.fetchHistory(ctx, user)
	if err != nil {
		return err
	}
	g.log.Info("processing user",
		"user", user.Name,
		"watched_movies", watched.count(KindMovie),
		"watched_series", watched.count(KindSeries),
	)

	candidates := g.collectCandidates(ctx, user, watched, index)
	candidates = g.filterCandidates(candidates)

	// Stable: ties keep discovery order, so reruns over unchanged
	// upstream data produce identical playlists.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Rating > candidates[j].Rating
	})
	if len(candidates) > g.cfg.MaxPlaylistItems {
		candidates = candidates[:g.cfg.MaxPlaylistItems]
	}

	if len(candidates) == 0 {
		g.log.Info("no suggestions", "user", user.Name)
		return nil
	}

	itemIDs := make([]string, len(candidates))
	for i, c := range candidates {
		itemIDs[i] = c.Item.ID
		if i < 5 {
			g.log.Debug("suggestion",
				"user", user.Name,
				"title", c.Item.Name,
				"kind", c.Item.Kind,
				"rating", c.Rating,
				"via", c.Via,
			)
		}
	}

	created, err := g.upsertPlaylist(ctx, user, itemIDs)
	if err != nil {
		return fmt.Errorf("write playlist: %w", err)
	}
	res.PlaylistsWritten++
	if created {
		res.PlaylistsCreated++
	}
	g.log.Info("playlist updated", "user", user.Name, "items", len(itemIDs), "created", created)
	return nil
}

// watchedItem is one entry of a user's recent history, tagged with its
// kind and TMDB id when known.
type watchedItem struct {
	item   jellyfin.Item
	kind   MediaKind
	tmdbID int64 // 0 when the server has no TMDB provider id
}

// watchHistory holds the user's recent history plus the exclusion sets
// used to avoid re-suggesting watched content.
type watchHistory struct {
	items   []watchedItem
	libIDs  map[string]bool
	tmdbIDs map[tmdbKey]bool
}

func (h *watchHistory) count(kind MediaKind) int {
	n := 0
	for _, w := range h.items {
		if w.kind == kind {
			n++
		}
	}
	return n
}

func (h *watchHistory) add(item jellyfin.Item, kind MediaKind) {
	w := watchedItem{item: item, kind: kind}
	if id, ok := item.TMDBID(); ok {
		w.tmdbID = id
		h.tmdbIDs[tmdbKey{id, kind}] = true
	}
	h.libIDs[item.ID] = true
	h.items = append(h.items, w)
}

// fetchHistory gathers the user's recent watched movies and series.
// Series history arrives as episodes and is collapsed to unique series
// resolved through the item-info endpoint. An error fetching either
// listing skips the whole user.
func (g *Generator) fetchHistory(ctx context.Context, user jellyfin.User) (*watchHistory, error) {
	history := &watchHistory{
		libIDs:  make(map[string]bool),
		tmdbIDs: make(map[tmdbKey]bool),
	}

	movies, err := g.server.WatchedItems(ctx, user.ID, jellyfin.TypeMovie, g.cfg.MaxWatchedItems)
	if err != nil {
		return nil, fmt.Errorf("fetch watched movies: %w", err)
	}
	for _, m := range movies {
		history.add(m, KindMovie)
	}

	episodes, err := g.server.WatchedItems(ctx, user.ID, jellyfin.TypeEpisode, g.cfg.MaxWatchedItems)
	if err != nil {
		return nil, fmt.Errorf("fetch watched episodes: %w", err)
	}
	seen := make(map[string]bool)
	seriesCount := 0
	for _, ep := range episodes {
		if ep.SeriesID == "" || seen[ep.SeriesID] {
			continue
		}
		seen[ep.SeriesID] = true
		if seriesCount >= g.cfg.MaxWatchedItems {
			break
		}
		info, err := g.server.ItemInfo(ctx, user.ID, ep.SeriesID)
		if err != nil {
			g.log.Warn("series lookup failed",
				"user", user.Name, "series_id", ep.SeriesID, "error", err)
			continue
		}
		history.add(*info, KindSeries)
		seriesCount++
	}

	return history, nil
}

// collectCandidates fans each watched item out to a similar-title
// lookup and resolves the results against the library index. Watched
// and duplicate items are dropped here; threshold filtering happens
// afterwards. Lookup failures skip only the one watched item.
func (g *Generator) collectCandidates(ctx context.Context, user jellyfin.User, watched *watchHistory, index *LibraryIndex) []Candidate {
	var candidates []Candidate
	seen := make(map[string]bool)

	for _, w := range watched.items {
		mediaType := mediaTypeFor(w.kind)

		tmdbID := w.tmdbID
		if tmdbID == 0 {
			title, err := g.source.Search(ctx, w.item.Name, mediaType)
			if err != nil {
				g.log.Warn("title lookup failed",
					"user", user.Name, "title", w.item.Name, "error", err)
				continue
			}
			tmdbID = title.ID
			// The watched item itself must never be suggested back.
			watched.tmdbIDs[tmdbKey{tmdbID, w.kind}] = true
		}

		similar, err := g.source.Similar(ctx, tmdbID, mediaType)
		if err != nil {
			g.log.Warn("similar lookup failed",
				"user", user.Name, "title", w.item.Name, "tmdb_id", tmdbID, "error", err)
			continue
		}
		if len(similar) > g.cfg.MaxSimilarPerItem {
			similar = similar[:g.cfg.MaxSimilarPerItem]
		}

		for _, s := range similar {
			item, ok := index.ResolveTMDB(s.ID, w.kind)
			if !ok {
				item, ok = index.ResolveTitle(s.DisplayTitle(), w.kind)
			}
			if !ok {
				continue // not in the library
			}
			if watched.libIDs[item.ID] || watched.tmdbIDs[tmdbKey{s.ID, w.kind}] {
				continue
			}
			if seen[item.ID] {
				continue
			}
			seen[item.ID] = true
			candidates = append(candidates, Candidate{
				Item:   item,
				Rating: s.VoteAverage,
				Votes:  s.VoteCount,
				Via:    w.item.Name,
			})
		}
	}
	return candidates
}

// filterCandidates applies the rating and vote-count floors.
func (g *Generator) filterCandidates(candidates []Candidate) []Candidate {
	kept := candidates[:0]
	for _, c := range candidates {
		if c.Rating < g.cfg.MinRating || c.Votes < g.cfg.MinVotes {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// upsertPlaylist writes the ordered item list as the user's playlist:
// wholesale replacement when a playlist with the configured name
// exists, creation otherwise.
func (g *Generator) upsertPlaylist(ctx context.Context, user jellyfin.User, itemIDs []string) (created bool, err error) {
	playlists, err := g.server.Playlists(ctx, user.ID)
	if err != nil {
		return false, err
	}
	for _, pl := range playlists {
		if pl.Name == g.cfg.PlaylistName {
			return false, g.server.ReplacePlaylistItems(ctx, pl.ID, itemIDs)
		}
	}
	_, err = g.server.CreatePlaylist(ctx, user.ID, g.cfg.PlaylistName, itemIDs)
	return true, err
}

func mediaTypeFor(kind MediaKind) tmdb.MediaType {
	if kind == KindSeries {
		return tmdb.MediaTypeTV
	}
	return tmdb.MediaTypeMovie
}
