package suggest

import (
	"github.com/hbollon/go-edlib"

	"github.com/jessedye/jellyfin-suggested/internal/jellyfin"
)

// MediaKind distinguishes movies from series throughout the pipeline.
type MediaKind string

const (
	KindMovie  MediaKind = "movie"
	KindSeries MediaKind = "series"
)

// fuzzyMatchThreshold is the minimum Jaro-Winkler similarity for a
// title-only fallback match. High on purpose: a wrong library match
// puts the wrong item in someone's playlist.
const fuzzyMatchThreshold = 0.95

// LibraryItem is one entry of the library snapshot.
type LibraryItem struct {
	ID     string // Jellyfin item id
	Name   string
	Kind   MediaKind
	TMDBID int64 // 0 when the library has no TMDB provider id
}

type tmdbKey struct {
	id   int64
	kind MediaKind
}

type titleKey struct {
	title string // normalized
	kind  MediaKind
}

type titleEntry struct {
	normalized string
	item       LibraryItem
}

// LibraryIndex is a read-only snapshot of the library, queryable by
// TMDB id or by normalized title. Built once per run.
type LibraryIndex struct {
	byTMDB  map[tmdbKey]LibraryItem
	byTitle map[titleKey]LibraryItem
	titles  map[MediaKind][]titleEntry
}

// NewLibraryIndex builds an index from the movie and series library
// listings. Items without a TMDB provider id are still resolvable by
// title.
func NewLibraryIndex(movies, series []jellyfin.Item) *LibraryIndex {
	ix := &LibraryIndex{
		byTMDB:  make(map[tmdbKey]LibraryItem),
		byTitle: make(map[titleKey]LibraryItem),
		titles:  make(map[MediaKind][]titleEntry),
	}
	for _, it := range movies {
		ix.add(it, KindMovie)
	}
	for _, it := range series {
		ix.add(it, KindSeries)
	}
	return ix
}

func (ix *LibraryIndex) add(src jellyfin.Item, kind MediaKind) {
	item := LibraryItem{ID: src.ID, Name: src.Name, Kind: kind}
	if id, ok := src.TMDBID(); ok {
		item.TMDBID = id
		ix.byTMDB[tmdbKey{id, kind}] = item
	}

	normalized := NormalizeTitle(src.Name)
	if normalized == "" {
		return
	}
	key := titleKey{normalized, kind}
	if _, exists := ix.byTitle[key]; !exists {
		ix.byTitle[key] = item
		ix.titles[kind] = append(ix.titles[kind], titleEntry{normalized, item})
	}
}

// ResolveTMDB looks an item up by TMDB id.
func (ix *LibraryIndex) ResolveTMDB(id int64, kind MediaKind) (LibraryItem, bool) {
	item, ok := ix.byTMDB[tmdbKey{id, kind}]
	return item, ok
}

// ResolveTitle looks an item up by title, exact normalized match
// first, then a Jaro-Winkler scan over same-kind titles. Returns false
// when nothing clears the fuzzy threshold.
func (ix *LibraryIndex) ResolveTitle(title string, kind MediaKind) (LibraryItem, bool) {
	normalized := NormalizeTitle(title)
	if normalized == "" {
		return LibraryItem{}, false
	}
	if item, ok := ix.byTitle[titleKey{normalized, kind}]; ok {
		return item, true
	}

	var best LibraryItem
	bestScore := 0.0
	for _, entry := range ix.titles[kind] {
		score := float64(edlib.JaroWinklerSimilarity(normalized, entry.normalized))
		if score > bestScore {
			bestScore = score
			best = entry.item
		}
	}
	if bestScore >= fuzzyMatchThreshold {
		return best, true
	}
	return LibraryItem{}, false
}
