package jellyfin

import "strconv"

// Item types recognized by the Items endpoints.
const (
	TypeMovie    = "Movie"
	TypeSeries   = "Series"
	TypeEpisode  = "Episode"
	TypePlaylist = "Playlist"
)

// User is a Jellyfin account.
type User struct {
	ID   string `json:"Id"`
	Name string `json:"Name"`
}

// Item is a library item, episode, or playlist as returned by the
// Items endpoints. ProviderIDs carries external ids keyed by provider
// name ("Tmdb", "Imdb", ...).
type Item struct {
	ID          string            `json:"Id"`
	Name        string            `json:"Name"`
	Type        string            `json:"Type"`
	SeriesID    string            `json:"SeriesId,omitempty"`
	SeriesName  string            `json:"SeriesName,omitempty"`
	ProviderIDs map[string]string `json:"ProviderIds,omitempty"`
}

// TMDBID returns the item's TMDB provider id, if present and numeric.
func (i *Item) TMDBID() (int64, bool) {
	s, ok := i.ProviderIDs["Tmdb"]
	if !ok || s == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// itemsPage is the envelope the Items endpoints wrap results in.
type itemsPage struct {
	Items            []Item `json:"Items"`
	TotalRecordCount int    `json:"TotalRecordCount"`
}

// createPlaylistRequest is the body for POST /Playlists.
type createPlaylistRequest struct {
	Name      string   `json:"Name"`
	UserID    string   `json:"UserId"`
	IDs       []string `json:"Ids"`
	MediaType string   `json:"MediaType"`
}

// createPlaylistResponse is the body returned by POST /Playlists.
type createPlaylistResponse struct {
	ID string `json:"Id"`
}

// updatePlaylistRequest is the body for POST /Playlists/{id}. Sending
// Ids replaces the playlist's item list wholesale.
type updatePlaylistRequest struct {
	IDs []string `json:"Ids"`
}
