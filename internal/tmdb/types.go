// Package tmdb provides a client for The Movie Database API.
package tmdb

// MediaType selects the movie or TV endpoint family.
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

// Title represents a TMDB movie or TV entry as returned by search and
// similar endpoints. Movies carry "title", TV entries carry "name".
type Title struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Name        string  `json:"name"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
}

// DisplayTitle returns the movie title or TV name, whichever is set.
func (t *Title) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	return t.Name
}

// resultsPage is the paged list envelope TMDB wraps results in.
type resultsPage struct {
	Page    int     `json:"page"`
	Results []Title `json:"results"`
}
