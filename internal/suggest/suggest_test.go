package suggest_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jessedye/jellyfin-suggested/internal/jellyfin"
	"github.com/jessedye/jellyfin-suggested/internal/suggest"
	"github.com/jessedye/jellyfin-suggested/internal/suggest/mocks"
	"github.com/jessedye/jellyfin-suggested/internal/tmdb"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() suggest.Config {
	return suggest.Config{
		PlaylistName:      "Suggested For You",
		MaxWatchedItems:   20,
		MaxSimilarPerItem: 5,
		MaxPlaylistItems:  50,
		MinRating:         6.0,
		MinVotes:          50,
	}
}

func movieItem(id, name, tmdbID string) jellyfin.Item {
	item := jellyfin.Item{ID: id, Name: name, Type: jellyfin.TypeMovie}
	if tmdbID != "" {
		item.ProviderIDs = map[string]string{"Tmdb": tmdbID}
	}
	return item
}

// expectLibrary wires the two library listings Run always performs.
func expectLibrary(server *mocks.MockMediaServer, movies, series []jellyfin.Item) {
	server.EXPECT().LibraryItems(gomock.Any(), jellyfin.TypeMovie).Return(movies, nil)
	server.EXPECT().LibraryItems(gomock.Any(), jellyfin.TypeSeries).Return(series, nil)
}

func TestRun_ThresholdFiltering(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mocks.NewMockMediaServer(ctrl)
	source := mocks.NewMockMetadataSource(ctrl)

	library := []jellyfin.Item{
		movieItem("L200", "Good Pick", "200"),
		movieItem("L201", "Low Rated", "201"),
		movieItem("L202", "Few Votes", "202"),
	}
	expectLibrary(server, library, nil)
	server.EXPECT().Users(gomock.Any()).Return([]jellyfin.User{{ID: "u1", Name: "alice"}}, nil)
	server.EXPECT().WatchedItems(gomock.Any(), "u1", jellyfin.TypeMovie, 20).
		Return([]jellyfin.Item{movieItem("LA", "Movie A", "100")}, nil)
	server.EXPECT().WatchedItems(gomock.Any(), "u1", jellyfin.TypeEpisode, 20).Return(nil, nil)

	source.EXPECT().Similar(gomock.Any(), int64(100), tmdb.MediaTypeMovie).Return([]tmdb.Title{
		{ID: 200, Title: "Good Pick", VoteAverage: 7.5, VoteCount: 100},
		{ID: 201, Title: "Low Rated", VoteAverage: 5.0, VoteCount: 100},
		{ID: 202, Title: "Few Votes", VoteAverage: 8.0, VoteCount: 10},
	}, nil)

	server.EXPECT().Playlists(gomock.Any(), "u1").Return(nil, nil)
	server.EXPECT().CreatePlaylist(gomock.Any(), "u1", "Suggested For You", []string{"L200"}).
		Return("pl1", nil)

	gen := suggest.NewGenerator(server, source, testConfig(), testLogger())
	res, err := gen.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Users)
	assert.Equal(t, 1, res.PlaylistsWritten)
	assert.Equal(t, 1, res.PlaylistsCreated)
}

func TestRun_DeduplicatesAcrossWatchedItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mocks.NewMockMediaServer(ctrl)
	source := mocks.NewMockMetadataSource(ctrl)

	expectLibrary(server, []jellyfin.Item{movieItem("L300", "Shared Pick", "300")}, nil)
	server.EXPECT().Users(gomock.Any()).Return([]jellyfin.User{{ID: "u1", Name: "alice"}}, nil)
	server.EXPECT().WatchedItems(gomock.Any(), "u1", jellyfin.TypeMovie, 20).
		Return([]jellyfin.Item{
			movieItem("LA", "Movie A", "100"),
			movieItem("LB", "Movie B", "101"),
		}, nil)
	server.EXPECT().WatchedItems(gomock.Any(), "u1", jellyfin.TypeEpisode, 20).Return(nil, nil)

	shared := []tmdb.Title{{ID: 300, Title: "Shared Pick", VoteAverage: 8.0, VoteCount: 500}}
	source.EXPECT().Similar(gomock.Any(), int64(100), tmdb.MediaTypeMovie).Return(shared, nil)
	source.EXPECT().Similar(gomock.Any(), int64(101), tmdb.MediaTypeMovie).Return(shared, nil)

	server.EXPECT().Playlists(gomock.Any(), "u1").Return(nil, nil)
	server.EXPECT().CreatePlaylist(gomock.Any(), "u1", "Suggested For You", []string{"L300"}).
		Return("pl1", nil)

	gen := suggest.NewGenerator(server, source, testConfig(), testLogger())
	_, err := gen.Run(context.Background())
	require.NoError(t, err)
}

func TestRun_ExcludesItemsOutsideLibrary(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mocks.NewMockMediaServer(ctrl)
	source := mocks.NewMockMetadataSource(ctrl)

	expectLibrary(server, []jellyfin.Item{movieItem("L200", "In Library", "200")}, nil)
	server.EXPECT().Users(gomock.Any()).Return([]jellyfin.User{{ID: "u1", Name: "alice"}}, nil)
	server.EXPECT().WatchedItems(gomock.Any(), "u1", jellyfin.TypeMovie, 20).
		Return([]jellyfin.Item{movieItem("LA", "Movie A", "100")}, nil)
	server.EXPECT().WatchedItems(gomock.Any(), "u1", jellyfin.TypeEpisode, 20).Return(nil, nil)

	source.EXPECT().Similar(gomock.Any(), int64(100), tmdb.MediaTypeMovie).Return([]tmdb.Title{
		{ID: 200, Title: "In Library", VoteAverage: 7.0, VoteCount: 500},
		{ID: 999, Title: "Not In Library", VoteAverage: 9.9, VoteCount: 9000},
	}, nil)

	server.EXPECT().Playlists(gomock.Any(), "u1").Return(nil, nil)
	server.EXPECT().CreatePlaylist(gomock.Any(), "u1", "Suggested For You", []string{"L200"}).
		Return("pl1", nil)

	gen := suggest.NewGenerator(server, source, testConfig(), testLogger())
	_, err := gen.Run(context.Background())
	require.NoError(t, err)
}

func TestRun_ExcludesWatchedItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mocks.NewMockMediaServer(ctrl)
	source := mocks.NewMockMetadataSource(ctrl)

	watchedA := movieItem("LA", "Movie A", "100")
	watchedB := movieItem("LB", "Movie B", "101")
	expectLibrary(server, []jellyfin.Item{watchedA, watchedB, movieItem("L200", "Fresh", "200")}, nil)
	server.EXPECT().Users(gomock.Any()).Return([]jellyfin.User{{ID: "u1", Name: "alice"}}, nil)
	server.EXPECT().WatchedItems(gomock.Any(), "u1", jellyfin.TypeMovie, 20).
		Return([]jellyfin.Item{watchedA, watchedB}, nil)
	server.EXPECT().WatchedItems(gomock.Any(), "u1", jellyfin.TypeEpisode, 20).Return(nil, nil)

	// Movie B comes back as similar to Movie A: already watched, drop it.
	source.EXPECT().Similar(gomock.Any(), int64(100), tmdb.MediaTypeMovie).Return([]tmdb.Title{
		{ID: 101, Title: "Movie B", VoteAverage: 8.5, VoteCount: 900},
		{ID: 200, Title: "Fresh", VoteAverage: 7.0, VoteCount: 500},
	}, nil)
	source.EXPECT().Similar(gomock.Any(), int64(101), tmdb.MediaTypeMovie).Return(nil, nil)

	server.EXPECT().Playlists(gomock.Any(), "u1").Return(nil, nil)
	server.EXPECT().CreatePlaylist(gomock.Any(), "u1", "Suggested For You", []string{"L200"}).
		Return("pl1", nil)

	gen := suggest.NewGenerator(server, source, testConfig(), testLogger())
	_, err := gen.Run(context.Background())
	require.NoError(t, err)
}

func TestRun_SortedByRatingAndTruncated(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mocks.NewMockMediaServer(ctrl)
	source := mocks.NewMockMetadataSource(ctrl)

	library := []jellyfin.Item{
		movieItem("L1", "First", "201"),
		movieItem("L2", "Second", "202"),
		movieItem("L3", "Third", "203"),
		movieItem("L4", "Fourth", "204"),
	}
	expectLibrary(server, library, nil)
	server.EXPECT().Users(gomock.Any()).Return([]jellyfin.User{{ID: "u1", Name: "alice"}}, nil)
	server.EXPECT().WatchedItems(gomock.Any(), "u1", jellyfin.TypeMovie, 20).
		Return([]jellyfin.Item{movieItem("LA", "Movie A", "100")}, nil)
	server.EXPECT().WatchedItems(gomock.Any(), "u1", jellyfin.TypeEpisode, 20).Return(nil, nil)

	// 202 and 203 tie: discovery order must hold between them.
	source.EXPECT().Similar(gomock.Any(), int64(100), tmdb.MediaTypeMovie).Return([]tmdb.Title{
		{ID: 201, Title: "First", VoteAverage: 6.5, VoteCount: 100},
		{ID: 202, Title: "Second", VoteAverage: 8.0, VoteCount: 100},
		{ID: 203, Title: "Third", VoteAverage: 8.0, VoteCount: 100},
		{ID: 204, Title: "Fourth", VoteAverage: 9.0, VoteCount: 100},
	}, nil)

	cfg := testConfig()
	cfg.MaxPlaylistItems = 3

	server.EXPECT().Playlists(gomock.Any(), "u1").Return(nil, nil)
	server.EXPECT().CreatePlaylist(gomock.Any(), "u1", "Suggested For You", []string{"L4", "L2", "L3"}).
		Return("pl1", nil)

	gen := suggest.NewGenerator(server, source, cfg, testLogger())
	_, err := gen.Run(context.Background())
	require.NoError(t, err)
}

func TestRun_UserFailureIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mocks.NewMockMediaServer(ctrl)
	source := mocks.NewMockMetadataSource(ctrl)

	expectLibrary(server, []jellyfin.Item{movieItem("L200", "Pick", "200")}, nil)
	server.EXPECT().Users(gomock.Any()).Return([]jellyfin.User{
		{ID: "uA", Name: "alice"},
		{ID: "uB", Name: "bob"},
	}, nil)

	// alice succeeds
	server.EXPECT().WatchedItems(gomock.Any(), "uA", jellyfin.TypeMovie, 20).
		Return([]jellyfin.Item{movieItem("LA", "Movie A", "100")}, nil)
	server.EXPECT().WatchedItems(gomock.Any(), "uA", jellyfin.TypeEpisode, 20).Return(nil, nil)
	source.EXPECT().Similar(gomock.Any(), int64(100), tmdb.MediaTypeMovie).Return([]tmdb.Title{
		{ID: 200, Title: "Pick", VoteAverage: 7.0, VoteCount: 500},
	}, nil)
	server.EXPECT().Playlists(gomock.Any(), "uA").Return(nil, nil)
	server.EXPECT().CreatePlaylist(gomock.Any(), "uA", "Suggested For You", []string{"L200"}).
		Return("pl1", nil)

	// bob's history fetch blows up
	server.EXPECT().WatchedItems(gomock.Any(), "uB", jellyfin.TypeMovie, 20).
		Return(nil, errors.New("boom"))

	gen := suggest.NewGenerator(server, source, testConfig(), testLogger())
	res, err := gen.Run(context.Background())
	require.NoError(t, err, "one user's failure must not abort the run")
	assert.Equal(t, 1, res.Users)
	assert.Equal(t, 1, res.SkippedUsers)
	assert.Equal(t, 1, res.PlaylistsWritten)
}

func TestRun_ItemFailureIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mocks.NewMockMediaServer(ctrl)
	source := mocks.NewMockMetadataSource(ctrl)

	expectLibrary(server, []jellyfin.Item{movieItem("L200", "Pick", "200")}, nil)
	server.EXPECT().Users(gomock.Any()).Return([]jellyfin.User{{ID: "u1", Name: "alice"}}, nil)
	server.EXPECT().WatchedItems(gomock.Any(), "u1", jellyfin.TypeMovie, 20).
		Return([]jellyfin.Item{
			movieItem("LA", "Movie A", "100"),
			movieItem("LB", "Movie B", "101"),
		}, nil)
	server.EXPECT().WatchedItems(gomock.Any(), "u1", jellyfin.TypeEpisode, 20).Return(nil, nil)

	source.EXPECT().Similar(gomock.Any(), int64(100), tmdb.MediaTypeMovie).
		Return(nil, errors.New("rate limited"))
	source.EXPECT().Similar(gomock.Any(), int64(101), tmdb.MediaTypeMovie).Return([]tmdb.Title{
		{ID: 200, Title: "Pick", VoteAverage: 7.0, VoteCount: 500},
	}, nil)

	server.EXPECT().Playlists(gomock.Any(), "u1").Return(nil, nil)
	server.EXPECT().CreatePlaylist(gomock.Any(), "u1", "Suggested For You", []string{"L200"}).
		Return("pl1", nil)

	gen := suggest.NewGenerator(server, source, testConfig(), testLogger())
	res, err := gen.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.PlaylistsWritten)
}

func TestRun_ReplacesExistingPlaylist(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mocks.NewMockMediaServer(ctrl)
	source := mocks.NewMockMetadataSource(ctrl)

	expectLibrary(server, []jellyfin.Item{movieItem("L200", "Pick", "200")}, nil)
	server.EXPECT().Users(gomock.Any()).Return([]jellyfin.User{{ID: "u1", Name: "alice"}}, nil)
	server.EXPECT().WatchedItems(gomock.Any(), "u1", jellyfin.TypeMovie, 20).
		Return([]jellyfin.Item{movieItem("LA", "Movie A", "100")}, nil)
	server.EXPECT().WatchedItems(gomock.Any(), "u1", jellyfin.TypeEpisode, 20).Return(nil, nil)
	source.EXPECT().Similar(gomock.Any(), int64(100), tmdb.MediaTypeMovie).Return([]tmdb.Title{
		{ID: 200, Title: "Pick", VoteAverage: 7.0, VoteCount: 500},
	}, nil)

	server.EXPECT().Playlists(gomock.Any(), "u1").Return([]jellyfin.Item{
		{ID: "plOther", Name: "Favorites", Type: jellyfin.TypePlaylist},
		{ID: "pl1", Name: "Suggested For You", Type: jellyfin.TypePlaylist},
	}, nil)
	server.EXPECT().ReplacePlaylistItems(gomock.Any(), "pl1", []string{"L200"}).Return(nil)

	gen := suggest.NewGenerator(server, source, testConfig(), testLogger())
	res, err := gen.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.PlaylistsWritten)
	assert.Zero(t, res.PlaylistsCreated)
}

func TestRun_SearchFallbackForMissingProviderID(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mocks.NewMockMediaServer(ctrl)
	source := mocks.NewMockMetadataSource(ctrl)

	expectLibrary(server, []jellyfin.Item{movieItem("L200", "Pick", "200")}, nil)
	server.EXPECT().Users(gomock.Any()).Return([]jellyfin.User{{ID: "u1", Name: "alice"}}, nil)
	server.EXPECT().WatchedItems(gomock.Any(), "u1", jellyfin.TypeMovie, 20).
		Return([]jellyfin.Item{movieItem("LA", "Unmatched Rip", "")}, nil)
	server.EXPECT().WatchedItems(gomock.Any(), "u1", jellyfin.TypeEpisode, 20).Return(nil, nil)

	source.EXPECT().Search(gomock.Any(), "Unmatched Rip", tmdb.MediaTypeMovie).
		Return(&tmdb.Title{ID: 100, Title: "Unmatched Rip"}, nil)
	source.EXPECT().Similar(gomock.Any(), int64(100), tmdb.MediaTypeMovie).Return([]tmdb.Title{
		{ID: 200, Title: "Pick", VoteAverage: 7.0, VoteCount: 500},
	}, nil)

	server.EXPECT().Playlists(gomock.Any(), "u1").Return(nil, nil)
	server.EXPECT().CreatePlaylist(gomock.Any(), "u1", "Suggested For You", []string{"L200"}).
		Return("pl1", nil)

	gen := suggest.NewGenerator(server, source, testConfig(), testLogger())
	_, err := gen.Run(context.Background())
	require.NoError(t, err)
}

func TestRun_EpisodesCollapseToSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mocks.NewMockMediaServer(ctrl)
	source := mocks.NewMockMetadataSource(ctrl)

	libSeries := []jellyfin.Item{
		{ID: "S200", Name: "Similar Show", Type: jellyfin.TypeSeries, ProviderIDs: map[string]string{"Tmdb": "200"}},
	}
	expectLibrary(server, nil, libSeries)
	server.EXPECT().Users(gomock.Any()).Return([]jellyfin.User{{ID: "u1", Name: "alice"}}, nil)
	server.EXPECT().WatchedItems(gomock.Any(), "u1", jellyfin.TypeMovie, 20).Return(nil, nil)
	server.EXPECT().WatchedItems(gomock.Any(), "u1", jellyfin.TypeEpisode, 20).
		Return([]jellyfin.Item{
			{ID: "e1", Name: "Pilot", Type: jellyfin.TypeEpisode, SeriesID: "s1"},
			{ID: "e2", Name: "Episode 2", Type: jellyfin.TypeEpisode, SeriesID: "s1"},
			{ID: "e3", Name: "Finale", Type: jellyfin.TypeEpisode, SeriesID: "s1"},
		}, nil)

	// One lookup despite three episodes
	server.EXPECT().ItemInfo(gomock.Any(), "u1", "s1").
		Return(&jellyfin.Item{
			ID: "s1", Name: "Watched Show", Type: jellyfin.TypeSeries,
			ProviderIDs: map[string]string{"Tmdb": "100"},
		}, nil)

	source.EXPECT().Similar(gomock.Any(), int64(100), tmdb.MediaTypeTV).Return([]tmdb.Title{
		{ID: 200, Name: "Similar Show", VoteAverage: 8.2, VoteCount: 4000},
	}, nil)

	server.EXPECT().Playlists(gomock.Any(), "u1").Return(nil, nil)
	server.EXPECT().CreatePlaylist(gomock.Any(), "u1", "Suggested For You", []string{"S200"}).
		Return("pl1", nil)

	gen := suggest.NewGenerator(server, source, testConfig(), testLogger())
	_, err := gen.Run(context.Background())
	require.NoError(t, err)
}

func TestRun_NoSuggestionsWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mocks.NewMockMediaServer(ctrl)
	source := mocks.NewMockMetadataSource(ctrl)

	expectLibrary(server, nil, nil)
	server.EXPECT().Users(gomock.Any()).Return([]jellyfin.User{{ID: "u1", Name: "alice"}}, nil)
	server.EXPECT().WatchedItems(gomock.Any(), "u1", jellyfin.TypeMovie, 20).Return(nil, nil)
	server.EXPECT().WatchedItems(gomock.Any(), "u1", jellyfin.TypeEpisode, 20).Return(nil, nil)

	gen := suggest.NewGenerator(server, source, testConfig(), testLogger())
	res, err := gen.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Users)
	assert.Zero(t, res.PlaylistsWritten)
}

func TestRun_FatalWhenUsersUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mocks.NewMockMediaServer(ctrl)
	source := mocks.NewMockMetadataSource(ctrl)

	expectLibrary(server, nil, nil)
	server.EXPECT().Users(gomock.Any()).Return(nil, errors.New("connection refused"))

	gen := suggest.NewGenerator(server, source, testConfig(), testLogger())
	_, err := gen.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list users")
}

func TestRun_FatalWhenLibraryUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mocks.NewMockMediaServer(ctrl)
	source := mocks.NewMockMetadataSource(ctrl)

	server.EXPECT().LibraryItems(gomock.Any(), jellyfin.TypeMovie).
		Return(nil, errors.New("connection refused"))

	gen := suggest.NewGenerator(server, source, testConfig(), testLogger())
	_, err := gen.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "movie library")
}

func TestRun_Idempotent(t *testing.T) {
	run := func() []string {
		ctrl := gomock.NewController(t)
		server := mocks.NewMockMediaServer(ctrl)
		source := mocks.NewMockMetadataSource(ctrl)

		library := []jellyfin.Item{
			movieItem("L1", "First", "201"),
			movieItem("L2", "Second", "202"),
			movieItem("L3", "Third", "203"),
		}
		expectLibrary(server, library, nil)
		server.EXPECT().Users(gomock.Any()).Return([]jellyfin.User{{ID: "u1", Name: "alice"}}, nil)
		server.EXPECT().WatchedItems(gomock.Any(), "u1", jellyfin.TypeMovie, 20).
			Return([]jellyfin.Item{movieItem("LA", "Movie A", "100")}, nil)
		server.EXPECT().WatchedItems(gomock.Any(), "u1", jellyfin.TypeEpisode, 20).Return(nil, nil)
		source.EXPECT().Similar(gomock.Any(), int64(100), tmdb.MediaTypeMovie).Return([]tmdb.Title{
			{ID: 201, Title: "First", VoteAverage: 7.0, VoteCount: 100},
			{ID: 202, Title: "Second", VoteAverage: 7.0, VoteCount: 100},
			{ID: 203, Title: "Third", VoteAverage: 8.0, VoteCount: 100},
		}, nil)

		var written []string
		server.EXPECT().Playlists(gomock.Any(), "u1").Return(nil, nil)
		server.EXPECT().CreatePlaylist(gomock.Any(), "u1", "Suggested For You", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, ids []string) (string, error) {
				written = ids
				return "pl1", nil
			})

		gen := suggest.NewGenerator(server, source, testConfig(), testLogger())
		_, err := gen.Run(context.Background())
		require.NoError(t, err)
		return written
	}

	first := run()
	second := run()
	assert.Equal(t, []string{"L3", "L1", "L2"}, first, "rating order with stable ties")
	assert.Equal(t, first, second, "unchanged inputs must produce identical playlists")
}

func TestRun_PlaylistWriteFailureSkipsUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	server := mocks.NewMockMediaServer(ctrl)
	source := mocks.NewMockMetadataSource(ctrl)

	expectLibrary(server, []jellyfin.Item{movieItem("L200", "Pick", "200")}, nil)
	server.EXPECT().Users(gomock.Any()).Return([]jellyfin.User{{ID: "u1", Name: "alice"}}, nil)
	server.EXPECT().WatchedItems(gomock.Any(), "u1", jellyfin.TypeMovie, 20).
		Return([]jellyfin.Item{movieItem("LA", "Movie A", "100")}, nil)
	server.EXPECT().WatchedItems(gomock.Any(), "u1", jellyfin.TypeEpisode, 20).Return(nil, nil)
	source.EXPECT().Similar(gomock.Any(), int64(100), tmdb.MediaTypeMovie).Return([]tmdb.Title{
		{ID: 200, Title: "Pick", VoteAverage: 7.0, VoteCount: 500},
	}, nil)
	server.EXPECT().Playlists(gomock.Any(), "u1").Return(nil, errors.New("boom"))

	gen := suggest.NewGenerator(server, source, testConfig(), testLogger())
	res, err := gen.Run(context.Background())
	require.NoError(t, err, "a write failure must not abort the run")
	assert.Equal(t, 1, res.SkippedUsers)
	assert.Zero(t, res.PlaylistsWritten)
}
