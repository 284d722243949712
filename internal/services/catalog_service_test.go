package services

import (
	"context"
	"errors"
	"testing"

	"streaming-catalog/internal/models"
)

func TestCatalogServicePlayback(t *testing.T) {
	movies := &fakeMovieRepo{movies: map[uint]*models.Movie{
		1: {Pelicula: models.Pelicula{ID: 1, URLVideo: "peliculas/roma.mp4"}},
	}}
	videos := &fakeVideoRepo{episodes: map[uint]*models.Episode{
		3: {Episodio: models.Episodio{ID: 3, URLVideo: "https://cdn.example.com/s1e1.mp4"}},
	}}
	svc := NewCatalogService(movies, videos, nil, nil, newTestLogger())
	ctx := context.Background()

	t.Run("movie without media service", func(t *testing.T) {
		playback, err := svc.MoviePlayback(ctx, 1)
		assertNoError(t, err)
		if playback == nil || playback.URL != "peliculas/roma.mp4" {
			t.Fatalf("unexpected playback %+v", playback)
		}
	})

	t.Run("movie with media service", func(t *testing.T) {
		withMedia := NewCatalogService(movies, videos, nil, nil, newTestLogger())
		withMedia.(*catalogService).SetMediaService(newTestMediaService(t))

		playback, err := withMedia.MoviePlayback(ctx, 1)
		assertNoError(t, err)
		if playback == nil || playback.ExpiresIn == 0 {
			t.Fatalf("expected a presigned playback, got %+v", playback)
		}
	})

	t.Run("missing movie", func(t *testing.T) {
		playback, err := svc.MoviePlayback(ctx, 9)
		assertNoError(t, err)
		if playback != nil {
			t.Fatalf("expected nil, got %+v", playback)
		}
	})

	t.Run("episode", func(t *testing.T) {
		playback, err := svc.EpisodePlayback(ctx, 3)
		assertNoError(t, err)
		if playback == nil || playback.URL != "https://cdn.example.com/s1e1.mp4" {
			t.Fatalf("unexpected playback %+v", playback)
		}

		missing, err := svc.EpisodePlayback(ctx, 4)
		assertNoError(t, err)
		if missing != nil {
			t.Fatalf("expected nil, got %+v", missing)
		}
	})

	t.Run("store failure propagates", func(t *testing.T) {
		failing := NewCatalogService(&fakeMovieRepo{err: errStore}, &fakeVideoRepo{err: errStore}, nil, nil, newTestLogger())
		if _, err := failing.MoviePlayback(ctx, 1); !errors.Is(err, errStore) {
			t.Errorf("expected store error, got %v", err)
		}
		if _, err := failing.ListMovies(ctx); !errors.Is(err, errStore) {
			t.Errorf("expected store error, got %v", err)
		}
		if _, err := failing.EpisodePlayback(ctx, 1); !errors.Is(err, errStore) {
			t.Errorf("expected store error, got %v", err)
		}
	})
}
