package repository

import (
	"context"
	"testing"

	"streaming-catalog/internal/models"
)

func TestMovieRepository(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	repo := NewMovieRepository(db)
	ctx := context.Background()

	t.Run("FindAll joins category names", func(t *testing.T) {
		movies, err := repo.FindAll(ctx)
		assertNoError(t, err)
		assertEqual(t, 3, len(movies))

		want := map[uint]string{1: "Drama, Comedia", 2: "Comedia", 3: "<nil>"}
		for _, m := range movies {
			if got := deref(m.NombreCategoria); got != want[m.ID] {
				t.Errorf("movie %d: expected categories %q, got %q", m.ID, want[m.ID], got)
			}
		}
	})

	t.Run("FindByID", func(t *testing.T) {
		movie, err := repo.FindByID(ctx, 1)
		assertNoError(t, err)
		if movie == nil {
			t.Fatal("expected movie 1")
		}
		assertEqual(t, "Roma", movie.Nombre)
		assertEqual(t, "Drama, Comedia", deref(movie.NombreCategoria))
	})

	t.Run("FindByID missing", func(t *testing.T) {
		movie, err := repo.FindByID(ctx, 9999)
		assertNoError(t, err)
		if movie != nil {
			t.Fatalf("expected nil, got %+v", movie)
		}
	})
}

func TestVideoRepository(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	repo := NewVideoRepository(db)
	ctx := context.Background()

	t.Run("FindAll lists movies before episodes", func(t *testing.T) {
		videos, err := repo.FindAll(ctx)
		assertNoError(t, err)
		assertEqual(t, 7, len(videos))

		for i, v := range videos {
			want := models.ContentTypeMovie
			if i >= 3 {
				want = models.ContentTypeEpisode
			}
			if v.Tipo != want {
				t.Fatalf("video %d: expected tipo %s, got %s", i, want, v.Tipo)
			}
		}

		first := videos[3]
		assertEqual(t, uint(1), first.ID)
		assertEqual(t, "Narcos", deref(first.NombreSerie))
		assertEqual(t, "Drama", deref(first.NombreCategoria))
		if first.SerieID == nil || *first.SerieID != 1 {
			t.Errorf("expected serie_id 1, got %v", first.SerieID)
		}
	})

	t.Run("FindByCategory uses the content type", func(t *testing.T) {
		videos, err := repo.FindByCategory(ctx, 2)
		assertNoError(t, err)

		var got []string
		for _, v := range videos {
			got = append(got, v.Tipo+":"+v.Nombre)
		}
		assertEqual(t, []string{"pelicula:Roma", "pelicula:Coco", "episodio:Narcos S1E1"}, got)
	})

	t.Run("FindByCategory is a subset of FindAll", func(t *testing.T) {
		all, err := repo.FindAll(ctx)
		assertNoError(t, err)

		index := make(map[string]models.Video, len(all))
		for _, v := range all {
			index[v.Tipo+":"+v.Nombre] = v
		}

		for _, categoryID := range []uint{1, 2, 3, 42} {
			filtered, err := repo.FindByCategory(ctx, categoryID)
			assertNoError(t, err)
			for _, v := range filtered {
				full, ok := index[v.Tipo+":"+v.Nombre]
				if !ok {
					t.Fatalf("category %d returned %s %d missing from the feed", categoryID, v.Tipo, v.ID)
				}
				assertEqual(t, full, v)
			}
		}
	})

	t.Run("FindByCategory without associations", func(t *testing.T) {
		videos, err := repo.FindByCategory(ctx, 3)
		assertNoError(t, err)
		assertEqual(t, 0, len(videos))
	})

	t.Run("FindEpisodeByID", func(t *testing.T) {
		episode, err := repo.FindEpisodeByID(ctx, 3)
		assertNoError(t, err)
		if episode == nil {
			t.Fatal("expected episode 3")
		}
		assertEqual(t, "series/narcos/s1e1.mp4", episode.URLVideo)
		assertEqual(t, "Comedia", deref(episode.NombreCategoria))

		missing, err := repo.FindEpisodeByID(ctx, 99)
		assertNoError(t, err)
		if missing != nil {
			t.Fatalf("expected nil, got %+v", missing)
		}
	})
}

func TestSeriesRepository(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	repo := NewSeriesRepository(db)
	ctx := context.Background()

	t.Run("FindDetails orders seasons and episodes", func(t *testing.T) {
		details, err := repo.FindDetails(ctx, 1)
		assertNoError(t, err)
		if details == nil {
			t.Fatal("expected series 1")
		}
		assertEqual(t, "Narcos", details.Nombre)

		var seasons []int
		for _, s := range details.Temporadas {
			seasons = append(seasons, s.Numero)
		}
		assertEqual(t, []int{1, 2}, seasons)

		var episodes []string
		for _, e := range details.Episodios {
			episodes = append(episodes, e.Nombre)
		}
		assertEqual(t, []string{"Narcos S1E1", "Narcos S1E2", "Narcos S2E1"}, episodes)
		assertEqual(t, 2, details.Episodios[2].TemporadaNumero)
	})

	t.Run("FindDetails missing", func(t *testing.T) {
		details, err := repo.FindDetails(ctx, 77)
		assertNoError(t, err)
		if details != nil {
			t.Fatalf("expected nil, got %+v", details)
		}
	})

	t.Run("FindAllWithEpisodes groups by series", func(t *testing.T) {
		groups, err := repo.FindAllWithEpisodes(ctx)
		assertNoError(t, err)
		assertEqual(t, 2, len(groups))

		counts := make(map[string]int)
		for _, g := range groups {
			counts[g.Title] = len(g.Data)
		}
		assertEqual(t, map[string]int{"Narcos": 3, "Dark": 1}, counts)

		for _, g := range groups {
			for _, e := range g.Data {
				if e.ID == 1 && deref(e.NombreCategoria) != "Drama" {
					t.Errorf("episode 1: expected Drama, got %s", deref(e.NombreCategoria))
				}
			}
		}
	})

	t.Run("FindSummaries counts seasons and episodes", func(t *testing.T) {
		summaries, err := repo.FindSummaries(ctx)
		assertNoError(t, err)
		assertEqual(t, 2, len(summaries))
		assertEqual(t, int64(2), summaries[0].NumTemporadas)
		assertEqual(t, int64(3), summaries[0].NumEpisodios)
		assertEqual(t, int64(1), summaries[1].NumTemporadas)
		assertEqual(t, int64(1), summaries[1].NumEpisodios)
	})
}

func TestCategoryRepository(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)

	categories, err := NewCategoryRepository(db).FindAll(context.Background())
	assertNoError(t, err)
	assertEqual(t, 3, len(categories))
}

func TestCategoryRepositoryEmpty(t *testing.T) {
	db := newTestDB(t)

	categories, err := NewCategoryRepository(db).FindAll(context.Background())
	assertNoError(t, err)
	if categories == nil {
		t.Fatal("expected an empty slice, got nil")
	}
}
