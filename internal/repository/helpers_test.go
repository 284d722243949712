package repository

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"streaming-catalog/internal/config"
	"streaming-catalog/internal/database"
	"streaming-catalog/internal/models"

	"gorm.io/driver/sqlite"
)

// newTestDB opens a migrated sqlite database in the test's temp dir.
func newTestDB(t *testing.T) *database.Database {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.db")
	db, err := database.Open(sqlite.Open(path), config.DatabaseConfig{
		MaxOpenConns: 1,
		QueryTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	if err := database.AutoMigrate(db.DB); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// seedCatalog inserts three movies, two series and their categories.
//
// Narcos has season 2 inserted before season 1 and episodes out of order so
// ordering is observable.
func seedCatalog(t *testing.T, db *database.Database) {
	t.Helper()

	rows := []interface{}{
		&[]models.Categoria{
			{ID: 1, Nombre: "Drama"},
			{ID: 2, Nombre: "Comedia"},
			{ID: 3, Nombre: "Documental"},
		},
		&[]models.Pelicula{
			{ID: 1, Nombre: "Roma", URLVideo: "peliculas/roma.mp4"},
			{ID: 2, Nombre: "Coco", URLVideo: "https://cdn.example.com/coco.mp4"},
			{ID: 3, Nombre: "Amores perros"},
		},
		&[]models.Serie{
			{ID: 1, Nombre: "Narcos", Descripcion: "Carteles"},
			{ID: 2, Nombre: "Dark", Descripcion: "Viajes en el tiempo"},
		},
		&[]models.Temporada{
			{ID: 1, SerieID: 1, Numero: 2, Nombre: "Temporada 2"},
			{ID: 2, SerieID: 1, Numero: 1, Nombre: "Temporada 1"},
			{ID: 3, SerieID: 2, Numero: 1, Nombre: "Temporada 1"},
		},
		&[]models.Episodio{
			{ID: 1, TemporadaID: 1, NumeroEpisodio: 1, Nombre: "Narcos S2E1"},
			{ID: 2, TemporadaID: 2, NumeroEpisodio: 2, Nombre: "Narcos S1E2"},
			{ID: 3, TemporadaID: 2, NumeroEpisodio: 1, Nombre: "Narcos S1E1", URLVideo: "series/narcos/s1e1.mp4"},
			{ID: 4, TemporadaID: 3, NumeroEpisodio: 1, Nombre: "Dark S1E1"},
		},
		&[]models.ContenidoCategoria{
			{ContenidoID: 1, TipoContenido: models.ContentTypeMovie, CategoriaID: 1},
			{ContenidoID: 1, TipoContenido: models.ContentTypeMovie, CategoriaID: 2},
			{ContenidoID: 2, TipoContenido: models.ContentTypeMovie, CategoriaID: 2},
			{ContenidoID: 1, TipoContenido: models.ContentTypeEpisode, CategoriaID: 1},
			{ContenidoID: 3, TipoContenido: models.ContentTypeEpisode, CategoriaID: 2},
		},
	}

	for _, r := range rows {
		if err := db.Create(r).Error; err != nil {
			t.Fatalf("failed to seed %T: %v", r, err)
		}
	}
}

func countRows(t *testing.T, db *database.Database, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("failed to count %T: %v", model, err)
	}
	return n
}

func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertEqual(t *testing.T, expected, actual interface{}) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Fatalf("expected %v, got %v", expected, actual)
	}
}

func strPtr(s string) *string {
	return &s
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
