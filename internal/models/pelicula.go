package models

import "time"

const (
	ContentTypeMovie   = "pelicula"
	ContentTypeEpisode = "episodio"
)

type Pelicula struct {
	ID          uint       `gorm:"primaryKey" json:"id" example:"1"`
	Nombre      string     `gorm:"column:nombre;not null" json:"nombre" example:"Roma"`
	Sinopsis    string     `gorm:"column:sinopsis;type:text" json:"sinopsis"`
	URLVideo    string     `gorm:"column:url_video" json:"url_video" example:"peliculas/roma.mp4"`
	URLImagen   string     `gorm:"column:url_imagen" json:"url_imagen"`
	FechaSubida *time.Time `gorm:"column:fecha_subida" json:"fecha_subida"`
}

func (Pelicula) TableName() string {
	return "peliculas"
}

// Movie is a Pelicula with its category names joined by ", ".
type Movie struct {
	Pelicula
	NombreCategoria *string `json:"nombre_categoria" example:"Drama, Clásicos"`
}

// Video is one entry of the mixed movie/episode feed. Tipo tells the two apart;
// episode-only fields are omitted for movies.
type Video struct {
	ID              uint       `json:"id"`
	Tipo            string     `json:"tipo" example:"pelicula"`
	Nombre          string     `json:"nombre"`
	Sinopsis        string     `json:"sinopsis"`
	URLVideo        string     `json:"url_video"`
	URLImagen       string     `json:"url_imagen"`
	FechaSubida     *time.Time `json:"fecha_subida"`
	TemporadaID     *uint      `json:"temporada_id,omitempty"`
	NumeroEpisodio  *int       `json:"numero_episodio,omitempty"`
	SerieID         *uint      `json:"serie_id,omitempty"`
	NombreSerie     *string    `json:"nombre_serie,omitempty"`
	NombreCategoria *string    `json:"nombre_categoria"`
}

func VideoFromMovie(m Movie) Video {
	return Video{
		ID:              m.ID,
		Tipo:            ContentTypeMovie,
		Nombre:          m.Nombre,
		Sinopsis:        m.Sinopsis,
		URLVideo:        m.URLVideo,
		URLImagen:       m.URLImagen,
		FechaSubida:     m.FechaSubida,
		NombreCategoria: m.NombreCategoria,
	}
}

func VideoFromEpisode(e Episode) Video {
	serieID := e.SerieID
	nombreSerie := e.NombreSerie
	temporadaID := e.TemporadaID
	numero := e.NumeroEpisodio
	return Video{
		ID:              e.ID,
		Tipo:            ContentTypeEpisode,
		Nombre:          e.Nombre,
		Sinopsis:        e.Sinopsis,
		URLVideo:        e.URLVideo,
		URLImagen:       e.URLImagen,
		FechaSubida:     e.FechaSubida,
		TemporadaID:     &temporadaID,
		NumeroEpisodio:  &numero,
		SerieID:         &serieID,
		NombreSerie:     &nombreSerie,
		NombreCategoria: e.NombreCategoria,
	}
}
