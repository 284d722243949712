package models

import "time"

type Serie struct {
	ID          uint   `gorm:"primaryKey" json:"id" example:"3"`
	Nombre      string `gorm:"column:nombre;not null" json:"nombre" example:"Narcos"`
	Descripcion string `gorm:"column:descripcion;type:text" json:"descripcion"`
}

func (Serie) TableName() string {
	return "series"
}

type Temporada struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	SerieID uint   `gorm:"column:serie_id;not null;index" json:"-"`
	Numero  int    `gorm:"column:numero;not null" json:"numero" example:"1"`
	Nombre  string `gorm:"column:nombre" json:"nombre"`
}

func (Temporada) TableName() string {
	return "temporadas"
}

type Episodio struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	TemporadaID    uint       `gorm:"column:temporada_id;not null;index" json:"temporada_id"`
	NumeroEpisodio int        `gorm:"column:numero_episodio;not null" json:"numero_episodio"`
	Nombre         string     `gorm:"column:nombre;not null" json:"nombre"`
	Sinopsis       string     `gorm:"column:sinopsis;type:text" json:"sinopsis"`
	URLVideo       string     `gorm:"column:url_video" json:"url_video"`
	URLImagen      string     `gorm:"column:url_imagen" json:"url_imagen"`
	FechaSubida    *time.Time `gorm:"column:fecha_subida" json:"fecha_subida"`
}

func (Episodio) TableName() string {
	return "episodios"
}

// Episode is an Episodio with its parent series and category names.
type Episode struct {
	Episodio
	SerieID         uint    `json:"serie_id"`
	NombreSerie     string  `json:"nombre_serie"`
	NombreCategoria *string `json:"nombre_categoria"`
}

// SeriesEpisodes is one group of the series feed.
type SeriesEpisodes struct {
	Title string    `json:"title" example:"Narcos"`
	Data  []Episode `json:"data"`
}

// SeriesEpisode is an episode row of the series detail, tagged with the
// number of the season it belongs to.
type SeriesEpisode struct {
	ID              uint       `json:"id"`
	Nombre          string     `json:"nombre"`
	URLVideo        string     `json:"url_video"`
	URLImagen       string     `json:"url_imagen"`
	Sinopsis        string     `json:"sinopsis"`
	FechaSubida     *time.Time `json:"fecha_subida"`
	TemporadaNumero int        `json:"temporada_numero" example:"1"`
}

type SeriesDetails struct {
	ID          uint            `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Temporadas  []Temporada     `json:"temporadas"`
	Episodios   []SeriesEpisode `json:"episodios"`
}

type SeriesSummary struct {
	ID            uint   `json:"id"`
	Nombre        string `json:"nombre"`
	Descripcion   string `json:"descripcion"`
	NumTemporadas int64  `json:"num_temporadas"`
	NumEpisodios  int64  `json:"num_episodios"`
}
