package models

type Categoria struct {
	ID     uint   `gorm:"primaryKey" json:"id" example:"2"`
	Nombre string `gorm:"column:nombre;not null" json:"nombre" example:"Drama"`
}

func (Categoria) TableName() string {
	return "categorias"
}

// ContenidoCategoria links a category to a movie or an episode. TipoContenido
// tells which table ContenidoID refers to.
type ContenidoCategoria struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ContenidoID   uint   `gorm:"column:contenido_id;not null;index:idx_contenido" json:"contenido_id"`
	TipoContenido string `gorm:"column:tipo_contenido;not null;size:20;index:idx_contenido" json:"tipo_contenido"`
	CategoriaID   uint   `gorm:"column:categoria_id;not null;index" json:"categoria_id"`
}

func (ContenidoCategoria) TableName() string {
	return "contenido_categoria"
}
