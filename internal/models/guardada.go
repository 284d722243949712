package models

// Guardada is a bookmark of a content id by an account. The content type is
// not stored.
type Guardada struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	IDCuenta    uint `gorm:"column:id_cuenta;not null;index" json:"id_cuenta"`
	IDContenido uint `gorm:"column:id_contenido;not null" json:"id_contenido"`
}

func (Guardada) TableName() string {
	return "guardadas"
}
