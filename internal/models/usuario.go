package models

// Usuario holds the personal profile of a registered user.
type Usuario struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	PrimerNombre    string  `gorm:"column:primer_nombre;not null" json:"primer_nombre"`
	SegundoNombre   *string `gorm:"column:segundo_nombre" json:"segundo_nombre"`
	PrimerApellido  string  `gorm:"column:primer_apellido;not null" json:"primer_apellido"`
	SegundoApellido *string `gorm:"column:segundo_apellido" json:"segundo_apellido"`
	Email           string  `gorm:"column:email;not null" json:"email"`
}

func (Usuario) TableName() string {
	return "usuario"
}

// Cuenta is the login identity of a Usuario. Its ID is the identifier exposed
// to clients as accountId.
type Cuenta struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	UsuarioID    uint   `gorm:"column:usuario_id;not null;index" json:"usuario_id"`
	Username     string `gorm:"column:username;not null;uniqueIndex;size:100" json:"username"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
}

func (Cuenta) TableName() string {
	return "cuenta"
}

// UserProfile is a Usuario merged with the username of its Cuenta.
type UserProfile struct {
	ID              uint    `json:"id" example:"7"`
	PrimerNombre    string  `json:"primer_nombre" example:"Ana"`
	SegundoNombre   *string `json:"segundo_nombre"`
	PrimerApellido  string  `json:"primer_apellido" example:"Pérez"`
	SegundoApellido *string `json:"segundo_apellido"`
	Email           string  `json:"email" example:"ana@example.com"`
	Username        string  `json:"username" example:"ana"`
}

// ProfileUpdate carries the editable profile fields. Nil fields keep their
// stored value.
type ProfileUpdate struct {
	PrimerNombre    *string
	SegundoNombre   *string
	PrimerApellido  *string
	SegundoApellido *string
	Email           *string
	Username        *string
}

// Identity is the result of a successful credential check.
type Identity struct {
	AccountID uint `json:"accountId"`
	UsuarioID uint `json:"usuarioId"`
}
