package model

import (
	"time"

	"github.com/google/uuid"
)

// Persona represents any external party: clients and suppliers, distinguished
// by CategoriaPersona. Once an order references a persona its identity is
// immutable — deactivation flips the estado, rows are never deleted.
type Persona struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre          string    `gorm:"index;not null"`
	ApellidoPaterno *string
	ApellidoMaterno *string
	RFC             *string `gorm:"column:rfc"`
	Telefono        *string
	Email           *string
	Direccion       *string
	CategoriaID     uuid.UUID `gorm:"type:uuid;not null;index"`
	EstadoID        uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Categoria *CategoriaPersona `gorm:"foreignKey:CategoriaID"`
	Estado    *Estado           `gorm:"foreignKey:EstadoID"`
}

func (Persona) TableName() string { return "personas" }
