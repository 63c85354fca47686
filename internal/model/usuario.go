package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario stores system users with role-based access.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre       string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Telefono     *string
	RolID        uuid.UUID `gorm:"type:uuid;not null"`
	EstadoID     uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Rol    *Rol    `gorm:"foreignKey:RolID"`
	Estado *Estado `gorm:"foreignKey:EstadoID"`
}
