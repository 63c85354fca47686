package model

import (
	"time"

	"github.com/google/uuid"
)

// ClaveIdempotencia stores processed idempotency keys for finalizar-venta and
// registrar-pago. Neither operation is naturally idempotent, so a client retry
// after a timeout would double-sell or double-charge; the unique index turns
// the replay into a Conflict instead.
type ClaveIdempotencia struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Clave     string    `gorm:"uniqueIndex:idx_clave_operacion;not null"`
	Operacion string    `gorm:"uniqueIndex:idx_clave_operacion;not null"` // "finalizar_venta" | "registrar_pago"
	CreatedAt time.Time
}

func (ClaveIdempotencia) TableName() string { return "claves_idempotencia" }
