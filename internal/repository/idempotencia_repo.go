package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/model"
)

// ErrClaveRepetida signals a replayed idempotency key.
var ErrClaveRepetida = errors.New("clave de idempotencia repetida")

type IdempotenciaRepository interface {
	// ReservarTx inserts the key inside the caller's transaction. A unique
	// violation (the key was already used for this operation) comes back as
	// ErrClaveRepetida; the caller maps it to a conflict. Because the insert
	// shares the business transaction, a rollback releases the key.
	ReservarTx(ctx context.Context, tx *gorm.DB, clave, operacion string) error
}

type idempotenciaRepo struct{ db *gorm.DB }

func NewIdempotenciaRepository(db *gorm.DB) IdempotenciaRepository { return &idempotenciaRepo{db: db} }

func (r *idempotenciaRepo) ReservarTx(ctx context.Context, tx *gorm.DB, clave, operacion string) error {
	err := tx.WithContext(ctx).Create(&model.ClaveIdempotencia{
		Clave:     clave,
		Operacion: operacion,
	}).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrClaveRepetida
	}
	return err
}
