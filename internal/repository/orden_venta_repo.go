package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/model"
)

// VentaExportFila is one flattened sale line joined with its snapshots, as the
// analytics export consumes it. CostoID is nil when no cost snapshot predates
// the sale.
type VentaExportFila struct {
	OrdenVentaID uuid.UUID
	FechaOrden   time.Time
	ProductoID   uuid.UUID
	Producto     string
	Categoria    string
	CantidadPz   decimal.Decimal
	CantidadKg   decimal.Decimal
	Precio       decimal.Decimal
	Costo        decimal.NullDecimal
}

type OrdenVentaRepository interface {
	CreateTx(ctx context.Context, tx *gorm.DB, ov *model.OrdenVenta) error
	CreatePagoTx(ctx context.Context, tx *gorm.DB, pago *model.HistorialPagoCliente) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.OrdenVenta, error)
	List(ctx context.Context, desde, hasta time.Time) ([]model.OrdenVenta, error)
	// ExportFilas flattens every sale line with its price snapshot and the
	// cost snapshot in force at sale time, in one joined query.
	ExportFilas(ctx context.Context, desde, hasta time.Time) ([]VentaExportFila, error)
	DB() *gorm.DB
}

type ordenVentaRepo struct{ db *gorm.DB }

func NewOrdenVentaRepository(db *gorm.DB) OrdenVentaRepository { return &ordenVentaRepo{db: db} }

func (r *ordenVentaRepo) DB() *gorm.DB { return r.db }

func (r *ordenVentaRepo) CreateTx(ctx context.Context, tx *gorm.DB, ov *model.OrdenVenta) error {
	return tx.WithContext(ctx).Create(ov).Error
}

func (r *ordenVentaRepo) CreatePagoTx(ctx context.Context, tx *gorm.DB, pago *model.HistorialPagoCliente) error {
	return tx.WithContext(ctx).Create(pago).Error
}

func (r *ordenVentaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.OrdenVenta, error) {
	var ov model.OrdenVenta
	err := r.db.WithContext(ctx).
		Preload("Cliente").Preload("Usuario").Preload("MetodoPago").
		Preload("Detalles.Producto").Preload("Detalles.HistorialPrecio").
		First(&ov, "id = ?", id).Error
	return &ov, err
}

func (r *ordenVentaRepo) List(ctx context.Context, desde, hasta time.Time) ([]model.OrdenVenta, error) {
	var ventas []model.OrdenVenta
	err := r.db.WithContext(ctx).
		Preload("Cliente").Preload("MetodoPago").
		Preload("Detalles.Producto").Preload("Detalles.HistorialPrecio").
		Where("fecha_orden >= ? AND fecha_orden < ?", desde, hasta).
		Order("fecha_orden DESC").
		Find(&ventas).Error
	return ventas, err
}

func (r *ordenVentaRepo) ExportFilas(ctx context.Context, desde, hasta time.Time) ([]VentaExportFila, error) {
	var filas []VentaExportFila
	// LATERAL resolves the cost snapshot vigente at sale time per line;
	// lines older than the first cost snapshot come back with costo NULL.
	err := r.db.WithContext(ctx).Raw(`
		SELECT ov.id              AS orden_venta_id,
		       ov.fecha_orden     AS fecha_orden,
		       p.id               AS producto_id,
		       p.nombre           AS producto,
		       cp.nombre          AS categoria,
		       d.cantidad_pz      AS cantidad_pz,
		       d.cantidad_kg      AS cantidad_kg,
		       hp.precio          AS precio,
		       hc.costo           AS costo
		FROM detalles_ordenes_de_ventas d
		JOIN ordenes_de_ventas ov ON ov.id = d.orden_venta_id
		JOIN productos p          ON p.id = d.producto_id
		JOIN categorias_productos cp ON cp.id = p.categoria_id
		JOIN historial_precios hp ON hp.id = d.historial_precio_id
		LEFT JOIN LATERAL (
			SELECT costo FROM historial_costos
			WHERE producto_id = p.id AND fecha_de_registro <= ov.fecha_orden
			ORDER BY fecha_de_registro DESC
			LIMIT 1
		) hc ON true
		WHERE ov.fecha_orden >= ? AND ov.fecha_orden < ?
		ORDER BY ov.fecha_orden ASC`, desde, hasta).
		Scan(&filas).Error
	return filas, err
}
