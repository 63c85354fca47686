package infra

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, and seeds the catalog rows the services resolve
// by name. TranslateError is on so unique violations surface as
// gorm.ErrDuplicatedKey (the idempotency reservation depends on it).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return db, nil
}

// RunMigrations creates the schema. gen_random_uuid() needs pgcrypto on
// PostgreSQL < 13; the guard is idempotent either way.
func RunMigrations(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return fmt.Errorf("pgcrypto: %w", err)
	}
	return db.AutoMigrate(
		&model.Estado{},
		&model.Rol{},
		&model.CategoriaPersona{},
		&model.CategoriaProducto{},
		&model.MetodoPago{},
		&model.Ubicacion{},
		&model.TipoMovimiento{},
		&model.Persona{},
		&model.Usuario{},
		&model.Producto{},
		&model.HistorialPrecio{},
		&model.HistorialCosto{},
		&model.OrdenCompra{},
		&model.DetalleOrdenCompra{},
		&model.HistorialCargoProveedor{},
		&model.Workspace{},
		&model.OrdenWorkspace{},
		&model.OrdenVenta{},
		&model.DetalleOrdenVenta{},
		&model.HistorialPagoCliente{},
		&model.Inventario{},
		&model.MovimientoInventario{},
		&model.ClaveIdempotencia{},
	)
}

// SeedCatalogos inserts the catalog rows and the reserved walk-in client.
// Idempotent: existing rows are left untouched.
func SeedCatalogos(db *gorm.DB, clienteDefecto string) error {
	for _, nombre := range []string{model.EstadoActivo, model.EstadoInactivo, model.EstadoPendiente, model.EstadoPagado} {
		if err := firstOrCreate(db, &model.Estado{Estado: nombre}, "estado = ?", nombre); err != nil {
			return err
		}
	}
	for _, nombre := range []string{"Administrador", "Empleado"} {
		if err := firstOrCreate(db, &model.Rol{Rol: nombre}, "rol = ?", nombre); err != nil {
			return err
		}
	}
	for _, nombre := range []string{model.CategoriaCliente, model.CategoriaProveedor} {
		if err := firstOrCreate(db, &model.CategoriaPersona{Categoria: nombre}, "categoria = ?", nombre); err != nil {
			return err
		}
	}
	for _, nombre := range []string{model.MetodoPagoEfectivo, "Tarjeta", "Transferencia"} {
		if err := firstOrCreate(db, &model.MetodoPago{MetodoPago: nombre}, "metodo_pago = ?", nombre); err != nil {
			return err
		}
	}
	for _, nombre := range []string{model.MovimientoEntrada, model.MovimientoSalida, model.MovimientoAjuste} {
		if err := firstOrCreate(db, &model.TipoMovimiento{Movimiento: nombre}, "movimiento = ?", nombre); err != nil {
			return err
		}
	}

	// Reserved walk-in client for sales without an explicit customer.
	var cliente model.Persona
	err := db.Where("nombre = ?", clienteDefecto).First(&cliente).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		var cat model.CategoriaPersona
		if err := db.Where("categoria = ?", model.CategoriaCliente).First(&cat).Error; err != nil {
			return err
		}
		var activo model.Estado
		if err := db.Where("estado = ?", model.EstadoActivo).First(&activo).Error; err != nil {
			return err
		}
		return db.Create(&model.Persona{
			Nombre:      clienteDefecto,
			CategoriaID: cat.ID,
			EstadoID:    activo.ID,
		}).Error
	}
	return err
}

func firstOrCreate(db *gorm.DB, value interface{}, query string, args ...interface{}) error {
	return db.Where(query, args...).FirstOrCreate(value).Error
}
