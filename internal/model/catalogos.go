package model

import (
	"time"

	"github.com/google/uuid"
)

// Catalog entities. Thin lookup tables with no invariant beyond existence;
// the core services resolve them by id up front and never traverse them lazily.

// Estado is the shared status catalog referenced by personas, productos and
// ordenes de compra (Activo/Inactivo for entities, Pendiente/Pagado for
// purchase orders).
type Estado struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Estado string    `gorm:"uniqueIndex;not null"`
}

func (Estado) TableName() string { return "estados" }

const (
	EstadoActivo   = "Activo"
	EstadoInactivo = "Inactivo"
	// Purchase order settlement states, same catalog.
	EstadoPendiente = "Pendiente"
	EstadoPagado    = "Pagado"
)

// Rol catalogs user roles.
type Rol struct {
	ID  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Rol string    `gorm:"uniqueIndex;not null"` // "Administrador" | "Empleado"
}

func (Rol) TableName() string { return "roles" }

const (
	RolAdministrador = "Administrador"
	RolEmpleado      = "Empleado"
)

// CategoriaPersona distinguishes clients from suppliers.
type CategoriaPersona struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Categoria string    `gorm:"uniqueIndex;not null"` // "Cliente" | "Proveedor"
}

func (CategoriaPersona) TableName() string { return "categorias_personas" }

const (
	CategoriaCliente   = "Cliente"
	CategoriaProveedor = "Proveedor"
)

// CategoriaProducto catalogs product families.
type CategoriaProducto struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Categoria string    `gorm:"uniqueIndex;not null"`
}

func (CategoriaProducto) TableName() string { return "categorias_productos" }

// MetodoPago catalogs payment methods.
type MetodoPago struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MetodoPago string    `gorm:"uniqueIndex;not null"` // "Efectivo" | "Tarjeta" | "Transferencia"
}

func (MetodoPago) TableName() string { return "metodos_pago" }

// MetodoPagoEfectivo is the fallback used when a purchase order omits the method.
const MetodoPagoEfectivo = "Efectivo"

// Ubicacion is a physical stock location (almacén, barra, cocina...).
type Ubicacion struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	Ubicacion string
	CreatedAt time.Time
}

func (Ubicacion) TableName() string { return "ubicaciones" }

// TipoMovimiento catalogs inventory movement types.
type TipoMovimiento struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Movimiento string    `gorm:"uniqueIndex;not null"` // "Entrada" | "Salida" | "Ajuste"
}

func (TipoMovimiento) TableName() string { return "tipos_movimientos" }

const (
	MovimientoEntrada = "Entrada"
	MovimientoSalida  = "Salida"
	MovimientoAjuste  = "Ajuste"
)
