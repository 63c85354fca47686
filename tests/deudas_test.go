package tests

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/model"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/service"
)

type deudasFixture struct {
	svc      service.DeudasService
	cat      *stubCatalogo
	personas *stubPersonaRepo
	ordenes  *stubOrdenCompraRepo
}

func buildDeudasSvc() *deudasFixture {
	f := &deudasFixture{
		cat:      newStubCatalogo(),
		personas: newStubPersonaRepo(),
		ordenes:  newStubOrdenCompraRepo(),
	}
	f.svc = service.NewDeudasService(f.ordenes, f.personas, f.cat)
	return f
}

// conDeuda seeds a supplier with one order and an optional payment.
func (f *deudasFixture) conDeuda(nombre, compra, pago string) *model.Persona {
	p := seedProveedor(f.personas, f.cat, nombre)
	oc := &model.OrdenCompra{
		ID:           uuid.New(),
		ProveedorID:  p.ID,
		FechaOrden:   time.Now(),
		TotalCompra:  dec(compra),
		EstadoID:     f.cat.estados[model.EstadoPendiente].ID,
		MetodoPagoID: f.cat.metodos[model.MetodoPagoEfectivo].ID,
	}
	f.ordenes.ordenes[oc.ID] = oc
	if pago != "" {
		f.ordenes.cargos = append(f.ordenes.cargos, model.HistorialCargoProveedor{
			ID:            uuid.New(),
			ProveedorID:   p.ID,
			OrdenCompraID: oc.ID,
			MontoPagado:   dec(pago),
			MetodoPagoID:  oc.MetodoPagoID,
			Fecha:         time.Now(),
		})
	}
	return p
}

func TestReporteDeudasIncluyeSaldadosYOrdena(t *testing.T) {
	f := buildDeudasSvc()

	f.conDeuda("Bebidas Aurora", "500", "200") // deuda 300
	f.conDeuda("Carnes Palermo", "800", "")    // deuda 800
	f.conDeuda("Dulces Rivera", "150", "150")  // deuda 0, debe aparecer

	reporte, err := f.svc.ReporteDeudas(context.Background())
	require.NoError(t, err)
	require.Len(t, reporte, 3)

	// deuda descendente; el proveedor saldado cierra la lista
	assert.Equal(t, "Carnes Palermo", reporte[0].Proveedor)
	assert.True(t, reporte[0].Deuda.Equal(dec("800")))
	assert.Equal(t, "Bebidas Aurora", reporte[1].Proveedor)
	assert.True(t, reporte[1].Deuda.Equal(dec("300")))
	assert.Equal(t, "Dulces Rivera", reporte[2].Proveedor)
	assert.True(t, reporte[2].Deuda.IsZero())
}

func TestReporteDeudasDesempataPorNombre(t *testing.T) {
	f := buildDeudasSvc()
	f.conDeuda("Zapatería Gil", "100", "")
	f.conDeuda("Almacén Ávila", "100", "")

	reporte, err := f.svc.ReporteDeudas(context.Background())
	require.NoError(t, err)
	require.Len(t, reporte, 2)
	assert.Equal(t, "Almacén Ávila", reporte[0].Proveedor)
	assert.Equal(t, "Zapatería Gil", reporte[1].Proveedor)
}

func TestEstadisticasDeudas(t *testing.T) {
	f := buildDeudasSvc()

	f.conDeuda("Proveedor Uno", "10.01", "")
	f.conDeuda("Proveedor Dos", "10.00", "")
	f.conDeuda("Proveedor Saldado", "400", "400") // fuera del promedio

	stats, err := f.svc.Estadisticas(context.Background())
	require.NoError(t, err)

	assert.True(t, stats.DeudaTotal.Equal(dec("20.01")))
	assert.Equal(t, 2, stats.ProveedoresConDeuda)
	// 20.01 / 2 = 10.005 → medio centavo sube
	assert.True(t, stats.DeudaPromedio.Equal(dec("10.01")), "promedio %s", stats.DeudaPromedio)
	require.NotNil(t, stats.MayorDeudor)
	assert.Equal(t, "Proveedor Uno", stats.MayorDeudor.Proveedor)
}

func TestEstadisticasSinDeudores(t *testing.T) {
	f := buildDeudasSvc()
	f.conDeuda("Proveedor Saldado", "300", "300")

	stats, err := f.svc.Estadisticas(context.Background())
	require.NoError(t, err)
	assert.True(t, stats.DeudaTotal.IsZero())
	assert.Equal(t, 0, stats.ProveedoresConDeuda)
	assert.True(t, stats.DeudaPromedio.IsZero())
	assert.Nil(t, stats.MayorDeudor)
}
