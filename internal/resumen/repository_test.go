package resumen_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/webdatta/api-cobranzas/internal/cliente"
	"github.com/webdatta/api-cobranzas/internal/deuda"
	"github.com/webdatta/api-cobranzas/internal/resumen"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&cliente.Cliente{}, &deuda.Deuda{}))
	return db
}

func crearCliente(t *testing.T, db *gorm.DB, nombre string) cliente.Cliente {
	t.Helper()
	c := cliente.Cliente{Nombre: nombre, Email: nombre + "@test.com"}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func crearDeuda(t *testing.T, db *gorm.DB, c cliente.Cliente, monto, costo float64, vence time.Time, estado string) deuda.Deuda {
	t.Helper()
	d := deuda.Deuda{
		ClienteID:        c.ID,
		Cliente:          c.Nombre,
		FechaVencimiento: vence,
		Monto:            monto,
		CostoProveedor:   costo,
		Estado:           estado,
	}
	require.NoError(t, db.Create(&d).Error)
	return d
}

func TestTotalesExcluyenPagadas(t *testing.T) {
	db := setupDB(t)
	repo := resumen.NewRepository(db)
	c := crearCliente(t, db, "Totales")

	// Deuda de 1000 con costo 700 deja una ganancia bruta de 300.
	crearDeuda(t, db, c, 1000, 700, time.Now().AddDate(0, 0, 5), deuda.EstadoPendiente)
	crearDeuda(t, db, c, 500, 200, time.Now().AddDate(0, 0, -2), deuda.EstadoVencida)
	crearDeuda(t, db, c, 9999, 9999, time.Now(), deuda.EstadoPagada)

	totales, err := repo.Totales()
	require.NoError(t, err)
	require.Equal(t, 1500.0, totales.TotalACobrar)
	require.Equal(t, 900.0, totales.TotalCostos)
	require.Equal(t, 600.0, totales.GananciaTotal)
	require.EqualValues(t, 2, totales.TotalDeudas)
}

func TestTotalesSinDeudas(t *testing.T) {
	db := setupDB(t)
	repo := resumen.NewRepository(db)

	totales, err := repo.Totales()
	require.NoError(t, err)
	require.Zero(t, totales.TotalACobrar)
	require.Zero(t, totales.GananciaTotal)
	require.Zero(t, totales.TotalDeudas)
}

func TestClientesConDeudasAgrupaYExcluye(t *testing.T) {
	db := setupDB(t)
	repo := resumen.NewRepository(db)

	conDeudas := crearCliente(t, db, "Moroso")
	crearDeuda(t, db, conDeudas, 300, 100, time.Now(), deuda.EstadoPendiente)
	crearDeuda(t, db, conDeudas, 200, 50, time.Now(), deuda.EstadoVencida)

	alDia := crearCliente(t, db, "AlDia")
	crearDeuda(t, db, alDia, 800, 500, time.Now(), deuda.EstadoPagada)

	crearCliente(t, db, "SinDeudas")

	filas, err := repo.ClientesConDeudas()
	require.NoError(t, err)
	require.Len(t, filas, 1)
	require.Equal(t, conDeudas.ID, filas[0].ID)
	require.Equal(t, 2, filas[0].DeudasActivas)
	require.Equal(t, 500.0, filas[0].TotalDeuda)
}

func TestVencimientosPorVentanaDeDia(t *testing.T) {
	db := setupDB(t)
	repo := resumen.NewRepository(db)
	c := crearCliente(t, db, "Ventanas")

	ahora := time.Date(2026, time.August, 30, 15, 30, 0, 0, time.Local)
	hoyTemprano := crearDeuda(t, db, c, 100, 50, ahora.Add(-10*time.Hour), deuda.EstadoPendiente)
	mananaNoche := crearDeuda(t, db, c, 200, 80, ahora.Add(30*time.Hour), deuda.EstadoVencida)
	crearDeuda(t, db, c, 300, 90, ahora.AddDate(0, 0, 3), deuda.EstadoPendiente)
	crearDeuda(t, db, c, 400, 95, ahora.Add(2*time.Hour), deuda.EstadoPagada)

	hoy, err := repo.VencenHoy(ahora)
	require.NoError(t, err)
	require.Len(t, hoy, 1)
	require.Equal(t, hoyTemprano.ID, hoy[0].ID)

	manana, err := repo.VencenManana(ahora)
	require.NoError(t, err)
	require.Len(t, manana, 1)
	require.Equal(t, mananaNoche.ID, manana[0].ID)
}
