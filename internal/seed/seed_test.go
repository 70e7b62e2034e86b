package seed

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/webdatta/api-cobranzas/internal/abono"
	"github.com/webdatta/api-cobranzas/internal/cliente"
	"github.com/webdatta/api-cobranzas/internal/deuda"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&cliente.Cliente{}, &deuda.Deuda{}, &abono.Abono{}))
	return db
}

func TestCargarSiembraElJuegoCompleto(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, Cargar(db))

	var clientes int64
	require.NoError(t, db.Model(&cliente.Cliente{}).Count(&clientes).Error)
	require.EqualValues(t, len(nombres), clientes)

	var deudas int64
	require.NoError(t, db.Model(&deuda.Deuda{}).Count(&deudas).Error)
	require.GreaterOrEqual(t, deudas, clientes)
	require.LessOrEqual(t, deudas, clientes*4)

	var abonos []abono.Abono
	require.NoError(t, db.Find(&abonos).Error)
	require.NotEmpty(t, abonos)
	require.LessOrEqual(t, len(abonos), 18)
	for _, a := range abonos {
		require.Equal(t, abono.EstadoPendiente, a.Estado)
		require.NotEmpty(t, a.DeudasIncluidas)

		// El monto congelado coincide con los costos de las deudas incluidas.
		var suma float64
		for _, id := range a.DeudasIncluidas {
			var d deuda.Deuda
			require.NoError(t, db.First(&d, "id = ?", id).Error)
			require.Equal(t, a.ClienteID, d.ClienteID)
			require.NotEqual(t, deuda.EstadoPagada, d.Estado)
			suma += d.CostoProveedor
		}
		require.Equal(t, suma, a.MontoTotal)
	}
}

func TestCargarNoDuplicaConDatosExistentes(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, Cargar(db))
	require.NoError(t, Cargar(db))

	var clientes int64
	require.NoError(t, db.Model(&cliente.Cliente{}).Count(&clientes).Error)
	require.EqualValues(t, len(nombres), clientes)
}

func TestUsuarioDeCorreoNormaliza(t *testing.T) {
	require.Equal(t, "juanperez0", usuarioDeCorreo("Juan Pérez", 0))
	require.Equal(t, "angelcastro22", usuarioDeCorreo("Ángel Castro", 22))
}
