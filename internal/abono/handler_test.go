package abono_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
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

func fixtures(t *testing.T, db *gorm.DB) (cliente.Cliente, deuda.Deuda, deuda.Deuda) {
	t.Helper()
	c := cliente.Cliente{Nombre: "Abonado", Email: "abonado@test.com"}
	require.NoError(t, db.Create(&c).Error)
	d1 := deuda.Deuda{ClienteID: c.ID, Cliente: c.Nombre, FechaVencimiento: time.Now().AddDate(0, 0, 3), Monto: 900, CostoProveedor: 600, Estado: deuda.EstadoPendiente}
	d2 := deuda.Deuda{ClienteID: c.ID, Cliente: c.Nombre, FechaVencimiento: time.Now().AddDate(0, 0, 9), Monto: 450, CostoProveedor: 300, Estado: deuda.EstadoVencida}
	require.NoError(t, db.Create(&d1).Error)
	require.NoError(t, db.Create(&d2).Error)
	return c, d1, d2
}

func TestCrearAbonoCalculaMontoYProximoPago(t *testing.T) {
	db := setupDB(t)
	h := abono.NewHandler(db)
	c, d1, d2 := fixtures(t, db)

	cuerpo := fmt.Sprintf(`{"clienteId":%q,"frecuencia":"Quincenal","deudasIncluidas":[%q,%q],"notas":"pago al proveedor X"}`, c.ID, d1.ID, d2.ID)
	req := httptest.NewRequest(http.MethodPost, "/abonos", strings.NewReader(cuerpo))
	w := httptest.NewRecorder()
	h.Crear(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var creado abono.Abono
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &creado))
	// El monto sale de los costos de proveedor, no de lo facturado al cliente.
	require.Equal(t, 900.0, creado.MontoTotal)
	require.Equal(t, abono.EstadoPendiente, creado.Estado)

	dias := creado.FechaProximoPago.Sub(creado.FechaCreacion).Hours() / 24
	require.InDelta(t, 15, dias, 0.01)
}

func TestCrearAbonoRechazaDeudaAjena(t *testing.T) {
	db := setupDB(t)
	h := abono.NewHandler(db)
	c, _, _ := fixtures(t, db)

	otro := cliente.Cliente{Nombre: "Otro", Email: "otro@test.com"}
	require.NoError(t, db.Create(&otro).Error)
	ajena := deuda.Deuda{ClienteID: otro.ID, Cliente: otro.Nombre, FechaVencimiento: time.Now(), Monto: 10, CostoProveedor: 5, Estado: deuda.EstadoPendiente}
	require.NoError(t, db.Create(&ajena).Error)

	cuerpo := fmt.Sprintf(`{"clienteId":%q,"deudasIncluidas":[%q]}`, c.ID, ajena.ID)
	req := httptest.NewRequest(http.MethodPost, "/abonos", strings.NewReader(cuerpo))
	w := httptest.NewRecorder()
	h.Crear(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCrearAbonoRechazaDeudaPagada(t *testing.T) {
	db := setupDB(t)
	h := abono.NewHandler(db)
	c, d1, _ := fixtures(t, db)
	require.NoError(t, db.Model(&deuda.Deuda{}).Where("id = ?", d1.ID).Update("estado", deuda.EstadoPagada).Error)

	cuerpo := fmt.Sprintf(`{"clienteId":%q,"deudasIncluidas":[%q]}`, c.ID, d1.ID)
	req := httptest.NewRequest(http.MethodPost, "/abonos", strings.NewReader(cuerpo))
	w := httptest.NewRecorder()
	h.Crear(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFrecuenciasDesplazanProximoPago(t *testing.T) {
	desde := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.Local)
	casos := map[string]int{
		abono.FrecuenciaDiaria:    1,
		abono.FrecuenciaSemanal:   7,
		abono.FrecuenciaQuincenal: 15,
		abono.FrecuenciaMensual:   30,
	}
	for frecuencia, dias := range casos {
		require.Equal(t, desde.AddDate(0, 0, dias), abono.CalcularProximoPago(desde, frecuencia), frecuencia)
	}
}

func TestMarcarPagadoEsIdempotente(t *testing.T) {
	db := setupDB(t)
	h := abono.NewHandler(db)
	c, d1, _ := fixtures(t, db)

	a := abono.Abono{
		ClienteID:        c.ID,
		Cliente:          c.Nombre,
		Frecuencia:       abono.FrecuenciaMensual,
		DeudasIncluidas:  []string{d1.ID},
		MontoTotal:       600,
		FechaProximoPago: time.Now().AddDate(0, 0, 30),
		Estado:           abono.EstadoPendiente,
		Notas:            "nota original",
	}
	require.NoError(t, db.Create(&a).Error)

	pagar := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, "/abonos/"+a.ID+"/pagar", nil)
		req = mux.SetURLVars(req, map[string]string{"id": a.ID})
		w := httptest.NewRecorder()
		h.MarcarPagado(w, req)
		return w
	}

	require.Equal(t, http.StatusOK, pagar().Code)
	require.Equal(t, http.StatusOK, pagar().Code)

	recargado, err := h.Repository.BuscarPorID(a.ID)
	require.NoError(t, err)
	require.Equal(t, abono.EstadoPagado, recargado.Estado)
	// Pagar solo cambia el estado, el resto queda como estaba.
	require.Equal(t, 600.0, recargado.MontoTotal)
	require.Equal(t, "nota original", recargado.Notas)

	var total int64
	require.NoError(t, db.Model(&abono.Abono{}).Count(&total).Error)
	require.EqualValues(t, 1, total)
}
