package cliente_test

import (
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

	"github.com/webdatta/api-cobranzas/internal/cliente"
	"github.com/webdatta/api-cobranzas/internal/deuda"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&cliente.Cliente{}, &deuda.Deuda{}))
	return db
}

func TestCrearClienteValidaCampos(t *testing.T) {
	h := cliente.NewHandler(setupDB(t))

	req := httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(`{"nombre":"","email":""}`))
	w := httptest.NewRecorder()
	h.Crear(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(`{"nombre":"Ana","email":"ana@test.com","telefono":"555"}`))
	w = httptest.NewRecorder()
	h.Crear(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"nombre":"Ana"`)
	require.Contains(t, w.Body.String(), `"id":"`)
}

func TestActualizarClienteParcial(t *testing.T) {
	db := setupDB(t)
	h := cliente.NewHandler(db)

	c := cliente.Cliente{Nombre: "Luis", Email: "luis@test.com", Telefono: "111"}
	require.NoError(t, db.Create(&c).Error)

	req := httptest.NewRequest(http.MethodPut, "/clientes/"+c.ID, strings.NewReader(`{"telefono":"222"}`))
	req = mux.SetURLVars(req, map[string]string{"id": c.ID})
	w := httptest.NewRecorder()
	h.Actualizar(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	recargado, err := h.Repository.BuscarPorID(db, c.ID)
	require.NoError(t, err)
	require.Equal(t, "222", recargado.Telefono)
	require.Equal(t, "Luis", recargado.Nombre) // los campos ausentes no se tocan
}

func TestEliminarClienteCascadaDeudas(t *testing.T) {
	db := setupDB(t)
	h := cliente.NewHandler(db)

	victima := cliente.Cliente{Nombre: "Borrar", Email: "b@test.com"}
	otro := cliente.Cliente{Nombre: "Queda", Email: "q@test.com"}
	require.NoError(t, db.Create(&victima).Error)
	require.NoError(t, db.Create(&otro).Error)

	for i := 0; i < 3; i++ {
		d := deuda.Deuda{ClienteID: victima.ID, Cliente: victima.Nombre, FechaVencimiento: time.Now(), Monto: 100, CostoProveedor: 60}
		require.NoError(t, db.Create(&d).Error)
	}
	ajena := deuda.Deuda{ClienteID: otro.ID, Cliente: otro.Nombre, FechaVencimiento: time.Now(), Monto: 50, CostoProveedor: 30}
	require.NoError(t, db.Create(&ajena).Error)

	req := httptest.NewRequest(http.MethodDelete, "/clientes/"+victima.ID, nil)
	req = mux.SetURLVars(req, map[string]string{"id": victima.ID})
	w := httptest.NewRecorder()
	h.Eliminar(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	var restantes int64
	require.NoError(t, db.Model(&deuda.Deuda{}).Where("cliente_id = ?", victima.ID).Count(&restantes).Error)
	require.Zero(t, restantes)

	// Las deudas del otro cliente no se tocan.
	require.NoError(t, db.Model(&deuda.Deuda{}).Where("cliente_id = ?", otro.ID).Count(&restantes).Error)
	require.EqualValues(t, 1, restantes)
}

func TestEliminarClienteInexistente(t *testing.T) {
	h := cliente.NewHandler(setupDB(t))
	req := httptest.NewRequest(http.MethodDelete, "/clientes/nada", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "nada"})
	w := httptest.NewRecorder()
	h.Eliminar(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}
