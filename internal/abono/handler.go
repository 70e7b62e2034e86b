package abono

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/webdatta/api-cobranzas/internal/cliente"
	"github.com/webdatta/api-cobranzas/internal/deuda"
)

type Handler struct {
	DB         *gorm.DB
	Repository *Repository
	Clientes   cliente.Repository
	Deudas     *deuda.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(db),
		Clientes:   cliente.NewRepository(),
		Deudas:     deuda.NewRepository(db),
	}
}

// POST /abonos
// El monto total y la fecha del próximo pago se calculan acá, no los manda
// el cliente HTTP: el abono representa lo que se le debe al proveedor.
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var dto CrearAbonoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.ClienteID == "" || len(dto.DeudasIncluidas) == 0 {
		http.Error(w, "Selecciona un cliente y al menos una deuda", http.StatusBadRequest)
		return
	}
	if dto.Frecuencia == "" {
		dto.Frecuencia = FrecuenciaMensual
	}
	if !FrecuenciaValida(dto.Frecuencia) {
		http.Error(w, "Frecuencia de pago inválida", http.StatusBadRequest)
		return
	}

	c, err := h.Clientes.BuscarPorID(h.DB, dto.ClienteID)
	if err != nil {
		http.Error(w, "Cliente no encontrado", http.StatusNotFound)
		return
	}

	var montoTotal float64
	for _, deudaID := range dto.DeudasIncluidas {
		d, err := h.Deudas.BuscarPorID(deudaID)
		if err != nil {
			http.Error(w, "Deuda no encontrada: "+deudaID, http.StatusNotFound)
			return
		}
		if d.ClienteID != c.ID {
			http.Error(w, "La deuda "+deudaID+" no pertenece al cliente", http.StatusBadRequest)
			return
		}
		if d.Estado == deuda.EstadoPagada {
			http.Error(w, "La deuda "+deudaID+" ya está pagada", http.StatusBadRequest)
			return
		}
		montoTotal += d.CostoProveedor
	}

	ahora := time.Now()
	a := Abono{
		ClienteID:        c.ID,
		Cliente:          c.Nombre,
		Frecuencia:       dto.Frecuencia,
		DeudasIncluidas:  dto.DeudasIncluidas,
		MontoTotal:       montoTotal,
		FechaCreacion:    ahora,
		FechaProximoPago: CalcularProximoPago(ahora, dto.Frecuencia),
		Estado:           EstadoPendiente,
		Notas:            dto.Notas,
	}
	if err := h.Repository.Crear(&a); err != nil {
		http.Error(w, "Error al crear el abono", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(a)
}

// GET /abonos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	abonos, err := h.Repository.ListarTodos()
	if err != nil {
		http.Error(w, "Error al listar abonos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ADtos(abonos, time.Now()))
}

// GET /abonos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	a, err := h.Repository.BuscarPorID(id)
	if err != nil {
		http.Error(w, "Abono no encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ADto(*a, time.Now()))
}

// PUT /abonos/{id}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	defer r.Body.Close()
	var dto ActualizarAbonoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.Frecuencia != nil && !FrecuenciaValida(*dto.Frecuencia) {
		http.Error(w, "Frecuencia de pago inválida", http.StatusBadRequest)
		return
	}
	if dto.Estado != nil && *dto.Estado != EstadoPendiente && *dto.Estado != EstadoPagado {
		http.Error(w, "Estado de abono inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.ActualizarCampos(id, dto.Cambios()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Abono no encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Error al actualizar el abono", http.StatusInternalServerError)
		return
	}
	a, err := h.Repository.BuscarPorID(id)
	if err != nil {
		http.Error(w, "Abono no encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}

// PUT /abonos/{id}/pagar
func (h *Handler) MarcarPagado(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, err := h.Repository.BuscarPorID(id); err != nil {
		http.Error(w, "Abono no encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repository.MarcarPagado(id); err != nil {
		http.Error(w, "Error al marcar el abono como pagado", http.StatusInternalServerError)
		return
	}
	a, err := h.Repository.BuscarPorID(id)
	if err != nil {
		http.Error(w, "Abono no encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}

// DELETE /abonos/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Repository.EliminarPorID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Abono no encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Error al eliminar el abono", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
