package deuda

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/webdatta/api-cobranzas/internal/cliente"
)

type Handler struct {
	DB         *gorm.DB
	Repository *Repository
	Clientes   cliente.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository(db), Clientes: cliente.NewRepository()}
}

// POST /deudas
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var dto CrearDeudaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.ClienteID == "" {
		http.Error(w, "El clienteId es obligatorio", http.StatusBadRequest)
		return
	}
	if dto.FechaVencimiento.IsZero() {
		http.Error(w, "La fecha de vencimiento es obligatoria", http.StatusBadRequest)
		return
	}
	if dto.Estado == "" {
		dto.Estado = EstadoPendiente
	}
	if !EstadoValido(dto.Estado) {
		http.Error(w, "Estado de deuda inválido", http.StatusBadRequest)
		return
	}

	// La deuda siempre nace apuntando a un cliente existente y se queda con
	// una copia de su nombre tal como estaba en ese momento.
	c, err := h.Clientes.BuscarPorID(h.DB, dto.ClienteID)
	if err != nil {
		http.Error(w, "Cliente no encontrado", http.StatusNotFound)
		return
	}

	d := Deuda{
		ClienteID:        dto.ClienteID,
		Cliente:          c.Nombre,
		FechaVencimiento: dto.FechaVencimiento,
		Monto:            dto.Monto,
		CostoProveedor:   dto.CostoProveedor,
		Estado:           dto.Estado,
		Descripcion:      dto.Descripcion,
	}
	if err := h.Repository.Crear(&d); err != nil {
		http.Error(w, "Error al crear la deuda", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(ADto(d))
}

// GET /deudas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	deudas, err := h.Repository.ListarTodas()
	if err != nil {
		http.Error(w, "Error al listar deudas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ADtos(deudas))
}

// GET /clientes/{id}/deudas
func (h *Handler) ListarPorCliente(w http.ResponseWriter, r *http.Request) {
	clienteID := mux.Vars(r)["id"]
	if _, err := h.Clientes.BuscarPorID(h.DB, clienteID); err != nil {
		http.Error(w, "Cliente no encontrado", http.StatusNotFound)
		return
	}
	deudas, err := h.Repository.ListarPorCliente(clienteID)
	if err != nil {
		http.Error(w, "Error al listar deudas del cliente", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ADtos(deudas))
}

// GET /deudas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	d, err := h.Repository.BuscarPorID(id)
	if err != nil {
		http.Error(w, "Deuda no encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ADto(*d))
}

// PUT /deudas/{id}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	defer r.Body.Close()
	var dto ActualizarDeudaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.Estado != nil && !EstadoValido(*dto.Estado) {
		http.Error(w, "Estado de deuda inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.ActualizarCampos(id, dto.Cambios()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Deuda no encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Error al actualizar la deuda", http.StatusInternalServerError)
		return
	}
	d, err := h.Repository.BuscarPorID(id)
	if err != nil {
		http.Error(w, "Deuda no encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ADto(*d))
}

// DELETE /deudas/{id}
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Repository.EliminarPorID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Deuda no encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Error al eliminar la deuda", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
