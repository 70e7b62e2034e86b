package cliente

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// POST /clientes
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var dto CrearClienteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.Nombre == "" || dto.Email == "" {
		http.Error(w, "Nombre y email son obligatorios", http.StatusBadRequest)
		return
	}

	c := Cliente{Nombre: dto.Nombre, Email: dto.Email, Telefono: dto.Telefono}
	if err := h.Repository.Crear(h.DB, &c); err != nil {
		http.Error(w, "Error al crear el cliente", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /clientes
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "Error al listar clientes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(clientes)
}

// GET /clientes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	c, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		http.Error(w, "Cliente no encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// PUT /clientes/{id}
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	defer r.Body.Close()
	var dto ActualizarClienteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Actualizar(h.DB, id, dto.Cambios()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Cliente no encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Error al actualizar el cliente", http.StatusInternalServerError)
		return
	}
	c, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		http.Error(w, "Cliente no encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// DELETE /clientes/{id}, elimina también todas las deudas del cliente.
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Repository.EliminarConDeudas(h.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Cliente no encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Error al eliminar el cliente", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
