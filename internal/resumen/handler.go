package resumen

import (
	"encoding/json"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/webdatta/api-cobranzas/internal/deuda"
)

type Handler struct {
	Repository *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repository: NewRepository(db)}
}

// GET /resumen
func (h *Handler) Resumen(w http.ResponseWriter, r *http.Request) {
	totales, err := h.Repository.Totales()
	if err != nil {
		http.Error(w, "Error al calcular el resumen", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(totales)
}

// GET /resumen/clientes-con-deudas
func (h *Handler) ClientesConDeudas(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.Repository.ClientesConDeudas()
	if err != nil {
		http.Error(w, "Error al listar clientes con deudas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(clientes)
}

// GET /resumen/vencen-hoy
func (h *Handler) VencenHoy(w http.ResponseWriter, r *http.Request) {
	deudas, err := h.Repository.VencenHoy(time.Now())
	if err != nil {
		http.Error(w, "Error al buscar vencimientos de hoy", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(deuda.ADtos(deudas))
}

// GET /resumen/vencen-manana
func (h *Handler) VencenManana(w http.ResponseWriter, r *http.Request) {
	deudas, err := h.Repository.VencenManana(time.Now())
	if err != nil {
		http.Error(w, "Error al buscar vencimientos de mañana", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(deuda.ADtos(deudas))
}
