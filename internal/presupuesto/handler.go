package presupuesto

import (
	"encoding/json"
	"errors"
	"net/http"

	"gorm.io/gorm"
)

type Handler struct {
	Service *Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Service: NewService(db)}
}

// POST /presupuesto/calcular
func (h *Handler) Calcular(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var dto CalcularDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	plan, err := h.Service.CalcularPlan(dto.MontoDisponible)
	if err != nil {
		http.Error(w, "Error al calcular el plan", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plan)
}

// POST /presupuesto/aplicar
func (h *Handler) Aplicar(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var dto AplicarDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	resultado, err := h.Service.AplicarSeleccion(dto.Seleccion)
	if err != nil {
		switch {
		case errors.Is(err, ErrAbonoNoEncontrado), errors.Is(err, ErrClienteNoEncontrado):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, ErrSeleccionVacia), errors.Is(err, ErrTipoInvalido),
			errors.Is(err, ErrClienteSinDeudas), errors.Is(err, ErrSeleccionSinReferente):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Error al aplicar la selección", http.StatusInternalServerError)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resultado)
}
