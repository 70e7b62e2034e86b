package correo

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
)

// Handler guarda la configuración en memoria. El mutex está porque el
// servidor HTTP atiende en paralelo; fuera de eso no hay más escritores.
type Handler struct {
	mu     sync.RWMutex
	config ConfiguracionCorreo
}

func NewHandler() *Handler {
	return &Handler{config: ConfiguracionPorDefecto()}
}

// GET /configuracion-correo
func (h *Handler) Obtener(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	config := h.config
	h.mu.RUnlock()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(config)
}

// PUT /configuracion-correo, reemplazo completo, no merge.
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var config ConfiguracionCorreo
	if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if config.ServidorSMTP == "" || config.Usuario == "" || config.CorreoRemitente == "" {
		http.Error(w, "Completa todos los campos obligatorios", http.StatusBadRequest)
		return
	}
	if config.CorreosDestino == nil {
		config.CorreosDestino = []string{}
	}

	h.mu.Lock()
	h.config = config
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(config)
}

// POST /configuracion-correo/destinatarios
func (h *Handler) AgregarDestinatario(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var dto struct {
		Correo string `json:"correo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	correo := strings.TrimSpace(dto.Correo)
	if correo == "" || !strings.Contains(correo, "@") {
		http.Error(w, "Ingresa un correo válido", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	for _, existente := range h.config.CorreosDestino {
		if existente == correo {
			h.mu.Unlock()
			http.Error(w, "Este correo ya está en la lista", http.StatusBadRequest)
			return
		}
	}
	h.config.CorreosDestino = append(h.config.CorreosDestino, correo)
	config := h.config
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(config)
}

// DELETE /configuracion-correo/destinatarios?correo=...
func (h *Handler) EliminarDestinatario(w http.ResponseWriter, r *http.Request) {
	correo := r.URL.Query().Get("correo")
	if correo == "" {
		http.Error(w, "El parámetro correo es obligatorio", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	filtrados := make([]string, 0, len(h.config.CorreosDestino))
	for _, existente := range h.config.CorreosDestino {
		if existente != correo {
			filtrados = append(filtrados, existente)
		}
	}
	h.config.CorreosDestino = filtrados
	config := h.config
	h.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(config)
}

// POST /configuracion-correo/reporte-prueba
// El envío real de correo queda fuera del sistema; esto solo confirma que la
// acción existe.
func (h *Handler) EnviarReportePrueba(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"titulo":  "Reporte de prueba",
		"mensaje": "En un entorno de producción, se enviaría un reporte de prueba a los correos configurados",
	})
}
