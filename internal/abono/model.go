package abono

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FrecuenciaDiaria    = "Diario"
	FrecuenciaSemanal   = "Semanal"
	FrecuenciaQuincenal = "Quincenal"
	FrecuenciaMensual   = "Mensual"

	EstadoPendiente = "Pendiente"
	EstadoPagado    = "Pagado"
)

// diasPorFrecuencia fija el desplazamiento del próximo pago.
var diasPorFrecuencia = map[string]int{
	FrecuenciaDiaria:    1,
	FrecuenciaSemanal:   7,
	FrecuenciaQuincenal: 15,
	FrecuenciaMensual:   30,
}

// FrecuenciaValida indica si la frecuencia pertenece al conjunto permitido.
func FrecuenciaValida(frecuencia string) bool {
	_, ok := diasPorFrecuencia[frecuencia]
	return ok
}

// CalcularProximoPago devuelve la fecha del próximo pago a partir de la
// fecha dada según la frecuencia.
func CalcularProximoPago(desde time.Time, frecuencia string) time.Time {
	dias, ok := diasPorFrecuencia[frecuencia]
	if !ok {
		dias = diasPorFrecuencia[FrecuenciaMensual]
	}
	return desde.AddDate(0, 0, dias)
}

// Abono representa un pago programado al proveedor que cubre un conjunto de
// deudas de un cliente. La lista de deudas y el monto quedan congelados al
// crearlo: no se recalculan aunque las deudas cambien después.
type Abono struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	ClienteID        string    `gorm:"size:36;not null;index" json:"clienteId"`
	Cliente          string    `gorm:"size:255" json:"cliente"` // copia del nombre al momento del alta
	Frecuencia       string    `gorm:"size:50;not null;default:'Mensual'" json:"frecuencia"`
	DeudasIncluidas  []string  `gorm:"serializer:json" json:"deudasIncluidas"`
	MontoTotal       float64   `gorm:"not null;default:0" json:"montoTotal"`
	FechaCreacion    time.Time `json:"fechaCreacion"`
	FechaProximoPago time.Time `gorm:"not null;index" json:"fechaProximoPago"`
	Estado           string    `gorm:"size:50;not null;default:'Pendiente';index" json:"estado"`
	Notas            string    `gorm:"size:255" json:"notas,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (a *Abono) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.FechaCreacion.IsZero() {
		a.FechaCreacion = time.Now()
	}
	return nil
}
