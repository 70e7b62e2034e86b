package deuda

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Estados posibles de una deuda. El estado es una etiqueta asignada a mano:
// el sistema nunca lo cambia solo porque pasó la fecha de vencimiento.
const (
	EstadoPendiente = "Pendiente"
	EstadoVencida   = "Vencida"
	EstadoPagada    = "Pagada"
	EstadoEnProceso = "En Proceso"
)

// EstadoValido indica si el estado pertenece al conjunto permitido.
func EstadoValido(estado string) bool {
	switch estado {
	case EstadoPendiente, EstadoVencida, EstadoPagada, EstadoEnProceso:
		return true
	}
	return false
}

// Deuda representa un servicio facturado a un cliente con su costo de
// proveedor asociado.
type Deuda struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	ClienteID        string    `gorm:"size:36;not null;index" json:"clienteId"`
	Cliente          string    `gorm:"size:255" json:"cliente"` // copia del nombre al momento del alta
	FechaVencimiento time.Time `gorm:"not null;index" json:"fechaVencimiento"`
	Monto            float64   `gorm:"not null;default:0" json:"monto"`
	CostoProveedor   float64   `gorm:"not null;default:0" json:"costoProveedor"`
	Estado           string    `gorm:"size:50;not null;default:'Pendiente';index" json:"estado"`
	Descripcion      string    `gorm:"size:255" json:"descripcion,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Ganancia es monto facturado menos costo de proveedor; puede ser negativa.
func (d *Deuda) Ganancia() float64 {
	return d.Monto - d.CostoProveedor
}

func (d *Deuda) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
