package cliente

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cliente representa a una persona o negocio con servicios por cobrar.
type Cliente struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Nombre        string    `gorm:"size:255;not null" json:"nombre"`
	Email         string    `gorm:"size:255;not null" json:"email"`
	Telefono      string    `gorm:"size:50" json:"telefono"`
	FechaCreacion time.Time `json:"fechaCreacion"`
}

// BeforeCreate asigna un ID opaco y la fecha de alta si no vienen dados.
func (c *Cliente) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.FechaCreacion.IsZero() {
		c.FechaCreacion = time.Now()
	}
	return nil
}
