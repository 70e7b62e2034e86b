package resumen

import (
	"time"

	"gorm.io/gorm"

	"github.com/webdatta/api-cobranzas/internal/deuda"
)

// Repository arma las vistas derivadas del tablero. Todo se recalcula en
// cada consulta; acá no hay caché ni estado propio.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Totales suma monto y costo de todas las deudas no pagadas.
func (r *Repository) Totales() (ResumenDTO, error) {
	var fila struct {
		TotalACobrar float64
		TotalCostos  float64
		TotalDeudas  int64
	}
	err := r.DB.Model(&deuda.Deuda{}).
		Where("estado <> ?", deuda.EstadoPagada).
		Select("COALESCE(SUM(monto), 0) AS total_a_cobrar, COALESCE(SUM(costo_proveedor), 0) AS total_costos, COUNT(*) AS total_deudas").
		Scan(&fila).Error
	if err != nil {
		return ResumenDTO{}, err
	}
	return ResumenDTO{
		TotalACobrar:  fila.TotalACobrar,
		TotalCostos:   fila.TotalCostos,
		GananciaTotal: fila.TotalACobrar - fila.TotalCostos,
		TotalDeudas:   fila.TotalDeudas,
	}, nil
}

// ClientesConDeudas devuelve, por cliente, cuántas deudas activas tiene y
// cuánto suman; los clientes sin deudas activas quedan afuera.
func (r *Repository) ClientesConDeudas() ([]ClienteConDeudasDTO, error) {
	var filas []ClienteConDeudasDTO
	err := r.DB.
		Table("clientes").
		Select("clientes.id, clientes.nombre, clientes.email, clientes.telefono, COUNT(deudas.id) AS deudas_activas, COALESCE(SUM(deudas.monto), 0) AS total_deuda").
		Joins("JOIN deudas ON deudas.cliente_id = clientes.id AND deudas.estado <> ?", deuda.EstadoPagada).
		Group("clientes.id, clientes.nombre, clientes.email, clientes.telefono").
		Order("clientes.fecha_creacion ASC").
		Scan(&filas).Error
	if filas == nil {
		filas = []ClienteConDeudasDTO{}
	}
	return filas, err
}

// inicioDelDia trunca a medianoche en hora local.
func inicioDelDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// vencenEnVentana devuelve las deudas no pagadas cuyo vencimiento cae en
// [desde, hasta).
func (r *Repository) vencenEnVentana(desde, hasta time.Time) ([]deuda.Deuda, error) {
	var deudas []deuda.Deuda
	err := r.DB.
		Where("estado <> ? AND fecha_vencimiento >= ? AND fecha_vencimiento < ?",
			deuda.EstadoPagada, desde, hasta).
		Order("fecha_vencimiento ASC").
		Find(&deudas).Error
	return deudas, err
}

// VencenHoy devuelve las deudas activas que vencen dentro del día de hoy.
func (r *Repository) VencenHoy(ahora time.Time) ([]deuda.Deuda, error) {
	hoy := inicioDelDia(ahora)
	return r.vencenEnVentana(hoy, hoy.AddDate(0, 0, 1))
}

// VencenManana devuelve las deudas activas que vencen dentro del día de mañana.
func (r *Repository) VencenManana(ahora time.Time) ([]deuda.Deuda, error) {
	manana := inicioDelDia(ahora).AddDate(0, 0, 1)
	return r.vencenEnVentana(manana, manana.AddDate(0, 0, 1))
}
