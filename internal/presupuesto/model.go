package presupuesto

import "time"

// Origen de una obligación dentro del plan.
const (
	TipoExistente = "existente" // abono pendiente ya configurado
	TipoNuevo     = "nuevo"     // abono por crear para un cliente sin abono activo
)

// Obligacion es un pago al proveedor que el monto disponible podría cubrir:
// o un abono pendiente ya configurado, o el abono que habría que crearle a
// un cliente con deudas activas y ningún abono pendiente.
type Obligacion struct {
	Prioridad     int       `json:"prioridad"`
	Tipo          string    `json:"tipo"`
	AbonoID       string    `json:"abonoId,omitempty"`
	ClienteID     string    `json:"clienteId"`
	Cliente       string    `json:"cliente"`
	Monto         float64   `json:"monto"`
	FechaPago     time.Time `json:"fechaPago"`
	DeudasActivas int       `json:"deudasActivas,omitempty"`
}

// Plan es el resultado del cálculo: las obligaciones aceptadas en orden de
// prioridad, cuánto cubren y cuánto sobra.
type Plan struct {
	MontoDisponible float64      `json:"montoDisponible"`
	Obligaciones    []Obligacion `json:"obligaciones"`
	MontoCubierto   float64      `json:"montoCubierto"`
	Restante        float64      `json:"restante"`
}

// ResultadoAplicacion reporta lo que hizo la ejecución en lote.
type ResultadoAplicacion struct {
	MarcadosPagados int     `json:"marcadosPagados"`
	AbonosCreados   int     `json:"abonosCreados"`
	MontoProcesado  float64 `json:"montoProcesado"`
}
