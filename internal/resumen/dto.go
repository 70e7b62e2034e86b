package resumen

// ResumenDTO son los totales del tablero sobre las deudas no pagadas.
type ResumenDTO struct {
	TotalACobrar  float64 `json:"totalACobrar"`
	TotalCostos   float64 `json:"totalCostos"`
	GananciaTotal float64 `json:"gananciaTotal"`
	TotalDeudas   int64   `json:"totalDeudas"`
}

// ClienteConDeudasDTO resume a un cliente con al menos una deuda activa.
type ClienteConDeudasDTO struct {
	ID            string  `json:"id"`
	Nombre        string  `json:"nombre"`
	Email         string  `json:"email"`
	Telefono      string  `json:"telefono"`
	DeudasActivas int     `json:"deudasActivas"`
	TotalDeuda    float64 `json:"totalDeuda"`
}
