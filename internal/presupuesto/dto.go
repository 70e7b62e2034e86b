package presupuesto

type CalcularDTO struct {
	MontoDisponible float64 `json:"montoDisponible"`
}

// SeleccionItem identifica una obligación confirmada por el usuario: un
// abono existente por su ID o un cliente al que hay que crearle el abono.
type SeleccionItem struct {
	Tipo      string `json:"tipo"`
	AbonoID   string `json:"abonoId,omitempty"`
	ClienteID string `json:"clienteId,omitempty"`
}

type AplicarDTO struct {
	Seleccion []SeleccionItem `json:"seleccion"`
}
