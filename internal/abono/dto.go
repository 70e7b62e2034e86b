package abono

import (
	"math"
	"time"
)

type CrearAbonoDTO struct {
	ClienteID       string   `json:"clienteId"`
	Frecuencia      string   `json:"frecuencia"`
	DeudasIncluidas []string `json:"deudasIncluidas"`
	Notas           string   `json:"notas"`
}

// ActualizarAbonoDTO admite actualizaciones parciales de los campos sueltos.
// La lista de deudas incluidas y el monto no se tocan una vez creados.
type ActualizarAbonoDTO struct {
	Frecuencia *string `json:"frecuencia"`
	Estado     *string `json:"estado"`
	Notas      *string `json:"notas"`
}

func (d *ActualizarAbonoDTO) Cambios() map[string]interface{} {
	cambios := map[string]interface{}{}
	if d.Frecuencia != nil {
		cambios["frecuencia"] = *d.Frecuencia
	}
	if d.Estado != nil {
		cambios["estado"] = *d.Estado
	}
	if d.Notas != nil {
		cambios["notas"] = *d.Notas
	}
	return cambios
}

// AbonoDTO agrega cuántos días faltan para el próximo pago (negativo si ya
// se pasó). Es un dato derivado para el tablero, nunca se guarda.
type AbonoDTO struct {
	Abono
	VenceEnDias int `json:"venceEnDias"`
}

func ADto(a Abono, ahora time.Time) AbonoDTO {
	dias := int(math.Ceil(a.FechaProximoPago.Sub(ahora).Hours() / 24))
	return AbonoDTO{Abono: a, VenceEnDias: dias}
}

func ADtos(abonos []Abono, ahora time.Time) []AbonoDTO {
	dtos := make([]AbonoDTO, 0, len(abonos))
	for _, a := range abonos {
		dtos = append(dtos, ADto(a, ahora))
	}
	return dtos
}
