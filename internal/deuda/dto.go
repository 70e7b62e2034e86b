package deuda

import "time"

type CrearDeudaDTO struct {
	ClienteID        string    `json:"clienteId"`
	FechaVencimiento time.Time `json:"fechaVencimiento"`
	Monto            float64   `json:"monto"`
	CostoProveedor   float64   `json:"costoProveedor"`
	Estado           string    `json:"estado"`
	Descripcion      string    `json:"descripcion"`
}

// ActualizarDeudaDTO admite actualizaciones parciales.
type ActualizarDeudaDTO struct {
	FechaVencimiento *time.Time `json:"fechaVencimiento"`
	Monto            *float64   `json:"monto"`
	CostoProveedor   *float64   `json:"costoProveedor"`
	Estado           *string    `json:"estado"`
	Descripcion      *string    `json:"descripcion"`
}

func (d *ActualizarDeudaDTO) Cambios() map[string]interface{} {
	cambios := map[string]interface{}{}
	if d.FechaVencimiento != nil {
		cambios["fecha_vencimiento"] = *d.FechaVencimiento
	}
	if d.Monto != nil {
		cambios["monto"] = *d.Monto
	}
	if d.CostoProveedor != nil {
		cambios["costo_proveedor"] = *d.CostoProveedor
	}
	if d.Estado != nil {
		cambios["estado"] = *d.Estado
	}
	if d.Descripcion != nil {
		cambios["descripcion"] = *d.Descripcion
	}
	return cambios
}

// DeudaDTO agrega la ganancia derivada a la respuesta.
type DeudaDTO struct {
	Deuda
	Ganancia float64 `json:"ganancia"`
}

func ADto(d Deuda) DeudaDTO {
	return DeudaDTO{Deuda: d, Ganancia: d.Ganancia()}
}

func ADtos(deudas []Deuda) []DeudaDTO {
	dtos := make([]DeudaDTO, 0, len(deudas))
	for _, d := range deudas {
		dtos = append(dtos, ADto(d))
	}
	return dtos
}
