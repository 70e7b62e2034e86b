package cliente

type CrearClienteDTO struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

// ActualizarClienteDTO admite actualizaciones parciales: solo los campos
// presentes en el JSON se aplican. Renombrar un cliente no toca las copias
// del nombre guardadas en deudas o abonos históricos.
type ActualizarClienteDTO struct {
	Nombre   *string `json:"nombre"`
	Email    *string `json:"email"`
	Telefono *string `json:"telefono"`
}

func (d *ActualizarClienteDTO) Cambios() map[string]interface{} {
	cambios := map[string]interface{}{}
	if d.Nombre != nil {
		cambios["nombre"] = *d.Nombre
	}
	if d.Email != nil {
		cambios["email"] = *d.Email
	}
	if d.Telefono != nil {
		cambios["telefono"] = *d.Telefono
	}
	return cambios
}
