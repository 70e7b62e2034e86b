package correo

// ConfiguracionCorreo es el único registro de configuración de reportes del
// proceso. Vive en memoria: se carga con valores por defecto al arrancar,
// se reemplaza completo al guardar y se pierde al reiniciar. Cualquier envío
// real de correo es un colaborador externo.
type ConfiguracionCorreo struct {
	ServidorSMTP            string   `json:"servidorSMTP"`
	Puerto                  int      `json:"puerto"`
	Usuario                 string   `json:"usuario"`
	Contrasena              string   `json:"contrasena"`
	CorreoRemitente         string   `json:"correoRemitente"`
	CorreosDestino          []string `json:"correosDestino"`
	HoraEnvioReporte        string   `json:"horaEnvioReporte"`
	HabilitarNotificaciones bool     `json:"habilitarNotificaciones"`
}

// ConfiguracionPorDefecto es el estado inicial al arrancar el proceso.
func ConfiguracionPorDefecto() ConfiguracionCorreo {
	return ConfiguracionCorreo{
		Puerto:                  587,
		CorreosDestino:          []string{},
		HoraEnvioReporte:        "08:00",
		HabilitarNotificaciones: true,
	}
}
