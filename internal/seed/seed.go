// Package seed carga el juego de datos fijo con el que arranca el proceso:
// 90 clientes, entre una y cuatro deudas de servicios por cliente y abonos
// pendientes para los primeros 18. La semilla del generador está fija para
// que el estado inicial sea siempre el mismo.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/webdatta/api-cobranzas/internal/abono"
	"github.com/webdatta/api-cobranzas/internal/cliente"
	"github.com/webdatta/api-cobranzas/internal/deuda"
)

var nombres = []string{
	"Juan Pérez", "María García", "Carlos López", "Ana Martínez", "Luis Rodríguez",
	"Carmen Sánchez", "José González", "Isabel Fernández", "Manuel Díaz", "Rosa Torres",
	"Antonio Ruiz", "Francisca Moreno", "Francisco Jiménez", "Teresa Álvarez", "Rafael Romero",
	"Pilar Navarro", "Miguel Ramos", "Dolores Gil", "Pedro Serrano", "Concepción Blanco",
	"Jesús Vega", "Josefa Molina", "Ángel Castro", "Mercedes Ortega", "Daniel Delgado",
	"María José Herrera", "David Peña", "Antonia Guerrero", "Alejandro Prieto", "Encarnación Méndez",
	"Javier Cruz", "Cristina Iglesias", "Pablo Vargas", "Amparo Calvo", "Adrián Rubio",
	"Esperanza Santana", "Iván Aguilar", "Inmaculada Campos", "Rubén Vázquez", "Milagros León",
	"Sergio Cabrera", "Remedios Ramírez", "Fernando Garrido", "Soledad Morales", "Alberto Marín",
	"Araceli Domínguez", "Roberto Santos", "Manuela Soto", "Eduardo Herrero", "Concepción Lorenzo",
	"Víctor Hidalgo", "Estrella Montero", "Ricardo Ibáñez", "Victoria Durán", "Ignacio Moya",
	"Purificación Ferrer", "Raúl Santiago", "Begoña Caballero", "Gabriel Carrasco", "Natividad Nieto",
	"Emilio Cano", "Rocío Reyes", "Gonzalo Cortés", "Virtudes Lozano", "Marcos Gutiérrez",
	"Ascensión Benítez", "Enrique Valdés", "Angustias Moreno", "Tomás Castillo", "Sagrario Suárez",
	"Lorenzo Hernández", "Guillermo Román", "Nieves Velasco", "César Medina", "Amparo Sanz",
	"Salvador Silva", "Luz Crespo", "Joaquín Molina", "Consolación Montoya", "Andrés Galván",
	"Rosario Pascual", "Hugo Carmona", "Milagros Villanueva", "Arturo Mesa", "Guadalupe Herrera",
	"Nicolás Espinosa", "Remedios López", "Alfredo Rojas", "Esperanza Aguilera", "Jaime Flores",
}

var dominios = []string{"gmail.com", "hotmail.com", "yahoo.com", "outlook.com", "empresa.com", "negocio.net"}

var servicios = []string{
	"Hosting web mensual", "Dominio anual", "Desarrollo web", "Mantenimiento web",
	"Diseño gráfico", "Marketing digital", "SEO mensual", "Tienda online",
	"Aplicación móvil", "Consultoría IT", "Backup en la nube", "SSL certificado",
	"Optimización web", "Campaña publicitaria", "Rediseño website", "E-commerce",
	"Soporte técnico", "Migración de datos", "Integración API", "Sistema CRM",
}

var frecuencias = []string{
	abono.FrecuenciaDiaria,
	abono.FrecuenciaSemanal,
	abono.FrecuenciaQuincenal,
	abono.FrecuenciaMensual,
}

var acentos = strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n", "ç", "c")

func usuarioDeCorreo(nombre string, indice int) string {
	plano := acentos.Replace(strings.ToLower(nombre))
	plano = strings.ReplaceAll(plano, " ", "")
	return fmt.Sprintf("%s%d", plano, indice)
}

// Cargar siembra la base si todavía está vacía. Volver a llamarlo con datos
// ya cargados no hace nada.
func Cargar(db *gorm.DB) error {
	var existentes int64
	if err := db.Model(&cliente.Cliente{}).Count(&existentes).Error; err != nil {
		return err
	}
	if existentes > 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(20240101))
	ahora := time.Now()
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)

	return db.Transaction(func(tx *gorm.DB) error {
		clientes := make([]cliente.Cliente, 0, len(nombres))
		for i, nombre := range nombres {
			c := cliente.Cliente{
				Nombre:        nombre,
				Email:         usuarioDeCorreo(nombre, i) + "@" + dominios[i%len(dominios)],
				Telefono:      fmt.Sprintf("+52 55 %04d-%04d", 1000+rng.Intn(9000), 1000+rng.Intn(9000)),
				FechaCreacion: base.AddDate(0, 0, rng.Intn(365)),
			}
			if err := tx.Create(&c).Error; err != nil {
				return err
			}
			clientes = append(clientes, c)
		}

		deudasPorCliente := make(map[string][]deuda.Deuda, len(clientes))
		for _, c := range clientes {
			cantidad := rng.Intn(4) + 1
			for i := 0; i < cantidad; i++ {
				costo := float64(500 + rng.Intn(8000))
				margen := 0.3 + rng.Float64()*0.5
				diasBase := rng.Intn(61) - 30

				estado := deuda.EstadoPendiente
				switch {
				case diasBase < -7:
					if rng.Float64() > 0.3 {
						estado = deuda.EstadoVencida
					} else {
						estado = deuda.EstadoEnProceso
					}
				case diasBase < 0:
					if rng.Float64() > 0.5 {
						estado = deuda.EstadoVencida
					}
				case rng.Float64() > 0.8:
					estado = deuda.EstadoPagada
				}

				d := deuda.Deuda{
					ClienteID:        c.ID,
					Cliente:          c.Nombre,
					FechaVencimiento: ahora.AddDate(0, 0, diasBase),
					Monto:            float64(int(costo * (1 + margen))),
					CostoProveedor:   costo,
					Estado:           estado,
					Descripcion:      servicios[rng.Intn(len(servicios))],
				}
				if err := tx.Create(&d).Error; err != nil {
					return err
				}
				if estado != deuda.EstadoPagada {
					deudasPorCliente[c.ID] = append(deudasPorCliente[c.ID], d)
				}
			}
		}

		// Abonos pendientes para los primeros 18 clientes que tengan deudas
		// activas, congelando la lista de deudas y su costo como al crearlos
		// a mano.
		for _, c := range clientes[:18] {
			activas := deudasPorCliente[c.ID]
			if len(activas) == 0 {
				continue
			}
			frecuencia := frecuencias[rng.Intn(len(frecuencias))]
			creado := ahora.AddDate(0, 0, -rng.Intn(30))
			var monto float64
			ids := make([]string, 0, len(activas))
			for _, d := range activas {
				monto += d.CostoProveedor
				ids = append(ids, d.ID)
			}
			a := abono.Abono{
				ClienteID:        c.ID,
				Cliente:          c.Nombre,
				Frecuencia:       frecuencia,
				DeudasIncluidas:  ids,
				MontoTotal:       monto,
				FechaCreacion:    creado,
				FechaProximoPago: ahora.AddDate(0, 0, rng.Intn(16)-5),
				Estado:           abono.EstadoPendiente,
				Notas:            "Abono " + strings.ToLower(frecuencia) + " configurado automáticamente",
			}
			if err := tx.Create(&a).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
