package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/webdatta/api-cobranzas/internal/abono"
	"github.com/webdatta/api-cobranzas/internal/cliente"
	"github.com/webdatta/api-cobranzas/internal/correo"
	"github.com/webdatta/api-cobranzas/internal/deuda"
	"github.com/webdatta/api-cobranzas/internal/middleware"
	"github.com/webdatta/api-cobranzas/internal/presupuesto"
	"github.com/webdatta/api-cobranzas/internal/resumen"
	"github.com/webdatta/api-cobranzas/internal/seed"
	"github.com/webdatta/api-cobranzas/internal/utils/db"
)

func main() {
	_ = godotenv.Load()
	logger := middleware.NewLogger(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	base, err := db.Abrir()
	if err != nil {
		logger.Fatal("error al abrir la base", zap.Error(err))
	}

	if err := base.AutoMigrate(
		&cliente.Cliente{},
		&deuda.Deuda{},
		&abono.Abono{},
	); err != nil {
		logger.Fatal("error en AutoMigrate", zap.Error(err))
	}

	if err := seed.Cargar(base); err != nil {
		logger.Fatal("error al sembrar los datos iniciales", zap.Error(err))
	}

	// Handlers
	clienteHandler := cliente.NewHandler(base)
	deudaHandler := deuda.NewHandler(base)
	abonoHandler := abono.NewHandler(base)
	correoHandler := correo.NewHandler()
	resumenHandler := resumen.NewHandler(base)
	presupuestoHandler := presupuesto.NewHandler(base)

	// Router
	r := mux.NewRouter()
	r.Use(middleware.RegistroSolicitudes(logger))

	// Rutas de clientes
	r.HandleFunc("/clientes", clienteHandler.Crear).Methods("POST")
	r.HandleFunc("/clientes", clienteHandler.Listar).Methods("GET")
	r.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/clientes/{id}", clienteHandler.Actualizar).Methods("PUT")
	r.HandleFunc("/clientes/{id}", clienteHandler.Eliminar).Methods("DELETE")
	r.HandleFunc("/clientes/{id}/deudas", deudaHandler.ListarPorCliente).Methods("GET")

	// Rutas de deudas
	r.HandleFunc("/deudas", deudaHandler.Crear).Methods("POST")
	r.HandleFunc("/deudas", deudaHandler.Listar).Methods("GET")
	r.HandleFunc("/deudas/{id}", deudaHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/deudas/{id}", deudaHandler.Actualizar).Methods("PUT")
	r.HandleFunc("/deudas/{id}", deudaHandler.Eliminar).Methods("DELETE")

	// Rutas de abonos
	r.HandleFunc("/abonos", abonoHandler.Crear).Methods("POST")
	r.HandleFunc("/abonos", abonoHandler.Listar).Methods("GET")
	r.HandleFunc("/abonos/{id}", abonoHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/abonos/{id}", abonoHandler.Actualizar).Methods("PUT")
	r.HandleFunc("/abonos/{id}", abonoHandler.Eliminar).Methods("DELETE")
	r.HandleFunc("/abonos/{id}/pagar", abonoHandler.MarcarPagado).Methods("PUT")

	// Rutas del resumen del tablero
	r.HandleFunc("/resumen", resumenHandler.Resumen).Methods("GET")
	r.HandleFunc("/resumen/clientes-con-deudas", resumenHandler.ClientesConDeudas).Methods("GET")
	r.HandleFunc("/resumen/vencen-hoy", resumenHandler.VencenHoy).Methods("GET")
	r.HandleFunc("/resumen/vencen-manana", resumenHandler.VencenManana).Methods("GET")

	// Rutas de la calculadora de presupuesto
	r.HandleFunc("/presupuesto/calcular", presupuestoHandler.Calcular).Methods("POST")
	r.HandleFunc("/presupuesto/aplicar", presupuestoHandler.Aplicar).Methods("POST")

	// Rutas de configuración de correo
	r.HandleFunc("/configuracion-correo", correoHandler.Obtener).Methods("GET")
	r.HandleFunc("/configuracion-correo", correoHandler.Actualizar).Methods("PUT")
	r.HandleFunc("/configuracion-correo/destinatarios", correoHandler.AgregarDestinatario).Methods("POST")
	r.HandleFunc("/configuracion-correo/destinatarios", correoHandler.EliminarDestinatario).Methods("DELETE")
	r.HandleFunc("/configuracion-correo/reporte-prueba", correoHandler.EnviarReportePrueba).Methods("POST")

	manejador := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}).Handler(r)

	puerto := os.Getenv("PORT")
	if puerto == "" {
		puerto = "8080"
	}

	logger.Info("servidor escuchando", zap.String("puerto", puerto))
	if err := http.ListenAndServe(":"+puerto, manejador); err != nil {
		logger.Fatal("servidor detenido", zap.Error(err))
	}
}
