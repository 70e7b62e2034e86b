package presupuesto

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/webdatta/api-cobranzas/internal/abono"
	"github.com/webdatta/api-cobranzas/internal/cliente"
	"github.com/webdatta/api-cobranzas/internal/deuda"
)

var (
	ErrSeleccionVacia        = errors.New("la selección no puede estar vacía")
	ErrTipoInvalido          = errors.New("tipo de obligación inválido")
	ErrClienteSinDeudas      = errors.New("el cliente no tiene deudas activas")
	ErrAbonoNoEncontrado     = errors.New("abono no encontrado")
	ErrClienteNoEncontrado   = errors.New("cliente no encontrado")
	ErrSeleccionSinReferente = errors.New("la obligación no indica abono ni cliente")
)

// Service implementa la calculadora de presupuesto y su ejecución en lote.
type Service struct {
	DB       *gorm.DB
	Abonos   *abono.Repository
	Deudas   *deuda.Repository
	Clientes cliente.Repository
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		DB:       db,
		Abonos:   abono.NewRepository(db),
		Deudas:   deuda.NewRepository(db),
		Clientes: cliente.NewRepository(),
	}
}

// CalcularPlan arma el plan de pagos que el monto disponible alcanza a
// cubrir. Es un recorrido codicioso por fecha: se aceptan obligaciones en
// orden de urgencia mientras quepan en lo que va quedando, y la que no cabe
// se descarta para siempre aunque más adelante sobre plata. No maximiza el
// monto cubierto, respeta la prioridad por fecha.
func (s *Service) CalcularPlan(montoDisponible float64) (Plan, error) {
	plan := Plan{
		MontoDisponible: montoDisponible,
		Obligaciones:    []Obligacion{},
	}
	if montoDisponible <= 0 {
		return plan, nil
	}

	candidatas, err := s.candidatas()
	if err != nil {
		return Plan{}, err
	}

	// Orden estable: las de fecha más próxima primero; en empate conserva
	// el orden de armado (abonos existentes antes que sintéticas).
	sort.SliceStable(candidatas, func(i, j int) bool {
		return candidatas[i].FechaPago.Before(candidatas[j].FechaPago)
	})

	restante := montoDisponible
	for _, c := range candidatas {
		if c.Monto > restante {
			continue
		}
		c.Prioridad = len(plan.Obligaciones) + 1
		plan.Obligaciones = append(plan.Obligaciones, c)
		restante -= c.Monto
	}
	plan.MontoCubierto = montoDisponible - restante
	plan.Restante = restante
	return plan, nil
}

// candidatas junta los abonos pendientes con una obligación sintética por
// cada cliente que tiene deudas activas y ningún abono pendiente.
func (s *Service) candidatas() ([]Obligacion, error) {
	pendientes, err := s.Abonos.ListarPendientes()
	if err != nil {
		return nil, err
	}

	candidatas := make([]Obligacion, 0, len(pendientes))
	conAbono := make(map[string]bool, len(pendientes))
	for _, a := range pendientes {
		conAbono[a.ClienteID] = true
		candidatas = append(candidatas, Obligacion{
			Tipo:      TipoExistente,
			AbonoID:   a.ID,
			ClienteID: a.ClienteID,
			Cliente:   a.Cliente,
			Monto:     a.MontoTotal,
			FechaPago: a.FechaProximoPago,
		})
	}

	activas, err := s.Deudas.ListarActivas()
	if err != nil {
		return nil, err
	}
	type acumulado struct {
		monto       float64
		vencimiento time.Time
		cantidad    int
	}
	porCliente := make(map[string]*acumulado)
	for _, d := range activas {
		acc, ok := porCliente[d.ClienteID]
		if !ok {
			// ListarActivas viene ordenada por vencimiento, así que la
			// primera deuda de cada cliente trae su vencimiento más próximo.
			acc = &acumulado{vencimiento: d.FechaVencimiento}
			porCliente[d.ClienteID] = acc
		}
		acc.monto += d.CostoProveedor
		acc.cantidad++
	}

	clientes, err := s.Clientes.ListarTodos(s.DB)
	if err != nil {
		return nil, err
	}
	for _, c := range clientes {
		acc, tiene := porCliente[c.ID]
		if !tiene || conAbono[c.ID] {
			continue
		}
		candidatas = append(candidatas, Obligacion{
			Tipo:          TipoNuevo,
			ClienteID:     c.ID,
			Cliente:       c.Nombre,
			Monto:         acc.monto,
			FechaPago:     acc.vencimiento,
			DeudasActivas: acc.cantidad,
		})
	}
	return candidatas, nil
}

// AplicarSeleccion ejecuta la selección confirmada como una sola unidad:
// marca pagados los abonos existentes y crea (ya pagados) los abonos de los
// clientes seleccionados. Todo corre dentro de una transacción; si algo
// falla a mitad de lote no queda estado parcial.
func (s *Service) AplicarSeleccion(seleccion []SeleccionItem) (ResultadoAplicacion, error) {
	if len(seleccion) == 0 {
		return ResultadoAplicacion{}, ErrSeleccionVacia
	}

	var resultado ResultadoAplicacion
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		abonos := s.Abonos.WithDB(tx)
		deudas := s.Deudas.WithDB(tx)
		ahora := time.Now()

		for _, item := range seleccion {
			switch item.Tipo {
			case TipoExistente:
				if item.AbonoID == "" {
					return ErrSeleccionSinReferente
				}
				a, err := abonos.BuscarPorID(item.AbonoID)
				if err != nil {
					return fmt.Errorf("%w: %s", ErrAbonoNoEncontrado, item.AbonoID)
				}
				if err := abonos.MarcarPagado(a.ID); err != nil {
					return err
				}
				resultado.MarcadosPagados++
				resultado.MontoProcesado += a.MontoTotal

			case TipoNuevo:
				if item.ClienteID == "" {
					return ErrSeleccionSinReferente
				}
				c, err := s.Clientes.BuscarPorID(tx, item.ClienteID)
				if err != nil {
					return fmt.Errorf("%w: %s", ErrClienteNoEncontrado, item.ClienteID)
				}
				// El monto se recalcula acá, al momento de ejecutar, no se
				// reutiliza el del plan: las deudas pudieron cambiar entre
				// el cálculo y la confirmación.
				activas, err := deudas.ListarActivasPorCliente(c.ID)
				if err != nil {
					return err
				}
				if len(activas) == 0 {
					return fmt.Errorf("%w: %s", ErrClienteSinDeudas, c.ID)
				}
				var monto float64
				ids := make([]string, 0, len(activas))
				for _, d := range activas {
					monto += d.CostoProveedor
					ids = append(ids, d.ID)
				}
				nuevo := abono.Abono{
					ClienteID:        c.ID,
					Cliente:          c.Nombre,
					Frecuencia:       abono.FrecuenciaMensual,
					DeudasIncluidas:  ids,
					MontoTotal:       monto,
					FechaCreacion:    ahora,
					FechaProximoPago: abono.CalcularProximoPago(ahora, abono.FrecuenciaMensual),
					Estado:           abono.EstadoPagado,
					Notas:            "Generado desde la calculadora de presupuesto",
				}
				if err := abonos.Crear(&nuevo); err != nil {
					return err
				}
				resultado.AbonosCreados++
				resultado.MontoProcesado += monto

			default:
				return fmt.Errorf("%w: %q", ErrTipoInvalido, item.Tipo)
			}
		}
		return nil
	})
	if err != nil {
		return ResultadoAplicacion{}, err
	}
	return resultado, nil
}
