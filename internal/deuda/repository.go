package deuda

import "gorm.io/gorm"

// Repository encapsula el acceso a datos de deudas.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB devuelve una copia del repo usando un *gorm.DB específico (ej.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

func (r *Repository) Crear(d *Deuda) error {
	return r.DB.Create(d).Error
}

func (r *Repository) BuscarPorID(id string) (*Deuda, error) {
	var d Deuda
	if err := r.DB.First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) ListarTodas() ([]Deuda, error) {
	var deudas []Deuda
	err := r.DB.Order("fecha_vencimiento ASC").Find(&deudas).Error
	return deudas, err
}

func (r *Repository) ListarPorCliente(clienteID string) ([]Deuda, error) {
	var deudas []Deuda
	err := r.DB.
		Where("cliente_id = ?", clienteID).
		Order("fecha_vencimiento ASC").
		Find(&deudas).Error
	return deudas, err
}

// ListarActivas devuelve todas las deudas en cualquier estado distinto de
// Pagada, ordenadas por vencimiento.
func (r *Repository) ListarActivas() ([]Deuda, error) {
	var deudas []Deuda
	err := r.DB.
		Where("estado <> ?", EstadoPagada).
		Order("fecha_vencimiento ASC").
		Find(&deudas).Error
	return deudas, err
}

// ListarActivasPorCliente devuelve las deudas no pagadas de un cliente.
func (r *Repository) ListarActivasPorCliente(clienteID string) ([]Deuda, error) {
	var deudas []Deuda
	err := r.DB.
		Where("cliente_id = ? AND estado <> ?", clienteID, EstadoPagada).
		Order("fecha_vencimiento ASC").
		Find(&deudas).Error
	return deudas, err
}

// ActualizarCampos aplica una actualización parcial de columnas.
func (r *Repository) ActualizarCampos(id string, cambios map[string]interface{}) error {
	if len(cambios) == 0 {
		return nil
	}
	res := r.DB.Model(&Deuda{}).Where("id = ?", id).Updates(cambios)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// EliminarPorID borra la deuda; devuelve gorm.ErrRecordNotFound si no existía.
func (r *Repository) EliminarPorID(id string) error {
	res := r.DB.Delete(&Deuda{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
