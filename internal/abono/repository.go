package abono

import "gorm.io/gorm"

// Repository encapsula el acceso a datos de abonos.
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

func (r *Repository) Crear(a *Abono) error {
	return r.DB.Create(a).Error
}

func (r *Repository) BuscarPorID(id string) (*Abono, error) {
	var a Abono
	if err := r.DB.First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) ListarTodos() ([]Abono, error) {
	var abonos []Abono
	err := r.DB.Order("fecha_proximo_pago ASC").Find(&abonos).Error
	return abonos, err
}

// ListarPendientes devuelve los abonos aún no pagados en orden de creación.
func (r *Repository) ListarPendientes() ([]Abono, error) {
	var abonos []Abono
	err := r.DB.
		Where("estado = ?", EstadoPendiente).
		Order("fecha_creacion ASC").
		Find(&abonos).Error
	return abonos, err
}

// ActualizarCampos aplica una actualización parcial de columnas.
func (r *Repository) ActualizarCampos(id string, cambios map[string]interface{}) error {
	if len(cambios) == 0 {
		return nil
	}
	res := r.DB.Model(&Abono{}).Where("id = ?", id).Updates(cambios)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarcarPagado pone el estado en Pagado y nada más. Repetirlo sobre un abono
// ya pagado lo deja igual.
func (r *Repository) MarcarPagado(id string) error {
	return r.DB.Model(&Abono{}).
		Where("id = ?", id).
		Update("estado", EstadoPagado).Error
}

// EliminarPorID borra el abono; devuelve gorm.ErrRecordNotFound si no existía.
func (r *Repository) EliminarPorID(id string) error {
	res := r.DB.Delete(&Abono{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
