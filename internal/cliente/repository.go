package cliente

import "gorm.io/gorm"

type Repository interface {
	Crear(db *gorm.DB, c *Cliente) error
	BuscarPorID(db *gorm.DB, id string) (*Cliente, error)
	ListarTodos(db *gorm.DB) ([]Cliente, error)
	Actualizar(db *gorm.DB, id string, cambios map[string]interface{}) error
	EliminarConDeudas(db *gorm.DB, id string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Crear(db *gorm.DB, c *Cliente) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id string) (*Cliente, error) {
	var c Cliente
	err := db.First(&c, "id = ?", id).Error
	return &c, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Cliente, error) {
	var clientes []Cliente
	err := db.Order("fecha_creacion ASC").Find(&clientes).Error
	return clientes, err
}

func (r *repositoryImpl) Actualizar(db *gorm.DB, id string, cambios map[string]interface{}) error {
	if len(cambios) == 0 {
		return nil
	}
	res := db.Model(&Cliente{}).Where("id = ?", id).Updates(cambios)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// EliminarConDeudas borra al cliente y todas sus deudas en una sola
// transacción: desde afuera la cascada es atómica.
func (r *repositoryImpl) EliminarConDeudas(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var c Cliente
		if err := tx.First(&c, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM deudas WHERE cliente_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&c).Error
	})
}
