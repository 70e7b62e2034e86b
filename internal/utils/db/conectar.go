package db

import (
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// dsnPorDefecto mantiene toda la base en memoria: el estado vive lo que
// vive el proceso y se vuelve a sembrar en el próximo arranque.
const dsnPorDefecto = "file::memory:?cache=shared"

// Abrir abre la base SQLite del proceso. DB_DSN permite apuntar a otro
// nombre de base en memoria (útil para correr varias instancias en pruebas).
func Abrir() (*gorm.DB, error) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = dsnPorDefecto
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
}
