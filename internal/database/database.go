package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open ouvre la base SQLite et retourne le handle GORM.
// Pas de variable globale : le handle est injecté explicitement
// dans chaque repository.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connexion à la base: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("accès au pool de connexions: %w", err)
	}

	// Une base en mémoire n'existe que pour la connexion qui l'a ouverte :
	// une seule connexion garantit que tout le processus voit la même base
	// et que chaque lecture-modification-écriture s'exécute en série.
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}
