// Package testutil monta um banco sqlite em memória com o mesmo schema e a
// mesma configuração do gorm usados em produção.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/ponto-eletronico/internal/db"
	"github.com/BruksfildServices01/ponto-eletronico/internal/models"
)

func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_", "?", "_", "&", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	cfg := dbpkg.GormConfig()
	cfg.PrepareStmt = false

	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func CreateUser(t *testing.T, db *gorm.DB, name, email string) models.User {
	t.Helper()

	u := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "x",
		Role:         "FUNCIONARIO",
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}
