package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDB() DBConfig {
	return DBConfig{
		Host:    "localhost",
		Port:    5432,
		User:    "postgres",
		DBName:  "stock_ledger",
		SSLMode: "disable",
		PoolMax: 25,
	}
}

func TestValidate_ConfiguracionCompleta(t *testing.T) {
	cfg := &Config{DB: validDB()}
	assert.NoError(t, cfg.Validate())
}

// Sin credenciales completas el arranque debe fallar, no degradar en silencio.
func TestValidate_FaltanVariables(t *testing.T) {
	cfg := &Config{DB: validDB()}
	cfg.DB.Host = ""
	cfg.DB.DBName = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_HOST")
	assert.Contains(t, err.Error(), "DB_NAME")
	assert.NotContains(t, err.Error(), "DB_USER")
}

func TestValidate_DatabaseURLBastaSola(t *testing.T) {
	cfg := &Config{DB: DBConfig{DatabaseURL: "postgresql://u:p@host:5432/db"}}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_PoolMaxPositivo(t *testing.T) {
	cfg := &Config{DB: validDB()}
	cfg.DB.PoolMax = 0
	assert.Error(t, cfg.Validate())
}

func TestDSN_EscapaCaracteresEspeciales(t *testing.T) {
	db := validDB()
	db.Password = "p@ss:w/ord"
	dsn := db.DSN()
	assert.Contains(t, dsn, "p%40ss%3Aw%2Ford", "la contraseña debe ir URL-encoded")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	db := validDB()
	db.DatabaseURL = "postgresql://u:p@otro:5432/db"
	assert.Equal(t, db.DatabaseURL, db.ConnectionString())
}
