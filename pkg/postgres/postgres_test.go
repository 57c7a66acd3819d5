package postgres_test

import (
	"testing"

	"github.com/Astemirdum/circulation-service/pkg/postgres"
	"github.com/stretchr/testify/require"
)

func TestDB_DSN(t *testing.T) {
	cfg := postgres.DB{
		Host:     "db",
		Port:     "5433",
		Username: "library",
		Password: "p@ss word",
		NameDB:   "circulation",
		SSLMode:  "disable",
	}
	require.Equal(t, "postgres://library:p%40ss%20word@db:5433/circulation?sslmode=disable", cfg.DSN())
}
