package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/casestudy-api/pkg/config"
)

func TestDSNIsReadOnlyAndQuoted(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{Host: "db", Port: 5432, User: "reader", Password: "it's secret", Name: "case_studies", SSLMode: "require"})

	assert.True(t, strings.HasPrefix(dsn, "host=db port=5432 user=reader "))
	assert.Contains(t, dsn, `password='it\'s secret'`)
	assert.Contains(t, dsn, "default_transaction_read_only=on")
	assert.Contains(t, dsn, "sslmode=require")
}

func TestDSNQuotesEmptyValues(t *testing.T) {
	assert.Contains(t, DSN(config.DatabaseConfig{Host: "db"}), "password=''")
}
