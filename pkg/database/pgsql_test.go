package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireTLS(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"url without query", "postgres://u:p@db:5432/invoices", "postgres://u:p@db:5432/invoices?sslmode=require"},
		{"url with query", "postgresql://db/invoices?application_name=dash", "postgresql://db/invoices?application_name=dash&sslmode=require"},
		{"url with sslmode", "postgres://db/invoices?sslmode=verify-full", "postgres://db/invoices?sslmode=verify-full"},
		{"keyword form", "host=db dbname=invoices", "host=db dbname=invoices sslmode=require"},
		{"keyword form with sslmode", "host=db sslmode=disable", "host=db sslmode=disable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RequireTLS(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPgxPool_EmptyURL(t *testing.T) {
	_, err := NewPgxPool(context.Background(), "", false)
	assert.Error(t, err)
}

func TestRunMigrations_UnknownDirection(t *testing.T) {
	_, err := RunMigrations("postgres://db/invoices", "file://migrations", "sideways")
	assert.ErrorContains(t, err, "unknown migration direction")
}
