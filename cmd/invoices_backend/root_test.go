package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/repositories/database/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd(testLogger())

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"serve", "migrate", "seed"})
}

func TestMigrateCmd_UnknownDirection(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	cmd := newRootCmd(testLogger())
	cmd.SetArgs([]string{"migrate", "sideways"})

	err := cmd.Execute()
	assert.ErrorContains(t, err, "unknown direction")
}

func TestRootCmd_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongo")
	cmd := newRootCmd(testLogger())
	cmd.SetArgs([]string{"migrate"})

	assert.Error(t, cmd.Execute())
}

func TestSeedCmd_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.db")
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", path)

	for i := 0; i < 2; i++ {
		cmd := newRootCmd(testLogger())
		cmd.SetArgs([]string{"seed"})
		require.NoError(t, cmd.ExecuteContext(context.Background()))
	}

	store, err := sqlite.Open(path)
	require.NoError(t, err)
	defer store.Close()

	customers, err := sqlite.NewRepositoryProvider(store).CustomerRepo.ListCustomers(context.Background())
	require.NoError(t, err)
	assert.Len(t, customers, len(placeholderCustomers))
	assert.Equal(t, "Amy Burns", customers[0].Name)
}
