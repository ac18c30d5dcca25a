package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_InMemoryCreatesMetadataTable(t *testing.T) {
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`INSERT INTO metadata(key, value) VALUES ('authToken', 'x')`)
	require.NoError(t, err)
}

func TestOpen_FileInNestedDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "bod.db")

	db, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// reopening runs migrations again without error
	db, err = Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestOpen_BadDirectory(t *testing.T) {
	_, err := Open(context.Background(), "/dev/null/bod.db")
	require.Error(t, err)
}
