package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/foodtruck-service/internal/domain"
	"github.com/foodtruck-service/internal/repository/file"
)

func writeSnapshot(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestSnapshotRepository_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	writeSnapshot(t, path, `[{"Status":"APPROVED","Latitude":37.0,"Longitude":-122.0,"Name":"Taco Cart"}]`)

	repo := file.NewSnapshotRepository(path, zap.NewNop())

	node, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.KindSequence, node.Kind)
	require.Len(t, node.Items, 1)

	name, ok := node.Items[0].Get("Name")
	require.True(t, ok)
	assert.Equal(t, "Taco Cart", name.Str)
}

func TestSnapshotRepository_ReadsFreshEveryCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	writeSnapshot(t, path, `[{"Name":"First"}]`)

	repo := file.NewSnapshotRepository(path, zap.NewNop())
	ctx := context.Background()

	first, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, first.Items, 1)

	writeSnapshot(t, path, `[{"Name":"First"},{"Name":"Second"}]`)

	second, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, second.Items, 2)
}

func TestSnapshotRepository_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		repo := file.NewSnapshotRepository(filepath.Join(dir, "absent.json"), zap.NewNop())
		_, err := repo.Load(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		writeSnapshot(t, path, `[{"Name": "Taco"`)

		repo := file.NewSnapshotRepository(path, zap.NewNop())
		_, err := repo.Load(context.Background())
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		path := filepath.Join(dir, "ok.json")
		writeSnapshot(t, path, `[]`)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		repo := file.NewSnapshotRepository(path, zap.NewNop())
		_, err := repo.Load(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
