package projects

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Prakul111/vibe-code-project/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping postgres integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := storage.NewPool(ctx, url)
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(ctx, pool))
	t.Cleanup(pool.Close)

	return pool
}

func TestRepository_CreateWithMessage(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewRepository(pool)

	project, err := repo.CreateWithMessage(ctx, "swift-golden-comet", "Build a landing page")
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, project.ID) })

	assert.NotEmpty(t, project.ID)
	assert.Equal(t, "swift-golden-comet", project.Name)

	var role, msgType, content string
	err = pool.QueryRow(ctx,
		`SELECT role, type, content FROM messages WHERE project_id = $1`, project.ID,
	).Scan(&role, &msgType, &content)
	require.NoError(t, err)
	assert.Equal(t, "USER", role)
	assert.Equal(t, "RESULT", msgType)
	assert.Equal(t, "Build a landing page", content)

	got, err := repo.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, project.Name, got.Name)
}

func TestRepository_GetMissing(t *testing.T) {
	pool := setupTestDB(t)

	_, err := NewRepository(pool).Get(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestRepository_ListOrderedByUpdateDesc(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewRepository(pool)

	older, err := repo.CreateWithMessage(ctx, "older", "first")
	require.NoError(t, err)
	newer, err := repo.CreateWithMessage(ctx, "newer", "second")
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DELETE FROM projects WHERE id IN ($1, $2)`, older.ID, newer.ID)
	})

	_, err = pool.Exec(ctx, `UPDATE projects SET update_at = NOW() - INTERVAL '1 hour' WHERE id = $1`, older.ID)
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)

	olderIdx, newerIdx := -1, -1
	for i, p := range list {
		switch p.ID {
		case older.ID:
			olderIdx = i
		case newer.ID:
			newerIdx = i
		}
	}

	require.NotEqual(t, -1, olderIdx)
	require.NotEqual(t, -1, newerIdx)
	assert.Less(t, newerIdx, olderIdx)
}

func TestRepository_ListEqualTimestampsHaveStableOrder(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewRepository(pool)

	ids := []string{"order-test-b", "order-test-c", "order-test-a"}
	for _, id := range ids {
		_, err := pool.Exec(ctx, `
			INSERT INTO projects (id, name, create_at, update_at)
			VALUES ($1, $1, '2999-01-01T00:00:00Z', '2999-01-01T00:00:00Z')`, id)
		require.NoError(t, err)
	}
	t.Cleanup(func() { _, _ = pool.Exec(ctx, `DELETE FROM projects WHERE id = ANY($1)`, ids) })

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(list), 3)

	assert.Equal(t, []string{"order-test-c", "order-test-b", "order-test-a"}, []string{list[0].ID, list[1].ID, list[2].ID})
}
