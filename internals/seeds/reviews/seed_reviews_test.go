package reviews

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"craftedshots_backend/internals/features/reviews/model"
	"craftedshots_backend/internals/store"
)

func TestSeedReviewsFromJSONIsRepeatable(t *testing.T) {
	col, err := store.NewMemoryCollection[model.ReviewModel]()
	require.NoError(t, err)
	ctx := context.Background()

	n, err := SeedReviewsFromJSON(ctx, col, "data_reviews.json", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = SeedReviewsFromJSON(ctx, col, "data_reviews.json", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	all, err := col.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSeedReviewsFromJSONBadInput(t *testing.T) {
	col, err := store.NewMemoryCollection[model.ReviewModel]()
	require.NoError(t, err)
	ctx := context.Background()

	_, err = SeedReviewsFromJSON(ctx, col, filepath.Join(t.TempDir(), "missing.json"), zap.NewNop())
	assert.Error(t, err)

	broken := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"name":`), 0o600))
	_, err = SeedReviewsFromJSON(ctx, col, broken, zap.NewNop())
	assert.Error(t, err)
}
