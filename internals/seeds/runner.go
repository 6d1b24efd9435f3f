package seeds

import (
	"context"

	"go.uber.org/zap"

	database "craftedshots_backend/internals/databases"
	"craftedshots_backend/internals/seeds/reviews"
)

// RunAllSeeds dijalankan saat startup kalau SEED_REVIEWS_FILE di-set.
// Gagal seed tidak menghentikan server.
func RunAllSeeds(ctx context.Context, cols *database.Collections, reviewsFile string, log *zap.Logger) {
	if reviewsFile == "" {
		return
	}

	//* Reviews
	if _, err := reviews.SeedReviewsFromJSON(ctx, cols.Reviews, reviewsFile, log); err != nil {
		log.Warn("⚠️ Seed reviews gagal", zap.Error(err))
	}
}
