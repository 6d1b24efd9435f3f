package reviews

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"craftedshots_backend/internals/features/reviews/model"
	"craftedshots_backend/internals/store"
)

type ReviewSeed struct {
	Name    string  `json:"name"`
	Image   string  `json:"image"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating"`
}

// SeedReviewsFromJSON memasukkan review dari file JSON. Review dengan nama
// yang sudah ada dilewati, jadi aman dijalankan berulang.
func SeedReviewsFromJSON(ctx context.Context, reviews store.Collection[model.ReviewModel], filePath string, log *zap.Logger) (int, error) {
	log.Info("📥 Membaca file seed", zap.String("file", filePath))

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var seeds []ReviewSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		return 0, fmt.Errorf("decode seed file: %w", err)
	}

	inserted := 0
	for _, s := range seeds {
		_, err := reviews.FindOne(ctx, store.Filter{"name": s.Name})
		if err == nil {
			log.Debug("ℹ️ review sudah ada, dilewati", zap.String("name", s.Name))
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			return inserted, err
		}

		if _, err := reviews.InsertOne(ctx, &model.ReviewModel{
			Name:    s.Name,
			Image:   s.Image,
			Details: s.Details,
			Rating:  s.Rating,
		}); err != nil {
			return inserted, fmt.Errorf("insert review %q: %w", s.Name, err)
		}
		inserted++
	}

	log.Info("✅ Seed reviews selesai", zap.Int("inserted", inserted), zap.Int("total", len(seeds)))
	return inserted, nil
}
