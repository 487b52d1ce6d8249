package seed

import (
	"context"

	"github.com/google/uuid"
	"github.com/spotplatform/seedgen/internal/schema"
	"github.com/spotplatform/seedgen/pkg/enums"
)

// reviewRatingWeights skews ratings positive: 2/3/10/35/50 across 1..5.
// Historical tuning values, kept as-is.
var reviewRatingWeights = []float64{0.02, 0.03, 0.10, 0.35, 0.50}

// reviewTextProbability is the chance a review carries templated text.
const reviewTextProbability = 0.8

// generateReviews attributes reviews to customers holding a COMPLETED order
// at the store, preferring customers who have not reviewed it yet and
// reusing one only once everyone has.
func (p *Pipeline) generateReviews(ctx context.Context, stores []Store, orders []Order) (int, error) {
	if err := p.sink.BeginStage(ctx, "Reviews"); err != nil {
		return 0, err
	}

	completedByStore := make(map[uuid.UUID][]Order)
	for _, o := range orders {
		if o.Status == enums.OrderStatusCompleted {
			completedByStore[o.StoreID] = append(completedByStore[o.StoreID], o)
		}
	}

	var rows []schema.Row

	for _, store := range stores {
		if store.Status != enums.StoreStatusApproved {
			continue
		}
		completed := completedByStore[store.ID]
		if len(completed) == 0 {
			continue
		}

		reviewed := make(map[int]struct{})
		for n := randRange(p.rng, p.cfg.ReviewsPerStore); n > 0; n-- {
			available := make([]Order, 0, len(completed))
			for _, o := range completed {
				if _, done := reviewed[o.UserID]; !done {
					available = append(available, o)
				}
			}
			if len(available) == 0 {
				available = completed
			}

			order := choice(p.rng, available)
			reviewed[order.UserID] = struct{}{}

			rating := weightedIndex(p.rng, reviewRatingWeights) + 1
			var content any
			if p.rng.Float64() < reviewTextProbability {
				content = choice(p.rng, reviewContents[rating])
			}
			createdAt := pastTimestamp(p.rng, p.now, 80, 0)

			rows = append(rows, schema.Row{
				newID(p.rng), store.ID, order.UserID, rating, content,
				false, nil, nil, createdAt, order.UserID,
				laterTimestamp(p.rng, createdAt), order.UserID,
			})
		}
	}

	if err := p.sink.Write(ctx, schema.TableReview, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}
