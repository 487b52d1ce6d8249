package seed

import (
	"testing"

	"github.com/google/uuid"
	"github.com/spotplatform/seedgen/internal/schema"
	"github.com/spotplatform/seedgen/pkg/enums"
)

func reviewsFixture(t *testing.T, seed int64) *captureSink {
	t.Helper()
	cfg := testSeedConfig()
	cfg.Users = 40
	cfg.Stores = 12
	capture, _ := runPipeline(t, cfg, seed)
	return capture
}

func TestGenerateReviewsRequireCompletedOrder(t *testing.T) {
	capture := reviewsFixture(t, 61)

	completed := map[uuid.UUID]map[int]struct{}{}
	for _, row := range capture.tables[schema.TableOrder] {
		if row[7].(enums.OrderStatus) != enums.OrderStatusCompleted {
			continue
		}
		storeID := row[2].(uuid.UUID)
		if completed[storeID] == nil {
			completed[storeID] = map[int]struct{}{}
		}
		completed[storeID][row[1].(int)] = struct{}{}
	}

	reviews := capture.tables[schema.TableReview]
	if len(reviews) == 0 {
		t.Fatal("fixture produced no reviews")
	}
	for _, row := range reviews {
		storeID := row[1].(uuid.UUID)
		userID := row[2].(int)
		if _, ok := completed[storeID][userID]; !ok {
			t.Fatalf("review by user %d at store %s without a completed order", userID, storeID)
		}
	}
}

func TestGenerateReviewsRatingsAndContent(t *testing.T) {
	capture := reviewsFixture(t, 62)

	templates := map[int]map[string]struct{}{}
	for rating, pool := range reviewContents {
		templates[rating] = map[string]struct{}{}
		for _, text := range pool {
			templates[rating][text] = struct{}{}
		}
	}

	for _, row := range capture.tables[schema.TableReview] {
		rating := row[3].(int)
		if rating < 1 || rating > 5 {
			t.Fatalf("rating %d out of range", rating)
		}
		if row[4] == nil {
			continue
		}
		content := row[4].(string)
		if _, ok := templates[rating][content]; !ok {
			t.Fatalf("review text %q is not a rating-%d template", content, rating)
		}
	}
}

func TestGenerateReviewsApprovedStoresOnly(t *testing.T) {
	capture := reviewsFixture(t, 63)
	approved := approvedStoreIDs(capture)

	for _, row := range capture.tables[schema.TableReview] {
		if _, ok := approved[row[1].(uuid.UUID)]; !ok {
			t.Fatalf("review attached to non-approved store %v", row[1])
		}
	}
}
