package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spotplatform/seedgen/internal/schema"
	"github.com/spotplatform/seedgen/pkg/enums"
)

// Store is the view menus, orders and reviews consume.
type Store struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	Status    enums.StoreStatus
}

// storeStatusWeights: 10% PENDING, 85% APPROVED, 5% REJECTED. Historical
// tuning values, kept as-is.
var (
	storeStatuses      = []enums.StoreStatus{enums.StoreStatusPending, enums.StoreStatusApproved, enums.StoreStatusRejected}
	storeStatusWeights = []float64{0.10, 0.85, 0.05}
)

// storeDeletedProbability is sampled independently from status.
const storeDeletedProbability = 0.05

// generateStores emits p_store plus the category and owner association rows.
// Owners come from the owner pool, falling back to any user when it is
// empty; an empty category view simply skips the associations.
func (p *Pipeline) generateStores(ctx context.Context, users, owners []int, categories []Category) ([]Store, error) {
	if err := p.sink.BeginStage(ctx, "Stores"); err != nil {
		return nil, err
	}

	stores := make([]Store, 0, p.cfg.Stores)
	storeRows := make([]schema.Row, 0, p.cfg.Stores)
	var categoryRows, ownerRows []schema.Row

	anyUser := func() int {
		if len(users) == 0 {
			return 1
		}
		return choice(p.rng, users)
	}

	for i := 0; i < p.cfg.Stores; i++ {
		id := newID(p.rng)
		name := choice(p.rng, companyNames) + " " + choice(p.rng, storeNameSuffixes)
		createdAt := pastTimestamp(p.rng, p.now, 365, 30)
		updatedAt := laterTimestamp(p.rng, createdAt)
		createdBy := anyUser()
		updatedBy := anyUser()

		status := storeStatuses[weightedIndex(p.rng, storeStatusWeights)]

		isDeleted := p.rng.Float64() < storeDeletedProbability
		var deletedAt any
		var deletedBy any
		if isDeleted {
			deletedAt = laterTimestamp(p.rng, createdAt)
			if len(users) > 0 {
				deletedBy = choice(p.rng, users)
			}
		}

		stores = append(stores, Store{ID: id, Name: name, CreatedAt: createdAt, Status: status})

		storeRows = append(storeRows, schema.Row{
			id, name, p.roadAddress(), p.storeAddressDetail(),
			p.phoneNumber(), "09:00:00", "22:00:00", status,
			isDeleted, deletedAt, deletedBy, createdAt, createdBy, updatedAt, updatedBy,
		})

		if len(categories) > 0 {
			count := randBetween(p.rng, 1, min(3, len(categories)))
			for _, idx := range sampleIndices(p.rng, len(categories), count) {
				categoryRows = append(categoryRows, schema.Row{
					newID(p.rng), id, categories[idx].ID, createdAt, createdBy,
					laterTimestamp(p.rng, createdAt), anyUser(), false, nil, nil,
				})
			}
		}

		ownerID := anyUser()
		if len(owners) > 0 {
			ownerID = choice(p.rng, owners)
		}
		ownerRows = append(ownerRows, schema.Row{
			newID(p.rng), id, ownerID, createdAt, createdBy,
			laterTimestamp(p.rng, createdAt), anyUser(), false, nil, nil,
		})
	}

	if err := p.sink.Write(ctx, schema.TableStore, storeRows); err != nil {
		return nil, err
	}
	if err := p.sink.Write(ctx, schema.TableStoreCategory, categoryRows); err != nil {
		return nil, err
	}
	if err := p.sink.Write(ctx, schema.TableStoreUser, ownerRows); err != nil {
		return nil, err
	}
	return stores, nil
}

func (p *Pipeline) storeAddressDetail() string {
	if p.rng.Intn(2) == 0 {
		return choice(p.rng, buildingNames)
	}
	return fmt.Sprintf("%d층", randBetween(p.rng, 1, 10))
}

func (p *Pipeline) phoneNumber() string {
	return fmt.Sprintf("02-%04d-%04d", randBetween(p.rng, 100, 9999), randBetween(p.rng, 0, 9999))
}
