package seed

import (
	"context"

	"github.com/google/uuid"
	"github.com/spotplatform/seedgen/internal/schema"
)

// Category is the view stores consume.
type Category struct {
	ID   uuid.UUID
	Name string
}

// generateCategories emits the fixed vocabulary, cycling when the configured
// count exceeds it. Categories predate every user in narrative time, so the
// audit actor is the system sentinel and timestamps sit in a historical
// window well before user creation.
func (p *Pipeline) generateCategories(ctx context.Context) ([]Category, error) {
	if err := p.sink.BeginStage(ctx, "Categories"); err != nil {
		return nil, err
	}

	categories := make([]Category, 0, p.cfg.Categories)
	rows := make([]schema.Row, 0, p.cfg.Categories)

	for i := 0; i < p.cfg.Categories; i++ {
		name := categoryNames[i%len(categoryNames)]
		createdAt := pastTimestamp(p.rng, p.now, 180, 150)
		updatedAt := laterTimestamp(p.rng, createdAt)
		id := newID(p.rng)

		categories = append(categories, Category{ID: id, Name: name})
		rows = append(rows, schema.Row{
			id, name, false, nil, nil, createdAt, systemActor, updatedAt, systemActor,
		})
	}

	if err := p.sink.Write(ctx, schema.TableCategory, rows); err != nil {
		return nil, err
	}
	return categories, nil
}
