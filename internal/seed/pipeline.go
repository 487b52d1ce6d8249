// Package seed implements the referentially-consistent data pipeline. Stages
// run strictly in order — users, categories, stores, menus, orders, reviews —
// and every stage only sees immutable views of what earlier stages produced,
// so a generated row can never reference an entity that does not exist yet.
package seed

import (
	"context"
	"math/rand"
	"time"

	"github.com/spotplatform/seedgen/internal/sink"
	"github.com/spotplatform/seedgen/pkg/config"
	pkgerrors "github.com/spotplatform/seedgen/pkg/errors"
	"github.com/spotplatform/seedgen/pkg/logger"
	"github.com/spotplatform/seedgen/pkg/security"
)

// systemActor is the audit sentinel for rows that predate any user in
// narrative time (categories).
const systemActor = 0

// Params packages the pipeline dependencies.
type Params struct {
	Config config.SeedConfig
	Sink   sink.Sink
	Hasher security.Hasher
	Logger *logger.Logger

	// Rand drives every draw, including UUIDs. Required.
	Rand *rand.Rand
	// Now anchors all generated timestamps; zero means the wall clock.
	Now time.Time
}

// Pipeline owns the per-run accumulators and random source. Not safe for
// concurrent use; generation is sequential by design.
type Pipeline struct {
	cfg    config.SeedConfig
	sink   sink.Sink
	hasher security.Hasher
	log    *logger.Logger
	rng    *rand.Rand
	now    time.Time

	orderSeq int
}

// Summary reports row counts per generated entity.
type Summary struct {
	Users       int
	Owners      int
	Categories  int
	Stores      int
	Menus       int
	MenuOptions int
	Orders      int
	Reviews     int
}

// New validates the wiring and builds a pipeline.
func New(p Params) (*Pipeline, error) {
	if p.Sink == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "sink required")
	}
	if p.Hasher == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "hasher required")
	}
	if p.Rand == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "random source required")
	}
	now := p.Now
	if now.IsZero() {
		now = time.Now()
	}
	return &Pipeline{
		cfg:    p.Config,
		sink:   p.Sink,
		hasher: p.Hasher,
		log:    p.Logger,
		rng:    p.Rand,
		now:    now,
	}, nil
}

// Run executes every stage top to bottom and returns the row counts. The
// first sink failure aborts the run.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	users, owners, err := p.generateUsers(ctx)
	if err != nil {
		return summary, err
	}
	summary.Users = len(users)
	summary.Owners = len(owners)
	p.logStage(ctx, "users", summary.Users)

	categories, err := p.generateCategories(ctx)
	if err != nil {
		return summary, err
	}
	summary.Categories = len(categories)
	p.logStage(ctx, "categories", summary.Categories)

	stores, err := p.generateStores(ctx, users, owners, categories)
	if err != nil {
		return summary, err
	}
	summary.Stores = len(stores)
	p.logStage(ctx, "stores", summary.Stores)

	menus, options, err := p.generateMenus(ctx, stores, users)
	if err != nil {
		return summary, err
	}
	summary.Menus = len(menus)
	summary.MenuOptions = len(options)
	p.logStage(ctx, "menus", summary.Menus)

	orders, err := p.generateOrders(ctx, users, owners, stores, menus, options)
	if err != nil {
		return summary, err
	}
	summary.Orders = len(orders)
	p.logStage(ctx, "orders", summary.Orders)

	reviews, err := p.generateReviews(ctx, stores, orders)
	if err != nil {
		return summary, err
	}
	summary.Reviews = reviews
	p.logStage(ctx, "reviews", summary.Reviews)

	return summary, nil
}

func (p *Pipeline) logStage(ctx context.Context, stage string, rows int) {
	if p.log == nil {
		return
	}
	lctx := p.log.WithFields(ctx, map[string]any{"stage": stage, "rows": rows})
	p.log.Info(lctx, "stage completed")
}
