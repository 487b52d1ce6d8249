package seed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/spotplatform/seedgen/internal/schema"
	"github.com/spotplatform/seedgen/pkg/enums"
)

// Menu is the view orders consume; Price is the live menu price in won.
type Menu struct {
	ID      uuid.UUID
	StoreID uuid.UUID
	Name    string
	Price   int
}

// MenuOption is the option view orders snapshot from.
type MenuOption struct {
	ID     uuid.UUID
	MenuID uuid.UUID
	Name   string
	Detail string
	Price  int
}

// generateMenus emits menus, options and origin records for APPROVED stores
// only. Each store gets one cuisine template so its menu reads coherently.
// Option templates are drawn without replacement per menu item, which is what
// keeps option names unique within an item; origin templates may repeat.
func (p *Pipeline) generateMenus(ctx context.Context, stores []Store, users []int) ([]Menu, []MenuOption, error) {
	if err := p.sink.BeginStage(ctx, "Menus"); err != nil {
		return nil, nil, err
	}

	var menus []Menu
	var options []MenuOption
	var menuRows, optionRows, originRows []schema.Row

	anyUser := func() int {
		if len(users) == 0 {
			return 1
		}
		return choice(p.rng, users)
	}

	for _, store := range stores {
		if store.Status != enums.StoreStatusApproved {
			continue
		}

		cuisine := choice(p.rng, menuCuisines)
		namePool := menuTemplates[cuisine]

		for j := 0; j < randRange(p.rng, p.cfg.MenusPerStore); j++ {
			menuID := newID(p.rng)
			name := choice(p.rng, namePool)
			if p.rng.Float64() > 0.5 {
				name += " " + choice(p.rng, menuNameSuffixes)
			}

			price := randBetween(p.rng, 5, 50) * 1000
			createdAt := store.CreatedAt.Add(time.Duration(p.rng.Intn(31)) * 24 * time.Hour)
			createdBy := anyUser()

			menus = append(menus, Menu{ID: menuID, StoreID: store.ID, Name: name, Price: price})

			menuRows = append(menuRows, schema.Row{
				menuID, store.ID, name, cuisine, price, choice(p.rng, menuDescriptions), nil,
				p.rng.Float64() > 0.1, p.rng.Float64() < 0.05, false, nil, nil,
				createdAt, createdBy, laterTimestamp(p.rng, createdAt), anyUser(),
			})

			numOptions := randRange(p.rng, p.cfg.OptionsPerMenu)
			for _, idx := range sampleIndices(p.rng, len(optionTemplates), numOptions) {
				template := optionTemplates[idx]
				optionID := newID(p.rng)
				detail := choice(p.rng, template.details)
				optionPrice := choice(p.rng, optionPrices)

				options = append(options, MenuOption{
					ID: optionID, MenuID: menuID,
					Name: template.name, Detail: detail, Price: optionPrice,
				})
				optionRows = append(optionRows, schema.Row{
					optionID, menuID, template.name, detail,
					optionPrice, p.rng.Float64() > 0.05, p.rng.Float64() < 0.02,
					false, nil, nil, createdAt, createdBy,
					laterTimestamp(p.rng, createdAt), anyUser(),
				})
			}

			for k := 0; k < randRange(p.rng, p.cfg.OriginsPerMenu); k++ {
				template := choice(p.rng, originTemplates)
				originRows = append(originRows, schema.Row{
					newID(p.rng), menuID, choice(p.rng, template.origins), template.ingredient,
					false, nil, nil, createdAt, createdBy,
					laterTimestamp(p.rng, createdAt), anyUser(),
				})
			}
		}
	}

	if err := p.sink.Write(ctx, schema.TableMenu, menuRows); err != nil {
		return nil, nil, err
	}
	if err := p.sink.Write(ctx, schema.TableMenuOption, optionRows); err != nil {
		return nil, nil, err
	}
	if err := p.sink.Write(ctx, schema.TableOrigin, originRows); err != nil {
		return nil, nil, err
	}
	return menus, options, nil
}
