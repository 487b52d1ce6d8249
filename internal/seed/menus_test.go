package seed

import (
	"testing"

	"github.com/google/uuid"
	"github.com/spotplatform/seedgen/internal/schema"
	"github.com/spotplatform/seedgen/pkg/enums"
)

func approvedStoreIDs(capture *captureSink) map[uuid.UUID]struct{} {
	ids := map[uuid.UUID]struct{}{}
	for _, row := range capture.tables[schema.TableStore] {
		if row[7].(enums.StoreStatus) == enums.StoreStatusApproved {
			ids[row[0].(uuid.UUID)] = struct{}{}
		}
	}
	return ids
}

func TestGenerateMenusApprovedStoresOnly(t *testing.T) {
	cfg := testSeedConfig()
	cfg.Stores = 40

	capture, _ := runPipeline(t, cfg, 41)
	approved := approvedStoreIDs(capture)

	perStore := map[uuid.UUID]int{}
	for _, row := range capture.tables[schema.TableMenu] {
		storeID := row[1].(uuid.UUID)
		if _, ok := approved[storeID]; !ok {
			t.Fatalf("menu belongs to non-approved store %s", storeID)
		}
		perStore[storeID]++
	}
	for storeID, count := range perStore {
		if count < cfg.MenusPerStore.Min || count > cfg.MenusPerStore.Max {
			t.Fatalf("store %s has %d menus, want within %s", storeID, count, cfg.MenusPerStore)
		}
	}
	if len(perStore) != len(approved) {
		t.Fatalf("%d of %d approved stores have menus", len(perStore), len(approved))
	}
}

func TestGenerateMenusPrices(t *testing.T) {
	capture, _ := runPipeline(t, testSeedConfig(), 42)

	for _, row := range capture.tables[schema.TableMenu] {
		price := row[4].(int)
		if price < 5000 || price > 50000 || price%1000 != 0 {
			t.Fatalf("menu price %d outside the expected grid", price)
		}
	}
}

func TestGenerateMenuOptionNamesDistinctPerMenu(t *testing.T) {
	cfg := testSeedConfig()
	cfg.OptionsPerMenu.Max = 4

	capture, _ := runPipeline(t, cfg, 43)

	names := map[uuid.UUID]map[string]struct{}{}
	for _, row := range capture.tables[schema.TableMenuOption] {
		menuID := row[1].(uuid.UUID)
		name := row[2].(string)
		if names[menuID] == nil {
			names[menuID] = map[string]struct{}{}
		}
		if _, dup := names[menuID][name]; dup {
			t.Fatalf("menu %s has duplicate option %q", menuID, name)
		}
		names[menuID][name] = struct{}{}
	}
}

func TestGenerateOriginsReferenceMenus(t *testing.T) {
	capture, _ := runPipeline(t, testSeedConfig(), 44)

	menuIDs := map[uuid.UUID]struct{}{}
	for _, row := range capture.tables[schema.TableMenu] {
		menuIDs[row[0].(uuid.UUID)] = struct{}{}
	}
	for _, row := range capture.tables[schema.TableOrigin] {
		if _, ok := menuIDs[row[1].(uuid.UUID)]; !ok {
			t.Fatalf("origin references unknown menu %v", row[1])
		}
	}
}
