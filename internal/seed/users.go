package seed

import (
	"context"
	"fmt"

	"github.com/spotplatform/seedgen/internal/schema"
	pkgerrors "github.com/spotplatform/seedgen/pkg/errors"
	"github.com/spotplatform/seedgen/pkg/enums"
)

// seedAccounts are the four fixed test identities; their ids and roles never
// change so downstream environments can log in predictably.
var seedAccounts = []struct {
	id   int
	name string
	role enums.UserRole
}{
	{1, "master", enums.UserRoleMaster},
	{2, "owner", enums.UserRoleOwner},
	{3, "chef", enums.UserRoleChef},
	{4, "customer", enums.UserRoleCustomer},
}

// generateUsers emits p_user and p_user_auth rows and returns the id views
// downstream stages consume: every id, and the owner-only subset.
func (p *Pipeline) generateUsers(ctx context.Context) (users []int, owners []int, err error) {
	if err := p.sink.BeginStage(ctx, "Users"); err != nil {
		return nil, nil, err
	}

	userRows := make([]schema.Row, 0, p.cfg.Users)
	authRows := make([]schema.Row, 0, p.cfg.Users)

	appendUser := func(id int, username, nickname, email string, role enums.UserRole) error {
		createdAt := pastTimestamp(p.rng, p.now, 365, 1)
		updatedAt := laterTimestamp(p.rng, createdAt)

		if role == enums.UserRoleOwner {
			owners = append(owners, id)
		}
		users = append(users, id)

		userRows = append(userRows, schema.Row{
			id, username, nickname, email,
			p.rng.Intn(2) == 0, randBetween(p.rng, 18, 65),
			p.roadAddress(), p.addressDetail(),
			role, createdAt, id, updatedAt, id, false, nil, nil,
		})

		hashed, err := p.hasher.Hash(nickname)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash credential")
		}
		authRows = append(authRows, schema.Row{
			newID(p.rng), id, hashed, createdAt, id,
			laterTimestamp(p.rng, createdAt), id, false, nil, nil,
		})
		return nil
	}

	for _, account := range seedAccounts {
		email := fmt.Sprintf("%s@example.com", account.name)
		if err := appendUser(account.id, account.name, account.name, email, account.role); err != nil {
			return nil, nil, err
		}
	}

	// Deterministic prefix split keeps the owner ratio exact.
	extra := p.cfg.Users - len(seedAccounts)
	numOwners := int(float64(extra) * p.cfg.OwnerRatio)
	for i := 0; i < extra; i++ {
		id := len(seedAccounts) + i + 1
		nickname := fmt.Sprintf("user%d", id)
		role := enums.UserRoleCustomer
		if i < numOwners {
			role = enums.UserRoleOwner
		}
		email := fmt.Sprintf("user%d@example.com", id)
		if err := appendUser(id, nickname, nickname, email, role); err != nil {
			return nil, nil, err
		}
	}

	if err := p.sink.Write(ctx, schema.TableUser, userRows); err != nil {
		return nil, nil, err
	}
	if err := p.sink.Write(ctx, schema.TableUserAuth, authRows); err != nil {
		return nil, nil, err
	}
	return users, owners, nil
}

func (p *Pipeline) roadAddress() string {
	road := choice(p.rng, jongnoRoads)
	return fmt.Sprintf("서울특별시 종로구 %s %d", road, randBetween(p.rng, 1, 300))
}

func (p *Pipeline) addressDetail() string {
	if p.rng.Intn(2) == 0 {
		return choice(p.rng, buildingNames)
	}
	return fmt.Sprintf("%d호", randBetween(p.rng, 101, 999))
}
