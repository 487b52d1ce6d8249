package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spotplatform/seedgen/internal/schema"
	"github.com/spotplatform/seedgen/pkg/enums"
)

// Order is the view reviews consume.
type Order struct {
	ID      uuid.UUID
	UserID  int
	StoreID uuid.UUID
	Status  enums.OrderStatus
}

// orderStatusWeights is the production status mix: half of all orders end
// COMPLETED. Historical tuning values, kept as-is.
var (
	orderStatuses = []enums.OrderStatus{
		enums.OrderStatusPaymentPending,
		enums.OrderStatusPending,
		enums.OrderStatusAccepted,
		enums.OrderStatusCooking,
		enums.OrderStatusReady,
		enums.OrderStatusCompleted,
		enums.OrderStatusCancelled,
		enums.OrderStatusRejected,
	}
	orderStatusWeights = []float64{0.05, 0.10, 0.10, 0.10, 0.10, 0.50, 0.03, 0.02}

	cancelActors = []enums.CancelActor{
		enums.CancelActorCustomer,
		enums.CancelActorStore,
		enums.CancelActorSystem,
	}

	paymentMethods = []enums.PaymentMethod{
		enums.PaymentMethodCreditCard,
		enums.PaymentMethodBankTransfer,
	}
)

// Three-tier activity model: the top fifth of customers orders heavily, the
// next half occasionally, the rest barely. Produces a Pareto-like skew
// without a parametric distribution.
const (
	activeCustomerShare  = 0.2
	regularCustomerShare = 0.5
)

// orderTimestamps is the status-conditioned lifecycle set. Only stages
// reachable from the terminal status along the forward chain are populated.
type orderTimestamps struct {
	paymentCompletedAt *time.Time
	acceptedAt         *time.Time
	rejectedAt         *time.Time
	cookingStartedAt   *time.Time
	cookingCompletedAt *time.Time
	pickedUpAt         *time.Time
	cancelledAt        *time.Time
}

// generateOrders builds orders, snapshot items/options, payments, payment
// histories and payment keys. Customers are everyone who is not an owner.
// Stores without menus are skipped silently.
func (p *Pipeline) generateOrders(ctx context.Context, users, owners []int, stores []Store, menus []Menu, options []MenuOption) ([]Order, error) {
	if err := p.sink.BeginStage(ctx, "Orders & Payments"); err != nil {
		return nil, err
	}

	ownerSet := make(map[int]struct{}, len(owners))
	for _, id := range owners {
		ownerSet[id] = struct{}{}
	}
	var customers []int
	for _, id := range users {
		if _, isOwner := ownerSet[id]; !isOwner {
			customers = append(customers, id)
		}
	}

	quotas := p.customerQuotas(len(customers))

	menusByStore := make(map[uuid.UUID][]Menu)
	for _, m := range menus {
		menusByStore[m.StoreID] = append(menusByStore[m.StoreID], m)
	}
	optionsByMenu := make(map[uuid.UUID][]MenuOption)
	for _, o := range options {
		optionsByMenu[o.MenuID] = append(optionsByMenu[o.MenuID], o)
	}

	var approved []Store
	for _, s := range stores {
		if s.Status == enums.StoreStatusApproved {
			approved = append(approved, s)
		}
	}

	acc := &orderAccumulator{}

	if len(approved) > 0 {
		for i, customer := range customers {
			for n := 0; n < quotas[i]; n++ {
				store := choice(p.rng, approved)
				storeMenus := menusByStore[store.ID]
				if len(storeMenus) == 0 {
					continue
				}
				p.createOrder(acc, customer, store, storeMenus, optionsByMenu)
			}
		}
	}

	if err := acc.flush(ctx, p); err != nil {
		return nil, err
	}
	return acc.orders, nil
}

type orderAccumulator struct {
	orders []Order

	orderRows      []schema.Row
	itemRows       []schema.Row
	itemOptionRows []schema.Row
	paymentRows    []schema.Row
	historyRows    []schema.Row
	keyRows        []schema.Row
}

func (a *orderAccumulator) flush(ctx context.Context, p *Pipeline) error {
	writes := []struct {
		table schema.Table
		rows  []schema.Row
	}{
		{schema.TableOrder, a.orderRows},
		{schema.TableOrderItem, a.itemRows},
		{schema.TableOrderItemOption, a.itemOptionRows},
		{schema.TablePayment, a.paymentRows},
		{schema.TablePaymentHistory, a.historyRows},
		{schema.TablePaymentKey, a.keyRows},
	}
	for _, w := range writes {
		if err := p.sink.Write(ctx, w.table, w.rows); err != nil {
			return err
		}
	}
	return nil
}

// customerQuotas assigns an order count to each customer index. Tier
// membership is a random sample, the per-tier count a uniform draw.
func (p *Pipeline) customerQuotas(count int) []int {
	quotas := make([]int, count)

	activeCount := int(float64(count) * activeCustomerShare)
	regularCount := int(float64(count) * regularCustomerShare)

	perm := p.rng.Perm(count)
	for i, idx := range perm {
		switch {
		case i < activeCount:
			quotas[idx] = randBetween(p.rng, 30, 50)
		case i < activeCount+regularCount:
			quotas[idx] = randBetween(p.rng, 10, 30)
		default:
			quotas[idx] = randBetween(p.rng, 0, 5)
		}
	}
	return quotas
}

func (p *Pipeline) createOrder(acc *orderAccumulator, customer int, store Store, storeMenus []Menu, optionsByMenu map[uuid.UUID][]MenuOption) {
	orderID := newID(p.rng)
	p.orderSeq++
	code := fmt.Sprintf("ORD%08d", p.orderSeq)

	status := orderStatuses[weightedIndex(p.rng, orderStatusWeights)]
	createdAt := pastTimestamp(p.rng, p.now, 90, 0)
	ts := p.deriveOrderTimestamps(status, createdAt)

	var request any
	if idx := p.rng.Intn(len(orderRequests) + 1); idx < len(orderRequests) {
		request = orderRequests[idx]
	}

	pickupTime := createdAt.Add(time.Duration(randBetween(p.rng, 30, 90)) * time.Minute)

	var cancelledBy any
	if status == enums.OrderStatusCancelled {
		cancelledBy = choice(p.rng, cancelActors)
	}

	var estimatedTime any
	switch status {
	case enums.OrderStatusAccepted, enums.OrderStatusCooking, enums.OrderStatusReady, enums.OrderStatusCompleted:
		estimatedTime = randBetween(p.rng, 20, 60)
	}

	var reason any
	if status == enums.OrderStatusCancelled || status == enums.OrderStatusRejected {
		reason = choice(p.rng, cancelReasons)
	}

	acc.orderRows = append(acc.orderRows, schema.Row{
		orderID, customer, store.ID, code, request,
		p.rng.Intn(2) == 0, pickupTime, status,
		ts.paymentCompletedAt, nil, ts.acceptedAt,
		ts.rejectedAt, ts.cookingStartedAt, ts.cookingCompletedAt,
		ts.pickedUpAt, ts.cancelledAt, cancelledBy, estimatedTime,
		reason, createdAt, customer,
	})

	amount := p.createOrderItems(acc, orderID, customer, storeMenus, optionsByMenu, createdAt)
	p.createPayment(acc, orderID, customer, store, code, status, amount, createdAt, ts)

	acc.orders = append(acc.orders, Order{
		ID: orderID, UserID: customer, StoreID: store.ID, Status: status,
	})
}

// deriveOrderTimestamps walks the canonical forward chain from the creation
// time, populating exactly the prefix the terminal status reached. Each step
// adds a bounded offset, so populated fields are non-decreasing.
func (p *Pipeline) deriveOrderTimestamps(status enums.OrderStatus, createdAt time.Time) orderTimestamps {
	var ts orderTimestamps
	addMinutes := func(base time.Time, min, max int) *time.Time {
		return ptr(base.Add(time.Duration(randBetween(p.rng, min, max)) * time.Minute))
	}

	switch status {
	case enums.OrderStatusPaymentPending, enums.OrderStatusCancelled, enums.OrderStatusRejected:
	default:
		ts.paymentCompletedAt = ptr(createdAt)
	}

	switch status {
	case enums.OrderStatusAccepted, enums.OrderStatusCooking, enums.OrderStatusReady, enums.OrderStatusCompleted:
		ts.acceptedAt = addMinutes(createdAt, 5, 15)
	}

	switch status {
	case enums.OrderStatusCooking, enums.OrderStatusReady, enums.OrderStatusCompleted:
		ts.cookingStartedAt = addMinutes(*ts.acceptedAt, 5, 10)
	}

	switch status {
	case enums.OrderStatusReady, enums.OrderStatusCompleted:
		ts.cookingCompletedAt = addMinutes(*ts.cookingStartedAt, 15, 30)
	}

	if status == enums.OrderStatusCompleted {
		ts.pickedUpAt = addMinutes(*ts.cookingCompletedAt, 5, 20)
	}

	if status == enums.OrderStatusCancelled {
		ts.cancelledAt = addMinutes(createdAt, 5, 30)
	}

	if status == enums.OrderStatusRejected {
		ts.rejectedAt = addMinutes(createdAt, 5, 15)
	}

	return ts
}

// createOrderItems snapshots 1..N distinct menu items with quantities and
// optional option snapshots, returning the fully derived order total.
func (p *Pipeline) createOrderItems(acc *orderAccumulator, orderID uuid.UUID, customer int, storeMenus []Menu, optionsByMenu map[uuid.UUID][]MenuOption, createdAt time.Time) int {
	count := randRange(p.rng, p.cfg.ItemsPerOrder)
	total := 0

	for _, idx := range sampleIndices(p.rng, len(storeMenus), count) {
		menu := storeMenus[idx]
		itemID := newID(p.rng)
		quantity := randBetween(p.rng, 1, 3)
		itemTotal := menu.Price * quantity

		acc.itemRows = append(acc.itemRows, schema.Row{
			itemID, orderID, menu.ID, menu.Name, decimal.NewFromInt(int64(menu.Price)),
			quantity, createdAt, customer,
		})

		menuOptions := optionsByMenu[menu.ID]
		if len(menuOptions) > 0 && p.rng.Float64() > 0.5 {
			picks := sampleIndices(p.rng, len(menuOptions), randBetween(p.rng, 1, 2))
			for _, optIdx := range picks {
				opt := menuOptions[optIdx]
				itemTotal += opt.Price * quantity
				acc.itemOptionRows = append(acc.itemOptionRows, schema.Row{
					newID(p.rng), itemID, opt.ID, opt.Name,
					opt.Detail, decimal.NewFromInt(int64(opt.Price)), createdAt, customer,
				})
			}
		}

		total += itemTotal
	}
	return total
}

// createPayment derives the payment terminal status from the order status and
// emits the matching history chain, plus a payment key when the payment
// settled. The amount is the derived order total, never sampled.
func (p *Pipeline) createPayment(acc *orderAccumulator, orderID uuid.UUID, customer int, store Store, code string, orderStatus enums.OrderStatus, amount int, createdAt time.Time, ts orderTimestamps) {
	paymentID := newID(p.rng)

	var finalStatus enums.PaymentStatus
	switch orderStatus {
	case enums.OrderStatusCancelled:
		finalStatus = enums.PaymentStatusCancelled
	case enums.OrderStatusPaymentPending:
		finalStatus = enums.PaymentStatusReady
	default:
		finalStatus = enums.PaymentStatusDone
	}

	acc.paymentRows = append(acc.paymentRows, schema.Row{
		paymentID, customer, orderID, store.Name + " 주문",
		"주문번호: " + code,
		choice(p.rng, paymentMethods), amount, createdAt, customer,
	})

	appendHistory := func(status enums.PaymentStatus, at time.Time) {
		acc.historyRows = append(acc.historyRows, schema.Row{
			newID(p.rng), paymentID, status, at, customer,
		})
	}

	switch finalStatus {
	case enums.PaymentStatusDone:
		appendHistory(enums.PaymentStatusReady, createdAt)
		appendHistory(enums.PaymentStatusInProgress,
			createdAt.Add(time.Duration(randBetween(p.rng, 1, 3))*time.Second))
		doneAt := createdAt
		if ts.paymentCompletedAt != nil {
			doneAt = *ts.paymentCompletedAt
		}
		appendHistory(enums.PaymentStatusDone, doneAt)
	case enums.PaymentStatusCancelled:
		appendHistory(enums.PaymentStatusReady, createdAt)
		cancelledAt := createdAt
		if ts.cancelledAt != nil {
			cancelledAt = *ts.cancelledAt
		}
		appendHistory(enums.PaymentStatusCancelled, cancelledAt)
	default:
		appendHistory(finalStatus, createdAt)
	}

	if finalStatus == enums.PaymentStatusDone {
		acc.keyRows = append(acc.keyRows, schema.Row{
			newID(p.rng), paymentID,
			"paymentkey_" + newID(p.rng).String()[:20],
			createdAt, createdAt, customer,
		})
	}
}
