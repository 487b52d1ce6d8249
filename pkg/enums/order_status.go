package enums

import "fmt"

// OrderStatus tracks an order along the pickup lifecycle.
type OrderStatus string

const (
	OrderStatusPaymentPending OrderStatus = "PAYMENT_PENDING"
	OrderStatusPending        OrderStatus = "PENDING"
	OrderStatusAccepted       OrderStatus = "ACCEPTED"
	OrderStatusCooking        OrderStatus = "COOKING"
	OrderStatusReady          OrderStatus = "READY"
	OrderStatusCompleted      OrderStatus = "COMPLETED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
	OrderStatusRejected       OrderStatus = "REJECTED"
)

var validOrderStatuses = []OrderStatus{
	OrderStatusPaymentPending,
	OrderStatusPending,
	OrderStatusAccepted,
	OrderStatusCooking,
	OrderStatusReady,
	OrderStatusCompleted,
	OrderStatusCancelled,
	OrderStatusRejected,
}

// String implements fmt.Stringer.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known OrderStatus.
func (s OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseOrderStatus converts raw input into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range validOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}

// CancelActor identifies who cancelled an order.
type CancelActor string

const (
	CancelActorCustomer CancelActor = "CUSTOMER"
	CancelActorStore    CancelActor = "STORE"
	CancelActorSystem   CancelActor = "SYSTEM"
)

var validCancelActors = []CancelActor{
	CancelActorCustomer,
	CancelActorStore,
	CancelActorSystem,
}

// String implements fmt.Stringer.
func (a CancelActor) String() string {
	return string(a)
}

// IsValid reports whether the value is a known CancelActor.
func (a CancelActor) IsValid() bool {
	for _, candidate := range validCancelActors {
		if candidate == a {
			return true
		}
	}
	return false
}
