package enums

import "fmt"

// StoreStatus captures the store approval workflow. Only APPROVED stores
// may carry menus, orders and reviews.
type StoreStatus string

const (
	StoreStatusPending  StoreStatus = "PENDING"
	StoreStatusApproved StoreStatus = "APPROVED"
	StoreStatusRejected StoreStatus = "REJECTED"
)

var validStoreStatuses = []StoreStatus{
	StoreStatusPending,
	StoreStatusApproved,
	StoreStatusRejected,
}

// String implements fmt.Stringer.
func (s StoreStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known StoreStatus.
func (s StoreStatus) IsValid() bool {
	for _, candidate := range validStoreStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStoreStatus converts raw input into a StoreStatus.
func ParseStoreStatus(value string) (StoreStatus, error) {
	for _, candidate := range validStoreStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid store status %q", value)
}
