package enums

import "fmt"

// PaymentStatus mirrors the PG provider's state machine. The seeder only
// emits READY, IN_PROGRESS, DONE and CANCELLED histories; the rest exist so
// parsed production data round-trips.
type PaymentStatus string

const (
	PaymentStatusReady             PaymentStatus = "READY"
	PaymentStatusInProgress        PaymentStatus = "IN_PROGRESS"
	PaymentStatusWaitingForDeposit PaymentStatus = "WAITING_FOR_DEPOSIT"
	PaymentStatusDone              PaymentStatus = "DONE"
	PaymentStatusCancelled         PaymentStatus = "CANCELLED"
	PaymentStatusPartialCancelled  PaymentStatus = "PARTIAL_CANCELLED"
	PaymentStatusAborted           PaymentStatus = "ABORTED"
	PaymentStatusExpired           PaymentStatus = "EXPIRED"
)

var validPaymentStatuses = []PaymentStatus{
	PaymentStatusReady,
	PaymentStatusInProgress,
	PaymentStatusWaitingForDeposit,
	PaymentStatusDone,
	PaymentStatusCancelled,
	PaymentStatusPartialCancelled,
	PaymentStatusAborted,
	PaymentStatusExpired,
}

// String implements fmt.Stringer.
func (p PaymentStatus) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PaymentStatus.
func (p PaymentStatus) IsValid() bool {
	for _, candidate := range validPaymentStatuses {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePaymentStatus converts raw input into a PaymentStatus.
func ParsePaymentStatus(value string) (PaymentStatus, error) {
	for _, candidate := range validPaymentStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment status %q", value)
}

// PaymentMethod is the tender type recorded on a payment.
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

var validPaymentMethods = []PaymentMethod{
	PaymentMethodCreditCard,
	PaymentMethodBankTransfer,
}

// String implements fmt.Stringer.
func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid reports whether the value is a known PaymentMethod.
func (m PaymentMethod) IsValid() bool {
	for _, candidate := range validPaymentMethods {
		if candidate == m {
			return true
		}
	}
	return false
}
