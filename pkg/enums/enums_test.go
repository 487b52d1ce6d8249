package enums

import "testing"

func TestParseUserRole(t *testing.T) {
	role, err := ParseUserRole("OWNER")
	if err != nil {
		t.Fatalf("ParseUserRole returned error: %v", err)
	}
	if role != UserRoleOwner {
		t.Fatalf("expected OWNER, got %s", role)
	}

	if _, err := ParseUserRole("WAITER"); err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("COMPLETED")
	if err != nil {
		t.Fatalf("ParseOrderStatus returned error: %v", err)
	}
	if status != OrderStatusCompleted {
		t.Fatalf("expected COMPLETED, got %s", status)
	}

	if _, err := ParseOrderStatus("DELIVERED"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestIsValid(t *testing.T) {
	if !StoreStatusApproved.IsValid() {
		t.Fatal("APPROVED should be valid")
	}
	if StoreStatus("CLOSED").IsValid() {
		t.Fatal("CLOSED should be invalid")
	}
	if !PaymentStatusInProgress.IsValid() {
		t.Fatal("IN_PROGRESS should be valid")
	}
	if CancelActor("COURIER").IsValid() {
		t.Fatal("COURIER should be invalid")
	}
}
