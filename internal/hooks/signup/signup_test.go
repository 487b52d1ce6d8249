package signup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeAttributeWriter struct {
	userPoolID string
	username   string
	attrs      map[string]string
	err        error
}

func (f *fakeAttributeWriter) UpdateUserAttributes(_ context.Context, userPoolID, username string, attrs map[string]string) error {
	f.userPoolID = userPoolID
	f.username = username
	f.attrs = attrs
	return f.err
}

func confirmationEvent(attrs map[string]string) Event {
	return Event{
		UserPoolID: "pool-1",
		UserName:   "jdoe",
		Request:    EventRequest{UserAttributes: attrs},
	}
}

func TestHandleRegistersUser(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/internal/users" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"userId": 982}`))
	}))
	defer server.Close()

	writer := &fakeAttributeWriter{}
	handler, err := New(Params{UserServiceURL: server.URL, Attributes: writer})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	event := confirmationEvent(map[string]string{
		"sub":   "abc-123",
		"email": "jdoe@example.com",
	})
	if _, err := handler.Handle(context.Background(), event); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}

	if received["cognitoSub"] != "abc-123" {
		t.Fatalf("registration sub = %q", received["cognitoSub"])
	}
	if received["email"] != "jdoe@example.com" {
		t.Fatalf("registration email = %q", received["email"])
	}
	if received["role"] != "CUSTOMER" {
		t.Fatalf("expected default role, got %q", received["role"])
	}

	if writer.userPoolID != "pool-1" || writer.username != "jdoe" {
		t.Fatalf("attributes written to wrong identity: %s/%s", writer.userPoolID, writer.username)
	}
	if writer.attrs["custom:user_id"] != "982" {
		t.Fatalf("custom:user_id = %q", writer.attrs["custom:user_id"])
	}
	if writer.attrs["custom:role"] != "CUSTOMER" {
		t.Fatalf("custom:role = %q", writer.attrs["custom:role"])
	}
}

func TestHandleKeepsExplicitRole(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"userId": 7}`))
	}))
	defer server.Close()

	writer := &fakeAttributeWriter{}
	handler, err := New(Params{UserServiceURL: server.URL, Attributes: writer})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	event := confirmationEvent(map[string]string{
		"sub":         "abc-123",
		"custom:role": "OWNER",
	})
	if _, err := handler.Handle(context.Background(), event); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if writer.attrs["custom:role"] != "OWNER" {
		t.Fatalf("custom:role = %q", writer.attrs["custom:role"])
	}
}

func TestHandleMissingSub(t *testing.T) {
	handler, err := New(Params{UserServiceURL: "http://localhost:1", Attributes: &fakeAttributeWriter{}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := handler.Handle(context.Background(), confirmationEvent(nil)); err == nil {
		t.Fatal("expected error for missing sub")
	}
}

func TestHandleMissingEndpoint(t *testing.T) {
	handler, err := New(Params{Attributes: &fakeAttributeWriter{}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	event := confirmationEvent(map[string]string{"sub": "abc-123"})
	if _, err := handler.Handle(context.Background(), event); err == nil {
		t.Fatal("sign-up must be blocked when the user service is not configured")
	}
}

func TestHandleUserServiceFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	handler, err := New(Params{UserServiceURL: server.URL, Attributes: &fakeAttributeWriter{}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	event := confirmationEvent(map[string]string{"sub": "abc-123"})
	if _, err := handler.Handle(context.Background(), event); err == nil {
		t.Fatal("expected error for failing user service")
	}
}

func TestHandleMissingUserID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	handler, err := New(Params{UserServiceURL: server.URL, Attributes: &fakeAttributeWriter{}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	event := confirmationEvent(map[string]string{"sub": "abc-123"})
	if _, err := handler.Handle(context.Background(), event); err == nil {
		t.Fatal("expected error when the user service omits userId")
	}
}

func TestNewRequiresAttributeWriter(t *testing.T) {
	if _, err := New(Params{}); err == nil {
		t.Fatal("expected error for missing attribute writer")
	}
}
