package tokenclaims

import "testing"

func claims(t *testing.T, event map[string]any) map[string]any {
	t.Helper()

	response, ok := event["response"].(map[string]any)
	if !ok {
		t.Fatal("missing response container")
	}
	overrides, ok := response["claimsAndScopeOverrideDetails"].(map[string]any)
	if !ok {
		t.Fatal("missing claimsAndScopeOverrideDetails container")
	}
	generation, ok := overrides["accessTokenGeneration"].(map[string]any)
	if !ok {
		t.Fatal("missing accessTokenGeneration container")
	}
	result, ok := generation["claimsToAddOrOverride"].(map[string]any)
	if !ok {
		t.Fatal("missing claimsToAddOrOverride container")
	}
	return result
}

func TestHandleInjectsClaims(t *testing.T) {
	event := map[string]any{
		"request": map[string]any{
			"userAttributes": map[string]any{
				"custom:user_id": "42",
				"custom:role":    "OWNER",
			},
		},
	}

	got := claims(t, Handle(event))
	if got["user_id"] != "42" {
		t.Fatalf("user_id claim = %v", got["user_id"])
	}
	if got["role"] != "OWNER" {
		t.Fatalf("role claim = %v", got["role"])
	}
}

func TestHandleDefaultsRole(t *testing.T) {
	event := map[string]any{
		"request": map[string]any{
			"userAttributes": map[string]any{},
		},
	}

	got := claims(t, Handle(event))
	if got["role"] != "CUSTOMER" {
		t.Fatalf("expected default role, got %v", got["role"])
	}
	if _, present := got["user_id"]; present {
		t.Fatal("user_id claim must be omitted when the attribute is absent")
	}
}

func TestHandleNeverFails(t *testing.T) {
	cases := []map[string]any{
		nil,
		{},
		{"request": "not-a-map"},
		{"request": map[string]any{"userAttributes": "not-a-map"}},
		{"response": "not-a-map"},
		{"response": map[string]any{"claimsAndScopeOverrideDetails": 7}},
	}

	for _, event := range cases {
		got := claims(t, Handle(event))
		if got["role"] != "CUSTOMER" {
			t.Fatalf("event %v: role claim = %v", event, got["role"])
		}
	}
}

func TestHandleIgnoresNonStringAttributes(t *testing.T) {
	event := map[string]any{
		"request": map[string]any{
			"userAttributes": map[string]any{
				"custom:user_id": 42,
				"custom:role":    true,
			},
		},
	}

	got := claims(t, Handle(event))
	if got["role"] != "CUSTOMER" {
		t.Fatalf("non-string role should default, got %v", got["role"])
	}
	if _, present := got["user_id"]; present {
		t.Fatal("non-string user_id should be dropped")
	}
}

func TestHandlePreservesExistingClaims(t *testing.T) {
	event := map[string]any{
		"request": map[string]any{
			"userAttributes": map[string]any{"custom:role": "CHEF"},
		},
		"response": map[string]any{
			"claimsAndScopeOverrideDetails": map[string]any{
				"accessTokenGeneration": map[string]any{
					"claimsToAddOrOverride": map[string]any{"tenant": "spot"},
				},
			},
		},
	}

	got := claims(t, Handle(event))
	if got["tenant"] != "spot" {
		t.Fatalf("existing claim was lost: %v", got)
	}
	if got["role"] != "CHEF" {
		t.Fatalf("role claim = %v", got["role"])
	}
}
