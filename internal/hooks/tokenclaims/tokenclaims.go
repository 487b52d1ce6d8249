// Package tokenclaims implements the token-issuance hook. Unlike the sign-up
// hook it is fail-open: token issuance must never be blocked by missing
// optional claims, so every malformed or absent field is defaulted and the
// function cannot fail.
package tokenclaims

const (
	attrUserID = "custom:user_id"
	attrRole   = "custom:role"

	claimUserID = "user_id"
	claimRole   = "role"

	defaultRole = "CUSTOMER"
)

// Handle injects role (always) and user_id (when present) as overriding
// access-token claims, creating any missing nested containers along the way.
// The event is mutated and returned.
func Handle(event map[string]any) map[string]any {
	if event == nil {
		event = map[string]any{}
	}

	attrs := attributes(event)
	userID := stringValue(attrs[attrUserID])
	role := stringValue(attrs[attrRole])
	if role == "" {
		role = defaultRole
	}

	response := ensureMap(event, "response")
	overrides := ensureMap(response, "claimsAndScopeOverrideDetails")
	generation := ensureMap(overrides, "accessTokenGeneration")
	claims := ensureMap(generation, "claimsToAddOrOverride")

	if userID != "" {
		claims[claimUserID] = userID
	}
	claims[claimRole] = role

	return event
}

func attributes(event map[string]any) map[string]any {
	request, _ := event["request"].(map[string]any)
	if request == nil {
		return nil
	}
	attrs, _ := request["userAttributes"].(map[string]any)
	return attrs
}

// ensureMap replaces a missing or non-map child with a fresh map and
// returns it.
func ensureMap(parent map[string]any, key string) map[string]any {
	if child, ok := parent[key].(map[string]any); ok {
		return child
	}
	child := map[string]any{}
	parent[key] = child
	return child
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
