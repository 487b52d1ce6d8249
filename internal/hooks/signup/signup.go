// Package signup implements the sign-up confirmation hook. It is fail-closed
// on purpose: when the user service cannot create the backing record, the
// whole sign-up must be blocked rather than leaving an identity without one.
package signup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	pkgerrors "github.com/spotplatform/seedgen/pkg/errors"
	"github.com/spotplatform/seedgen/pkg/logger"
)

const (
	attrSub    = "sub"
	attrEmail  = "email"
	attrRole   = "custom:role"
	attrUserID = "custom:user_id"

	defaultRole = "CUSTOMER"
)

// Event is the identity-creation event delivered to the hook.
type Event struct {
	UserPoolID string       `json:"userPoolId"`
	UserName   string       `json:"userName"`
	Request    EventRequest `json:"request"`
}

// EventRequest carries the identity's attributes at confirmation time.
type EventRequest struct {
	UserAttributes map[string]string `json:"userAttributes"`
}

// AttributeWriter writes custom attributes back onto the identity record.
type AttributeWriter interface {
	UpdateUserAttributes(ctx context.Context, userPoolID, username string, attrs map[string]string) error
}

// Params packages the handler dependencies.
type Params struct {
	// UserServiceURL is the base URL of the user registration service.
	UserServiceURL string
	HTTPClient     *http.Client
	Attributes     AttributeWriter
	Logger         *logger.Logger
}

// Handler registers the confirmed identity with the user service and writes
// the assigned user id back as custom attributes.
type Handler struct {
	endpoint string
	client   *http.Client
	attrs    AttributeWriter
	log      *logger.Logger
}

type registrationRequest struct {
	CognitoSub string `json:"cognitoSub"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

type registrationResponse struct {
	UserID *int64 `json:"userId"`
}

// New builds the handler. The endpoint may be empty; Handle then fails every
// event, which is the intended behavior until the user service exists.
func New(p Params) (*Handler, error) {
	if p.Attributes == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "attribute writer required")
	}
	client := p.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &Handler{
		endpoint: strings.TrimRight(p.UserServiceURL, "/"),
		client:   client,
		attrs:    p.Attributes,
		log:      p.Logger,
	}, nil
}

// Handle processes one confirmation event. Any failure is returned to the
// caller and blocks the sign-up flow.
func (h *Handler) Handle(ctx context.Context, event Event) (Event, error) {
	if h.endpoint == "" {
		return event, pkgerrors.New(pkgerrors.CodeDependency,
			"user service URL is not set; blocking sign-up until it is available")
	}

	attrs := event.Request.UserAttributes
	sub := attrs[attrSub]
	if sub == "" {
		return event, pkgerrors.New(pkgerrors.CodeValidation, "missing 'sub' in user attributes")
	}
	role := attrs[attrRole]
	if role == "" {
		role = defaultRole
	}

	created, err := h.registerUser(ctx, registrationRequest{
		CognitoSub: sub,
		Email:      attrs[attrEmail],
		Role:       role,
	})
	if err != nil {
		return event, err
	}
	if created.UserID == nil {
		return event, pkgerrors.New(pkgerrors.CodeDependency, "user service response missing userId")
	}

	err = h.attrs.UpdateUserAttributes(ctx, event.UserPoolID, event.UserName, map[string]string{
		attrUserID: strconv.FormatInt(*created.UserID, 10),
		attrRole:   role,
	})
	if err != nil {
		return event, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update user attributes")
	}

	if h.log != nil {
		lctx := h.log.WithFields(ctx, map[string]any{"user_id": *created.UserID, "role": role})
		h.log.Info(lctx, "sign-up confirmed")
	}
	return event, nil
}

func (h *Handler) registerUser(ctx context.Context, reg registrationRequest) (registrationResponse, error) {
	var out registrationResponse

	body, err := json.Marshal(reg)
	if err != nil {
		return out, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode registration")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint+"/internal/users", bytes.NewReader(body))
	if err != nil {
		return out, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build registration request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return out, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "call user service")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return out, pkgerrors.New(pkgerrors.CodeDependency,
			fmt.Sprintf("user service returned status %d", resp.StatusCode))
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read user service response")
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &out); err != nil {
			return out, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode user service response")
		}
	}
	return out, nil
}
