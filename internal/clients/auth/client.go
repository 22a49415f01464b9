package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/approval/internal/entity"
	"github.com/samandr77/approval/pkg/transport"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   time.Second,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

type UserByTokenRequest struct {
	Token string `json:"accessToken"`
}

type UserByTokenResponse struct {
	ID             uuid.UUID `json:"id"`
	LastName       string    `json:"lastName"`
	FirstName      string    `json:"firstName"`
	Email          string    `json:"email"`
	OrganizationID uuid.UUID `json:"organizationId"`
	RoleID         uuid.UUID `json:"roleId"`
}

// User validates the bearer token against the auth service and returns the
// caller. Invalid or expired tokens come back as entity.ErrForbidden.
func (c *Client) User(ctx context.Context, token string) (entity.User, error) {
	j, err := json.Marshal(UserByTokenRequest{Token: token})
	if err != nil {
		return entity.User{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/validate", bytes.NewReader(j))
	if err != nil {
		return entity.User{}, fmt.Errorf("create request: %w", err)
	}

	jwt := entity.JWTFromCtx(ctx)
	if jwt != "" {
		req.Header.Set("Authorization", "Bearer "+jwt)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.User{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return entity.User{}, fmt.Errorf("%w: auth service rejected token", entity.ErrForbidden)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(resp.Body)
		return entity.User{}, fmt.Errorf("auth service status %d: %s", resp.StatusCode, body)
	}

	var ur UserByTokenResponse

	err = json.NewDecoder(resp.Body).Decode(&ur)
	if err != nil {
		return entity.User{}, fmt.Errorf("decode response: %w", err)
	}

	return entity.User{
		ID:             ur.ID,
		FirstName:      ur.FirstName,
		LastName:       ur.LastName,
		Email:          ur.Email,
		OrganizationID: ur.OrganizationID,
		RoleID:         ur.RoleID,
	}, nil
}
