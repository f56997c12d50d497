// Package petservice es el cliente del Remote Pet Service (API HTTP/JSON).
package petservice

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-store-admin/internal/domain/pets"
	"pet-store-admin/internal/platform/httpclient"
	"pet-store-admin/internal/platform/logger"
)

var ErrNotConfigured = errors.New("pet service client not configured")

type Config struct {
	BaseURL string
	Timeout time.Duration
	Log     logger.Logger
}

type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrNotConfigured
	}
	hc, err := httpclient.NewWithBaseURL(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	if cfg.Log != nil {
		hc.Log = cfg.Log.With(map[string]any{"component": "petservice"})
	}
	return &Client{http: hc}, nil
}

func (c *Client) ListKinds(ctx context.Context) ([]pets.Kind, error) {
	var out []pets.Kind
	if err := c.http.DoJSON(ctx, http.MethodGet, "/pets/kinds", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("list kinds: %w", err)
	}
	return out, nil
}

func (c *Client) ListPets(ctx context.Context) ([]pets.Pet, error) {
	var out []pets.Pet
	if err := c.http.DoJSON(ctx, http.MethodGet, "/pets", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	return out, nil
}

func (c *Client) GetPet(ctx context.Context, id int) (pets.Pet, error) {
	var out pets.Pet
	if err := c.http.DoJSON(ctx, http.MethodGet, petPath(id), nil, nil, &out); err != nil {
		return pets.Pet{}, fmt.Errorf("get pet %d: %w", id, err)
	}
	return out, nil
}

func (c *Client) CreatePet(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	p.PetID = 0

	var out pets.Pet
	if err := c.http.DoJSON(ctx, http.MethodPost, "/pets", nil, p, &out); err != nil {
		return pets.Pet{}, fmt.Errorf("create pet: %w", err)
	}
	if out.PetID <= 0 {
		return pets.Pet{}, errors.New("create pet: response missing petId")
	}
	return out, nil
}

func (c *Client) UpdatePet(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	if p.IsNew() {
		return pets.Pet{}, fmt.Errorf("update pet: %w", pets.ErrInvalidInput)
	}

	var out pets.Pet
	if err := c.http.DoJSON(ctx, http.MethodPut, petPath(p.PetID), nil, p, &out); err != nil {
		return pets.Pet{}, fmt.Errorf("update pet %d: %w", p.PetID, err)
	}
	return out, nil
}

func (c *Client) DeletePet(ctx context.Context, id int) error {
	if err := c.http.DoJSON(ctx, http.MethodDelete, petPath(id), nil, nil, nil); err != nil {
		return fmt.Errorf("delete pet %d: %w", id, err)
	}
	return nil
}

func petPath(id int) string {
	return fmt.Sprintf("/pets/%d", id)
}
