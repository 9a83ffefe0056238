// internal/backend/varietes.go
package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/anvogue/anvogue-admin/internal/models"
	"github.com/anvogue/anvogue-admin/internal/payload"
)

func (c *Client) ListVarietes(ctx context.Context) ([]models.Variete, error) {
	var varietes []models.Variete
	if err := c.do(ctx, request{method: http.MethodGet, path: "/variete"}, &varietes); err != nil {
		return nil, err
	}
	return varietes, nil
}

func (c *Client) GetVariete(ctx context.Context, id string) (*models.Variete, error) {
	return c.variete(ctx, request{
		method:     http.MethodGet,
		path:       "/variete/{id}",
		pathParams: map[string]string{"id": id},
	})
}

func (c *Client) CreateVariete(ctx context.Context, p *payload.Payload) (*models.Variete, error) {
	return c.variete(ctx, request{method: http.MethodPost, path: "/variete", body: p})
}

func (c *Client) UpdateVariete(ctx context.Context, id string, p *payload.Payload) (*models.Variete, error) {
	return c.variete(ctx, request{
		method:     http.MethodPatch,
		path:       "/variete/{id}",
		pathParams: map[string]string{"id": id},
		body:       p,
	})
}

func (c *Client) DeleteVariete(ctx context.Context, id string) error {
	return c.do(ctx, request{
		method:     http.MethodDelete,
		path:       "/variete/{id}",
		pathParams: map[string]string{"id": id},
	}, nil)
}

func (c *Client) variete(ctx context.Context, r request) (*models.Variete, error) {
	var v models.Variete
	if err := c.do(ctx, r, &v); err != nil {
		return nil, err
	}
	if v.ID == "" {
		return nil, fmt.Errorf("%w: %s %s: variete without id", ErrMalformedResponse, r.method, r.path)
	}
	return &v, nil
}
