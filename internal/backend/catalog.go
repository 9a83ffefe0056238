// internal/backend/catalog.go
package backend

import (
	"context"
	"net/http"

	"github.com/anvogue/anvogue-admin/internal/models"
)

func (c *Client) ListCategories(ctx context.Context) ([]models.Categorie, error) {
	var categories []models.Categorie
	if err := c.do(ctx, request{method: http.MethodGet, path: "/categorie"}, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) ListCollections(ctx context.Context) ([]models.Collection, error) {
	var collections []models.Collection
	if err := c.do(ctx, request{method: http.MethodGet, path: "/collection"}, &collections); err != nil {
		return nil, err
	}
	return collections, nil
}
