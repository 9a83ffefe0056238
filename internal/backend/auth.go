// internal/backend/auth.go
package backend

import (
	"context"
	"net/http"

	"github.com/anvogue/anvogue-admin/internal/models"
	"github.com/anvogue/anvogue-admin/internal/payload"
)

// Back-office users and shop clients sign in through different routes of the same API.
const (
	pathUserInscription   = "/auth/inscription"
	pathUserConnexion     = "/auth/connexion"
	pathClientInscription = "/auth/signin"
	pathClientConnexion   = "/auth/login"
	pathProfile           = "/auth/profile"
)

func (c *Client) Connexion(ctx context.Context, credentials interface{}) (*models.Session, error) {
	return c.session(ctx, pathUserConnexion, credentials)
}

func (c *Client) Login(ctx context.Context, credentials interface{}) (*models.Session, error) {
	return c.session(ctx, pathClientConnexion, credentials)
}

func (c *Client) Inscription(ctx context.Context, p *payload.Payload) (*models.Utilisateur, error) {
	var u models.Utilisateur
	if err := c.do(ctx, request{method: http.MethodPost, path: pathUserInscription, body: p}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Signin(ctx context.Context, p *payload.Payload) (*models.Client, error) {
	var cl models.Client
	if err := c.do(ctx, request{method: http.MethodPost, path: pathClientInscription, body: p}, &cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

// ProfileUtilisateur and ProfileClient read the profile of the token carried by ctx.
func (c *Client) ProfileUtilisateur(ctx context.Context) (*models.Utilisateur, error) {
	var u models.Utilisateur
	if err := c.do(ctx, request{method: http.MethodGet, path: pathProfile}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) ProfileClient(ctx context.Context) (*models.Client, error) {
	var cl models.Client
	if err := c.do(ctx, request{method: http.MethodGet, path: pathProfile}, &cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

func (c *Client) session(ctx context.Context, path string, credentials interface{}) (*models.Session, error) {
	var s models.Session
	if err := c.do(ctx, request{method: http.MethodPost, path: path, rawBody: credentials}, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
