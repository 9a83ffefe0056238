// internal/services/auth_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvogue/anvogue-admin/internal/i18n"
	"github.com/anvogue/anvogue-admin/internal/logger"
	"github.com/anvogue/anvogue-admin/internal/models"
	"github.com/anvogue/anvogue-admin/internal/validation"
)

func validInscription() *InscriptionRequest {
	return &InscriptionRequest{
		NomComplet:     "Awa Diallo",
		NomUtilisateur: "awa",
		Email:          "awa@anvogue.fr",
		Password:       "motdepasse",
		Role:           "ADMIN",
		DateNaissance:  "1990-05-01",
		Genre:          "FEMME",
	}
}

func TestConnexionValidatesBeforeCalling(t *testing.T) {
	api := &fakeAPI{}
	s := NewAuthService(api, logger.Discard(), "fr")

	_, err := s.Connexion(context.Background(), &LoginRequest{Email: "nope", Password: "court"})

	fe, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, i18n.T("fr", i18n.KeyValidationEmail), fe["email"])
	assert.Contains(t, fe, "password")
	assert.Empty(t, api.Calls())
}

func TestLoginReturnsSession(t *testing.T) {
	api := &fakeAPI{session: &models.Session{Token: "tok"}}
	s := NewAuthService(api, logger.Discard(), "fr")

	session, err := s.Login(context.Background(), &LoginRequest{Email: "a@b.fr", Password: "motdepasse"})

	require.NoError(t, err)
	assert.Equal(t, "tok", session.BearerToken())
	assert.Equal(t, []string{"Login"}, api.Calls())
}

func TestInscriptionWithoutAvatarIsJSON(t *testing.T) {
	api := &fakeAPI{user: &models.Utilisateur{ID: "u1"}}
	s := NewAuthService(api, logger.Discard(), "fr")

	user, err := s.Inscription(context.Background(), validInscription())

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	p := api.lastPayload()
	assert.False(t, p.Multipart())
	assert.Equal(t, "1990-05-01T00:00:00.000Z", p.JSON()["date_naissance"])
}

func TestInscriptionWithAvatarIsMultipart(t *testing.T) {
	api := &fakeAPI{user: &models.Utilisateur{ID: "u1"}}
	s := NewAuthService(api, logger.Discard(), "fr")
	req := validInscription()
	req.Avatar = png("me.png")

	_, err := s.Inscription(context.Background(), req)

	require.NoError(t, err)
	p := api.lastPayload()
	require.True(t, p.Multipart())
	assert.Equal(t, "image", p.Files[0].Field)
	fields, err := p.FormData()
	require.NoError(t, err)
	assert.Equal(t, "awa", fields["nomUtilisateur"])
}

func TestInscriptionRejectsBadAvatarAndDate(t *testing.T) {
	api := &fakeAPI{}
	s := NewAuthService(api, logger.Discard(), "fr")
	req := validInscription()
	req.DateNaissance = "01/05/1990"
	req.Avatar = &models.Upload{Filename: "me.svg", ContentType: "image/svg+xml", Data: []byte("<svg/>")}

	_, err := s.Inscription(context.Background(), req)

	fe, ok := validation.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fe, "date_naissance")
	assert.Equal(t, i18n.T("fr", i18n.KeyValidationFileType), fe["avatar"])
	assert.Empty(t, api.Calls())
}

func TestSigninKeepsPrenom(t *testing.T) {
	api := &fakeAPI{client: &models.Client{ID: "k1"}}
	s := NewAuthService(api, logger.Discard(), "fr")

	_, err := s.Signin(context.Background(), &SigninRequest{
		Nom:            "Diallo",
		Prenom:         "Awa",
		NomUtilisateur: "awa",
		Email:          "awa@anvogue.fr",
		Phone:          "0600000000",
		Password:       "motdepasse",
		Genre:          "FEMME",
		Adresse:        "1 rue de Paris",
		DateNaissance:  "1990-05-01",
	})

	require.NoError(t, err)
	body := api.lastPayload().JSON()
	assert.Equal(t, "Awa", body["prenom"])
	assert.Equal(t, "FEMME", body["genre"])
}
