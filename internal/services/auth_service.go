// internal/services/auth_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/anvogue/anvogue-admin/internal/i18n"
	"github.com/anvogue/anvogue-admin/internal/models"
	"github.com/anvogue/anvogue-admin/internal/payload"
	"github.com/anvogue/anvogue-admin/internal/validation"
)

// birthDateLayout is what the forms collect; the backend wants a full timestamp.
const (
	birthDateLayout = "2006-01-02"
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
	avatarField     = "image"
)

type AuthAPI interface {
	Connexion(ctx context.Context, credentials interface{}) (*models.Session, error)
	Login(ctx context.Context, credentials interface{}) (*models.Session, error)
	Inscription(ctx context.Context, p *payload.Payload) (*models.Utilisateur, error)
	Signin(ctx context.Context, p *payload.Payload) (*models.Client, error)
	ProfileUtilisateur(ctx context.Context) (*models.Utilisateur, error)
}

type AuthService struct {
	api  AuthAPI
	log  *logrus.Entry
	lang string
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// InscriptionRequest registers a back-office user.
type InscriptionRequest struct {
	NomComplet     string         `json:"nomComplet" form:"nomComplet" validate:"required"`
	NomUtilisateur string         `json:"nomUtilisateur" form:"nomUtilisateur" validate:"required"`
	Email          string         `json:"email" form:"email" validate:"required,email"`
	Password       string         `json:"password" form:"password" validate:"required,min=8"`
	Role           string         `json:"role" form:"role" validate:"required"`
	DateNaissance  string         `json:"date_naissance" form:"date_naissance" validate:"required,datetime=2006-01-02"`
	Genre          string         `json:"genre" form:"genre" validate:"required"`
	Avatar         *models.Upload `json:"-" form:"-"`
}

// SigninRequest registers a shop client.
type SigninRequest struct {
	Nom            string         `json:"nom" form:"nom" validate:"required"`
	Prenom         string         `json:"prenom" form:"prenom" validate:"required"`
	NomUtilisateur string         `json:"nomUtilisateur" form:"nomUtilisateur" validate:"required"`
	Email          string         `json:"email" form:"email" validate:"required,email"`
	Phone          string         `json:"phone" form:"phone" validate:"required"`
	Password       string         `json:"password" form:"password" validate:"required,min=8"`
	Genre          string         `json:"genre" form:"genre" validate:"required"`
	Adresse        string         `json:"adresse" form:"adresse" validate:"required"`
	DateNaissance  string         `json:"date_naissance" form:"date_naissance" validate:"required,datetime=2006-01-02"`
	Avatar         *models.Upload `json:"-" form:"-"`
}

func NewAuthService(api AuthAPI, log *logrus.Logger, lang string) *AuthService {
	return &AuthService{
		api:  api,
		log:  log.WithField("service", "auth"),
		lang: lang,
	}
}

// Connexion signs a back-office user in.
func (s *AuthService) Connexion(ctx context.Context, req *LoginRequest) (*models.Session, error) {
	if err := s.validate(ctx, req, nil); err != nil {
		return nil, err
	}
	session, err := s.api.Connexion(ctx, req)
	if err != nil {
		s.log.WithError(err).WithField("email", req.Email).Warn("Connexion refused")
		return nil, err
	}
	return session, nil
}

// Login signs a shop client in.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*models.Session, error) {
	if err := s.validate(ctx, req, nil); err != nil {
		return nil, err
	}
	session, err := s.api.Login(ctx, req)
	if err != nil {
		s.log.WithError(err).WithField("email", req.Email).Warn("Client login refused")
		return nil, err
	}
	return session, nil
}

func (s *AuthService) Inscription(ctx context.Context, req *InscriptionRequest) (*models.Utilisateur, error) {
	if err := s.validate(ctx, req, req.Avatar); err != nil {
		return nil, err
	}
	birth, err := birthTimestamp(req.DateNaissance)
	if err != nil {
		return nil, err
	}

	p := payload.New().
		Add("email", req.Email).
		Add("role", req.Role).
		Add("genre", req.Genre).
		Add("password", req.Password).
		Add("nomComplet", req.NomComplet).
		Add("nomUtilisateur", req.NomUtilisateur).
		Add("date_naissance", birth).
		AddFile(avatarField, req.Avatar)

	user, err := s.api.Inscription(ctx, p)
	if err != nil {
		s.log.WithError(err).WithField("email", req.Email).Warn("Inscription refused")
		return nil, err
	}
	s.log.WithField("user_id", user.ID).Info("User registered")
	return user, nil
}

func (s *AuthService) Signin(ctx context.Context, req *SigninRequest) (*models.Client, error) {
	if err := s.validate(ctx, req, req.Avatar); err != nil {
		return nil, err
	}
	birth, err := birthTimestamp(req.DateNaissance)
	if err != nil {
		return nil, err
	}

	p := payload.New().
		Add("email", req.Email).
		Add("nom", req.Nom).
		Add("prenom", req.Prenom).
		Add("nomUtilisateur", req.NomUtilisateur).
		Add("genre", req.Genre).
		Add("phone", req.Phone).
		Add("password", req.Password).
		Add("adresse", req.Adresse).
		Add("date_naissance", birth).
		AddFile(avatarField, req.Avatar)

	client, err := s.api.Signin(ctx, p)
	if err != nil {
		s.log.WithError(err).WithField("email", req.Email).Warn("Client signin refused")
		return nil, err
	}
	s.log.WithField("client_id", client.ID).Info("Client registered")
	return client, nil
}

// Profile returns the back-office user owning the token in ctx.
func (s *AuthService) Profile(ctx context.Context) (*models.Utilisateur, error) {
	return s.api.ProfileUtilisateur(ctx)
}

func (s *AuthService) validate(ctx context.Context, req interface{}, avatar *models.Upload) error {
	v := validation.New(i18n.LangFrom(ctx, s.lang))
	errs := v.ValidateStruct(req)
	if avatar != nil {
		if msg := v.CheckImage(avatar); msg != "" {
			errs["avatar"] = msg
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %w", errs)
	}
	return nil
}

func birthTimestamp(date string) (string, error) {
	t, err := time.Parse(birthDateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid birth date %q: %w", date, err)
	}
	return t.UTC().Format(timestampLayout), nil
}
