// internal/models/user.go
package models

// Utilisateur is a back-office account (administrator, manager).
type Utilisateur struct {
	ID             string `json:"id"`
	NomComplet     string `json:"nomComplet"`
	NomUtilisateur string `json:"nomUtilisateur"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Genre          string `json:"genre,omitempty"`
	DateNaissance  string `json:"date_naissance,omitempty"`
	Avatar         string `json:"avatar,omitempty"`
}

// Client is a shop customer account.
type Client struct {
	ID             string `json:"id"`
	Nom            string `json:"nom"`
	Prenom         string `json:"prenom"`
	NomUtilisateur string `json:"nomUtilisateur"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Genre          string `json:"genre,omitempty"`
	Adresse        string `json:"adresse,omitempty"`
	DateNaissance  string `json:"date_naissance,omitempty"`
	Avatar         string `json:"avatar,omitempty"`
}

// Session is what the backend hands back on connexion/login. Revisions disagree on the token
// field name, so both are accepted.
type Session struct {
	Token       string       `json:"token,omitempty"`
	AccessToken string       `json:"access_token,omitempty"`
	Utilisateur *Utilisateur `json:"utilisateur,omitempty"`
	Client      *Client      `json:"client,omitempty"`
}

func (s *Session) BearerToken() string {
	if s == nil {
		return ""
	}
	if s.AccessToken != "" {
		return s.AccessToken
	}
	return s.Token
}
