// internal/models/catalog.go
package models

type Categorie struct {
	ID          string `json:"id"`
	Nom         string `json:"nom"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
}

type Collection struct {
	ID          string `json:"id"`
	Nom         string `json:"nom"`
	Description string `json:"description,omitempty"`
	Saison      string `json:"saison,omitempty"`
}
