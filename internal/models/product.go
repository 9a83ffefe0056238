// internal/models/product.go
package models

type Article struct {
	ID             string    `json:"id"`
	Reference      string    `json:"reference,omitempty"`
	Nom            string    `json:"nom"`
	Description    string    `json:"description,omitempty"`
	Prix           float64   `json:"prix"`
	Quantite       int       `json:"quantite"`
	Genre          Genre     `json:"genre,omitempty"`
	EstEnPromotion bool      `json:"estEnPromotion"`
	PrixPromotion  *float64  `json:"prixPromotion,omitempty"`
	CategorieID    string    `json:"categorie_id"`
	CollectionID   string    `json:"collection_id,omitempty"`
	Image          string    `json:"image,omitempty"`
	Infos          []SizeRow `json:"infos"`
	Varietes       []Variete `json:"varietes,omitempty"`
}

// Variete is a color variant of an article, with its own images and size rows.
type Variete struct {
	ID        string    `json:"id"`
	Reference string    `json:"reference,omitempty"`
	Couleur   string    `json:"couleur"`
	Images    []string  `json:"images,omitempty"`
	Tailles   []SizeRow `json:"tailles"`
	ArticleID string    `json:"article_id"`
}

// ArticlePage is the envelope some backend revisions wrap the article list in.
type ArticlePage struct {
	Data  []Article `json:"data"`
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
}

// Clone returns a deep copy so callers can modify it without touching shared snapshots.
func (a Article) Clone() Article {
	out := a
	if a.PrixPromotion != nil {
		p := *a.PrixPromotion
		out.PrixPromotion = &p
	}
	if a.Infos != nil {
		out.Infos = append([]SizeRow(nil), a.Infos...)
	}
	if a.Varietes != nil {
		out.Varietes = make([]Variete, len(a.Varietes))
		for i, v := range a.Varietes {
			out.Varietes[i] = v.Clone()
		}
	}
	return out
}

func (v Variete) Clone() Variete {
	out := v
	if v.Images != nil {
		out.Images = append([]string(nil), v.Images...)
	}
	if v.Tailles != nil {
		out.Tailles = append([]SizeRow(nil), v.Tailles...)
	}
	return out
}
