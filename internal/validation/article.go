// internal/validation/article.go
package validation

import "github.com/anvogue/anvogue-admin/internal/models"

// ArticleDraft is a validated article. Nil pointers mark fields that were absent from the
// input; Infos is nil when absent and non-nil (possibly empty) when present.
type ArticleDraft struct {
	Nom            *string
	Description    *string
	CategorieID    *string
	CollectionID   *string
	Infos          []models.SizeRow
	Image          *models.Upload
	Quantite       *int
	Prix           *float64
	EstEnPromotion *bool
	PrixPromotion  *float64
	Genre          *models.Genre
}

// ValidateArticle checks in against the create or update table. On failure the error is a
// FieldErrors and the draft is nil.
func (v *Validator) ValidateArticle(mode Mode, in Input) (*ArticleDraft, error) {
	vals, errs := v.apply(ArticleRules(mode), in)
	if len(errs) > 0 {
		return nil, errs
	}

	d := &ArticleDraft{
		Nom:            vals.str("nom"),
		Description:    vals.str("description"),
		CategorieID:    vals.str("categorie_id"),
		CollectionID:   vals.str("collection_id"),
		Infos:          vals.rows("infos"),
		Image:          vals.upload("image"),
		Quantite:       vals.integer("quantite"),
		Prix:           vals.number("prix"),
		EstEnPromotion: vals.flag("estEnPromotion"),
		PrixPromotion:  vals.number("prixPromotion"),
	}
	if g := vals.str("genre"); g != nil {
		genre := models.Genre(*g)
		d.Genre = &genre
	}
	return d, nil
}

// HasFile reports whether the draft carries an upload.
func (d *ArticleDraft) HasFile() bool {
	return d != nil && d.Image != nil
}

func (vals values) str(field string) *string {
	if s, ok := vals[field].(string); ok {
		return &s
	}
	return nil
}

func (vals values) number(field string) *float64 {
	if f, ok := vals[field].(float64); ok {
		return &f
	}
	return nil
}

func (vals values) integer(field string) *int {
	if n, ok := vals[field].(int); ok {
		return &n
	}
	return nil
}

func (vals values) flag(field string) *bool {
	if b, ok := vals[field].(bool); ok {
		return &b
	}
	return nil
}

func (vals values) rows(field string) []models.SizeRow {
	if r, ok := vals[field].([]models.SizeRow); ok {
		return r
	}
	return nil
}

func (vals values) upload(field string) *models.Upload {
	if u, ok := vals[field].(*models.Upload); ok {
		return u
	}
	return nil
}

func (vals values) uploads(field string) []*models.Upload {
	if u, ok := vals[field].([]*models.Upload); ok {
		return u
	}
	return nil
}
