// internal/validation/variete.go
package validation

import "github.com/anvogue/anvogue-admin/internal/models"

type VarieteDraft struct {
	Couleur   *string
	ArticleID *string
	Images    []*models.Upload
	Tailles   []models.SizeRow
}

func (v *Validator) ValidateVariete(mode Mode, in Input) (*VarieteDraft, error) {
	vals, errs := v.apply(VarieteRules(mode), in)
	if len(errs) > 0 {
		return nil, errs
	}

	return &VarieteDraft{
		Couleur:   vals.str("couleur"),
		ArticleID: vals.str("article_id"),
		Images:    vals.uploads("images"),
		Tailles:   vals.rows("tailles"),
	}, nil
}

func (d *VarieteDraft) HasFile() bool {
	return d != nil && len(d.Images) > 0
}
