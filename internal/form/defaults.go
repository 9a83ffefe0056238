// internal/form/defaults.go
package form

import (
	"strconv"

	"github.com/anvogue/anvogue-admin/internal/models"
)

const (
	ArticleRowsField = "infos"
	VarieteRowsField = "tailles"
)

// ArticleValues returns the values an article dialog opens with: defaults when a is nil,
// otherwise the article's current fields.
func ArticleValues(a *models.Article) (Values, []models.SizeRow) {
	if a == nil {
		return Values{
			"nom":            "",
			"description":    "",
			"prix":           "0",
			"genre":          string(models.GenreHomme),
			"quantite":       "0",
			"estEnPromotion": false,
			"categorie_id":   "",
			"collection_id":  "",
		}, nil
	}

	genre := a.Genre
	if genre == "" {
		genre = models.GenreHomme
	}
	values := Values{
		"nom":            a.Nom,
		"description":    a.Description,
		"prix":           strconv.FormatFloat(a.Prix, 'f', -1, 64),
		"genre":          string(genre),
		"quantite":       strconv.Itoa(a.Quantite),
		"estEnPromotion": a.EstEnPromotion,
		"categorie_id":   a.CategorieID,
		"collection_id":  a.CollectionID,
	}
	if a.PrixPromotion != nil {
		values["prixPromotion"] = strconv.FormatFloat(*a.PrixPromotion, 'f', -1, 64)
	}
	return values, a.Infos
}

// VarieteValues is ArticleValues for the variant dialog.
func VarieteValues(v *models.Variete) (Values, []models.SizeRow) {
	if v == nil {
		return Values{"couleur": ""}, nil
	}
	return Values{"couleur": v.Couleur}, v.Tailles
}
