// internal/payload/entities.go
package payload

import (
	"github.com/anvogue/anvogue-admin/internal/models"
	"github.com/anvogue/anvogue-admin/internal/validation"
)

// Article builds the article body. Create always carries nom, categorie_id, infos and prix;
// update carries only what the draft defines.
func Article(d *validation.ArticleDraft, mode validation.Mode) *Payload {
	p := New()

	if mode == validation.Create {
		infos := d.Infos
		if infos == nil {
			infos = []models.SizeRow{}
		}
		p.Add("nom", deref(d.Nom))
		p.Add("categorie_id", deref(d.CategorieID))
		p.Add("infos", infos)
		p.Add("prix", derefFloat(d.Prix))
	} else {
		addString(p, "nom", d.Nom)
		addString(p, "categorie_id", d.CategorieID)
		if d.Infos != nil {
			p.Add("infos", d.Infos)
		}
		if d.Prix != nil {
			p.Add("prix", *d.Prix)
		}
	}

	addString(p, "description", d.Description)
	addString(p, "collection_id", d.CollectionID)
	if d.Quantite != nil {
		p.Add("quantite", *d.Quantite)
	}
	if d.EstEnPromotion != nil {
		p.Add("estEnPromotion", *d.EstEnPromotion)
		if *d.EstEnPromotion && d.PrixPromotion != nil {
			p.Add("prixPromotion", *d.PrixPromotion)
		}
	}
	if d.Genre != nil {
		p.Add("genre", string(*d.Genre))
	}
	p.AddFile("image", d.Image)

	return p
}

// Variete builds the variant body; every image is sent under the same "images" field.
func Variete(d *validation.VarieteDraft) *Payload {
	p := New()
	addString(p, "couleur", d.Couleur)
	addString(p, "article_id", d.ArticleID)
	if d.Tailles != nil {
		p.Add("tailles", d.Tailles)
	}
	for _, img := range d.Images {
		p.AddFile("images", img)
	}
	return p
}

func addString(p *Payload, name string, s *string) {
	if s != nil {
		p.Add(name, *s)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
