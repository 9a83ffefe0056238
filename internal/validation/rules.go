// internal/validation/rules.go
package validation

// Kind tells the engine how to coerce a raw field value.
type Kind int

const (
	Text Kind = iota
	Reference
	Enum
	Number
	Integer
	Flag
	Rows
	Image
	Images
)

// Rule describes one field. Rules are evaluated in table order, so a field named in
// OnlyWhen must appear earlier in the same table.
type Rule struct {
	Field    string
	Kind     Kind
	Required bool
	// Tag is a validator/v10 tag applied to the coerced value.
	Tag string
	// OnlyWhen names a Flag field that must be true for this field to be kept.
	OnlyWhen string
}

type RuleSet struct {
	Name  string
	Rules []Rule
}

var ArticleCreateRules = RuleSet{
	Name: "article.create",
	Rules: []Rule{
		{Field: "nom", Kind: Text, Required: true, Tag: "min=1"},
		{Field: "description", Kind: Text},
		{Field: "categorie_id", Kind: Reference, Required: true},
		{Field: "collection_id", Kind: Reference},
		{Field: "infos", Kind: Rows},
		{Field: "image", Kind: Image},
		{Field: "quantite", Kind: Integer, Tag: "gte=0"},
		{Field: "prix", Kind: Number, Required: true, Tag: "gte=0"},
		{Field: "estEnPromotion", Kind: Flag},
		{Field: "prixPromotion", Kind: Number, Tag: "gte=0", OnlyWhen: "estEnPromotion"},
		{Field: "genre", Kind: Enum, Tag: "oneof=HOMME FEMME"},
	},
}

var ArticleUpdateRules = RuleSet{
	Name: "article.update",
	Rules: []Rule{
		{Field: "nom", Kind: Text, Tag: "min=1"},
		{Field: "description", Kind: Text},
		{Field: "categorie_id", Kind: Reference},
		{Field: "collection_id", Kind: Reference},
		{Field: "infos", Kind: Rows},
		{Field: "image", Kind: Image},
		{Field: "quantite", Kind: Integer, Tag: "gte=0"},
		{Field: "prix", Kind: Number, Tag: "gte=0"},
		{Field: "estEnPromotion", Kind: Flag},
		{Field: "prixPromotion", Kind: Number, Tag: "gte=0", OnlyWhen: "estEnPromotion"},
		{Field: "genre", Kind: Enum, Tag: "oneof=HOMME FEMME"},
	},
}

var VarieteCreateRules = RuleSet{
	Name: "variete.create",
	Rules: []Rule{
		{Field: "couleur", Kind: Text, Required: true, Tag: "min=1"},
		{Field: "article_id", Kind: Reference, Required: true},
		{Field: "images", Kind: Images, Required: true},
		{Field: "tailles", Kind: Rows},
	},
}

var VarieteUpdateRules = RuleSet{
	Name: "variete.update",
	Rules: []Rule{
		{Field: "couleur", Kind: Text, Tag: "min=1"},
		{Field: "article_id", Kind: Reference},
		{Field: "images", Kind: Images},
		{Field: "tailles", Kind: Rows},
	},
}

func ArticleRules(mode Mode) RuleSet {
	if mode == Update {
		return ArticleUpdateRules
	}
	return ArticleCreateRules
}

func VarieteRules(mode Mode) RuleSet {
	if mode == Update {
		return VarieteUpdateRules
	}
	return VarieteCreateRules
}

// rowRules apply to every field of every size row once the row exists.
var rowRules = []Rule{
	{Field: "taille", Kind: Text, Required: true},
	{Field: "quantite", Kind: Integer, Required: true, Tag: "gte=0"},
	{Field: "prix", Kind: Number, Required: true, Tag: "gte=0"},
}
