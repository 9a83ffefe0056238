// internal/validation/validation_test.go
package validation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anvogue/anvogue-admin/internal/i18n"
	"github.com/anvogue/anvogue-admin/internal/models"
)

func png(size int) *models.Upload {
	return &models.Upload{Filename: "photo.png", ContentType: "image/png", Data: bytes.Repeat([]byte{1}, size)}
}

func bmp(size int) *models.Upload {
	return &models.Upload{Filename: "scan.bmp", ContentType: "image/bmp", Data: bytes.Repeat([]byte{1}, size)}
}

func validArticle() Input {
	return Input{
		"nom":          "Chemise lin",
		"categorie_id": "cat-1",
		"prix":         "49.90",
	}
}

func TestValidateArticleCreateRequiresCoreFields(t *testing.T) {
	v := New("fr")

	draft, err := v.ValidateArticle(Create, Input{"description": "sans nom"})
	require.Error(t, err)
	assert.Nil(t, draft)

	errs, ok := AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"categorie_id", "nom", "prix"}, errs.Fields())
	assert.Equal(t, i18n.T("fr", i18n.KeyValidationRequired, "nom"), errs["nom"])
}

func TestValidateArticleUpdateAcceptsEmptyInput(t *testing.T) {
	draft, err := New("fr").ValidateArticle(Update, Input{})
	require.NoError(t, err)
	assert.Nil(t, draft.Nom)
	assert.Nil(t, draft.Prix)
	assert.Nil(t, draft.Infos)
	assert.False(t, draft.HasFile())
}

func TestValidateArticleUpdateStillChecksPresentFields(t *testing.T) {
	_, err := New("fr").ValidateArticle(Update, Input{"prix": "-3", "quantite": "1.5"})
	errs, ok := AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, i18n.T("fr", i18n.KeyValidationNegative, "prix"), errs["prix"])
	assert.Equal(t, i18n.T("fr", i18n.KeyValidationNotInteger, "quantite"), errs["quantite"])
}

func TestValidateArticleEmptyStringIsAbsent(t *testing.T) {
	in := validArticle()
	in["description"] = ""
	in["collection_id"] = "  "
	in["quantite"] = ""

	draft, err := New("fr").ValidateArticle(Create, in)
	require.NoError(t, err)
	assert.Nil(t, draft.Description)
	assert.Nil(t, draft.CollectionID)
	assert.Nil(t, draft.Quantite)
	require.NotNil(t, draft.Prix)
	assert.Equal(t, 49.90, *draft.Prix)
}

func TestValidateArticleRejectsNonNumericPrice(t *testing.T) {
	in := validArticle()
	in["prix"] = "abc"

	_, err := New("en").ValidateArticle(Create, in)
	errs, ok := AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, "prix must be a number", errs["prix"])
}

func TestValidateArticlePromotionFlag(t *testing.T) {
	v := New("fr")

	tests := []struct {
		name      string
		flag      any
		wantFlag  bool
		wantPromo bool
	}{
		{name: "string true", flag: "true", wantFlag: true, wantPromo: true},
		{name: "bool true", flag: true, wantFlag: true, wantPromo: true},
		{name: "string on", flag: "on", wantFlag: false},
		{name: "string false", flag: "false", wantFlag: false},
		{name: "number", flag: 1, wantFlag: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validArticle()
			in["estEnPromotion"] = tt.flag
			in["prixPromotion"] = "39"

			draft, err := v.ValidateArticle(Create, in)
			require.NoError(t, err)
			require.NotNil(t, draft.EstEnPromotion)
			assert.Equal(t, tt.wantFlag, *draft.EstEnPromotion)
			assert.Equal(t, tt.wantPromo, draft.PrixPromotion != nil)
		})
	}
}

func TestValidateArticlePromotionPriceIgnoredWithoutFlag(t *testing.T) {
	in := validArticle()
	in["prixPromotion"] = "not a number"

	draft, err := New("fr").ValidateArticle(Create, in)
	require.NoError(t, err)
	assert.Nil(t, draft.EstEnPromotion)
	assert.Nil(t, draft.PrixPromotion)
}

func TestValidateArticleGenre(t *testing.T) {
	in := validArticle()
	in["genre"] = "ENFANT"

	_, err := New("fr").ValidateArticle(Create, in)
	errs, ok := AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, errs, "genre")

	in["genre"] = models.GenreFemme
	draft, err := New("fr").ValidateArticle(Create, in)
	require.NoError(t, err)
	assert.Equal(t, models.GenreFemme, *draft.Genre)
}

func TestValidateArticleRowPaths(t *testing.T) {
	in := validArticle()
	in["infos"] = `[{"taille":"M","quantite":3,"prix":10},{"taille":"L","quantite":-1,"prix":10},{"quantite":1,"prix":"x"}]`

	_, err := New("fr").ValidateArticle(Create, in)
	errs, ok := AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"infos.1.quantite", "infos.2.prix", "infos.2.taille"}, errs.Fields())
	assert.Equal(t, i18n.T("fr", i18n.KeyValidationNegative, "quantite"), errs["infos.1.quantite"])
}

func TestValidateArticleRowsFromSlices(t *testing.T) {
	in := validArticle()
	in["infos"] = []map[string]any{{"taille": "S", "quantite": "2", "prix": "12.5"}}

	draft, err := New("fr").ValidateArticle(Create, in)
	require.NoError(t, err)
	assert.Equal(t, []models.SizeRow{{Taille: "S", Quantite: 2, Prix: 12.5}}, draft.Infos)
}

func TestValidateArticleUnparsableRowsAreAbsent(t *testing.T) {
	in := validArticle()
	in["infos"] = `[{"taille":`

	draft, err := New("fr").ValidateArticle(Create, in)
	require.NoError(t, err)
	assert.Nil(t, draft.Infos)
}

func TestValidateArticleRowsMustBeAList(t *testing.T) {
	in := validArticle()
	in["infos"] = `{"taille":"M"}`

	_, err := New("fr").ValidateArticle(Create, in)
	errs, ok := AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, i18n.T("fr", i18n.KeyValidationRows, "infos"), errs["infos"])
}

func TestValidateArticleImage(t *testing.T) {
	v := New("fr")

	tests := []struct {
		name   string
		upload *models.Upload
		want   string
	}{
		{name: "at the size limit", upload: png(int(MaxImageSize))},
		{name: "one byte over", upload: png(int(MaxImageSize) + 1), want: i18n.T("fr", i18n.KeyValidationFileTooBig)},
		{name: "empty", upload: png(0), want: i18n.T("fr", i18n.KeyValidationFileEmpty)},
		{name: "webp", upload: &models.Upload{Filename: "a.webp", ContentType: "image/webp", Data: []byte{1}}, want: i18n.T("fr", i18n.KeyValidationFileType)},
		{name: "bmp", upload: &models.Upload{Filename: "a.bmp", ContentType: "image/bmp", Data: []byte{1}}, want: i18n.T("fr", i18n.KeyValidationFileType)},
		{name: "bmp at the size limit", upload: bmp(int(MaxImageSize)), want: i18n.T("fr", i18n.KeyValidationFileType)},
		{name: "bmp over the size limit", upload: bmp(int(MaxImageSize) + 1), want: i18n.T("fr", i18n.KeyValidationFileTooBig)},
		{name: "jpeg with parameters", upload: &models.Upload{Filename: "a.jpg", ContentType: "Image/JPEG; charset=binary", Data: []byte{1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validArticle()
			in["image"] = tt.upload

			draft, err := v.ValidateArticle(Create, in)
			if tt.want == "" {
				require.NoError(t, err)
				assert.True(t, draft.HasFile())
				return
			}
			errs, ok := AsFieldErrors(err)
			require.True(t, ok)
			assert.Equal(t, tt.want, errs["image"])
		})
	}
}

func TestValidateVarieteCreateRequiresImages(t *testing.T) {
	_, err := New("fr").ValidateVariete(Create, Input{"couleur": "Bleu", "article_id": "a1"})
	errs, ok := AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, i18n.T("fr", i18n.KeyValidationImagesEmpty), errs["images"])
}

func TestValidateVarieteImagePaths(t *testing.T) {
	gif := &models.Upload{Filename: "a.gif", ContentType: "image/gif", Data: []byte{1}}
	bad := &models.Upload{Filename: "a.pdf", ContentType: "application/pdf", Data: []byte{1}}

	_, err := New("fr").ValidateVariete(Create, Input{
		"couleur":    "Bleu",
		"article_id": "a1",
		"images":     []*models.Upload{gif, bad},
		"tailles":    []models.SizeRow{{Taille: "M", Quantite: 1, Prix: 5}},
	})
	errs, ok := AsFieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, []string{"images.1"}, errs.Fields())
}

func TestValidateVarieteUpdateIsPartial(t *testing.T) {
	draft, err := New("fr").ValidateVariete(Update, Input{"couleur": "Rouge"})
	require.NoError(t, err)
	assert.Equal(t, "Rouge", *draft.Couleur)
	assert.Nil(t, draft.ArticleID)
	assert.False(t, draft.HasFile())
}

func TestValidateStructUsesJSONNames(t *testing.T) {
	req := struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Birth    string `json:"date_naissance" validate:"required,datetime=2006-01-02"`
	}{Email: "nope", Password: "short", Birth: "01/02/1990"}

	errs := New("en").ValidateStruct(&req)
	assert.Equal(t, []string{"date_naissance", "email", "password"}, errs.Fields())
	assert.Equal(t, "password must be at least 8 characters", errs["password"])
}
