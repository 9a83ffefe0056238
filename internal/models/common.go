// internal/models/common.go
package models

import "strings"

// Enums
type Genre string

const (
	GenreHomme Genre = "HOMME"
	GenreFemme Genre = "FEMME"
)

func (g Genre) Valid() bool {
	return g == GenreHomme || g == GenreFemme
}

// SizeRow is one {taille, quantite, prix} line of an article's infos or a variant's tailles.
type SizeRow struct {
	Taille   string  `json:"taille" validate:"required"`
	Quantite int     `json:"quantite" validate:"gte=0"`
	Prix     float64 `json:"prix" validate:"gte=0"`
}

// Upload is a binary file taken from a form control, held until the payload is sent.
type Upload struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

func (u *Upload) Size() int64 {
	if u == nil {
		return 0
	}
	return int64(len(u.Data))
}

// MimeType normalizes the declared content type, dropping parameters such as charset.
func (u *Upload) MimeType() string {
	if u == nil {
		return ""
	}
	mt := strings.ToLower(strings.TrimSpace(u.ContentType))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return mt
}
