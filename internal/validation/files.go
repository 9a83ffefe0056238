// internal/validation/files.go
package validation

import (
	"github.com/anvogue/anvogue-admin/internal/i18n"
	"github.com/anvogue/anvogue-admin/internal/models"
)

// MaxImageSize is the largest accepted upload, inclusive.
const MaxImageSize int64 = 10 * 1024 * 1024

// AcceptedImageTypes is the single list of image MIME types every upload surface accepts.
// webp is absent until the backend can store it.
var AcceptedImageTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/gif"}

func IsAcceptedImageType(mimeType string) bool {
	for _, t := range AcceptedImageTypes {
		if t == mimeType {
			return true
		}
	}
	return false
}

// CheckImage reports the message for the first constraint u breaks, or "" when it is valid.
func (v *Validator) CheckImage(u *models.Upload) string {
	switch {
	case u == nil || u.Size() == 0:
		return v.t(i18n.KeyValidationFileEmpty)
	case u.Size() > MaxImageSize:
		return v.t(i18n.KeyValidationFileTooBig)
	case !IsAcceptedImageType(u.MimeType()):
		return v.t(i18n.KeyValidationFileType)
	}
	return ""
}
