// internal/validation/validation.go
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/anvogue/anvogue-admin/internal/i18n"
)

// Mode selects which of an entity's two rule tables applies.
type Mode int

const (
	Create Mode = iota
	Update
)

func (m Mode) String() string {
	if m == Update {
		return "update"
	}
	return "create"
}

// Input is the loosely-typed field mapping coming from form controls: strings, booleans,
// uploads, and row collections either as slices or as a JSON-encoded string.
type Input map[string]any

// FieldErrors maps a field path (e.g. "infos.1.quantite") to a readable message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, f := range e.Fields() {
		parts = append(parts, f+": "+e[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the failing paths in a stable order.
func (e FieldErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// add keeps the first message reported for a path.
func (e FieldErrors) add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

// AsFieldErrors unwraps err into FieldErrors when it carries them.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
}

// Validator turns raw form input into normalized drafts. Messages are rendered in Lang.
type Validator struct {
	Lang string
}

func New(lang string) *Validator {
	if lang == "" {
		lang = i18n.DefaultLang
	}
	return &Validator{Lang: lang}
}

func (v *Validator) t(key string, args ...interface{}) string {
	return i18n.T(v.Lang, key, args...)
}

// ValidateStruct runs the struct's `validate` tags and reports failures keyed by json name.
func (v *Validator) ValidateStruct(s interface{}) FieldErrors {
	errs := FieldErrors{}
	err := validate.Struct(s)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.add("_", v.t(i18n.KeyValidationFailed))
		return errs
	}
	for _, fe := range verrs {
		errs.add(fe.Field(), v.tagMessage(fe.Field(), fe.Tag(), fe.Param()))
	}
	return errs
}

// checkTag applies a validator/v10 tag to an already coerced value.
func (v *Validator) checkTag(field string, value interface{}, tag string) (string, bool) {
	if tag == "" {
		return "", true
	}
	err := validate.Var(value, tag)
	if err == nil {
		return "", true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return v.tagMessage(field, verrs[0].Tag(), verrs[0].Param()), false
	}
	return v.t(i18n.KeyValidationInvalid, field), false
}

func (v *Validator) tagMessage(field, tag, param string) string {
	switch tag {
	case "required":
		return v.t(i18n.KeyValidationRequired, field)
	case "gte":
		return v.t(i18n.KeyValidationNegative, field)
	case "min":
		if param == "1" {
			return v.t(i18n.KeyValidationEmpty, field)
		}
		return v.t(i18n.KeyValidationMinLength, field, param)
	case "oneof":
		return v.t(i18n.KeyValidationEnum, field, strings.ReplaceAll(param, " ", ", "))
	case "email":
		return v.t(i18n.KeyValidationEmail)
	case "datetime":
		return v.t(i18n.KeyValidationDate, field)
	default:
		return v.t(i18n.KeyValidationInvalid, field)
	}
}

func indexPath(field string, index int) string {
	return fmt.Sprintf("%s.%d", field, index)
}

func rowPath(field string, index int, sub string) string {
	return indexPath(field, index) + "." + sub
}
