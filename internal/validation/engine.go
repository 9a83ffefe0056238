// internal/validation/engine.go
package validation

import (
	"github.com/anvogue/anvogue-admin/internal/i18n"
	"github.com/anvogue/anvogue-admin/internal/models"
)

// values holds the coerced, present fields of one record.
type values map[string]any

// apply coerces in against rs. Absent fields are left out of the result.
func (v *Validator) apply(rs RuleSet, in Input) (values, FieldErrors) {
	out := values{}
	errs := FieldErrors{}

	for _, rule := range rs.Rules {
		if rule.OnlyWhen != "" {
			if on, _ := out[rule.OnlyWhen].(bool); !on {
				continue
			}
		}

		val, present, msg := v.coerce(rule, in[rule.Field], rule.Field)
		if msg != "" {
			errs.add(rule.Field, msg)
			continue
		}
		if !present {
			if rule.Required {
				errs.add(rule.Field, v.requiredMessage(rule))
			}
			continue
		}

		switch rule.Kind {
		case Rows:
			rows, rowErrs := v.applyRows(rule.Field, val.([]rawRow))
			for f, m := range rowErrs {
				errs.add(f, m)
			}
			out[rule.Field] = rows
		case Image:
			if m := v.CheckImage(val.(*models.Upload)); m != "" {
				errs.add(rule.Field, m)
				continue
			}
			out[rule.Field] = val
		case Images:
			uploads := val.([]*models.Upload)
			for i, u := range uploads {
				if m := v.CheckImage(u); m != "" {
					errs.add(indexPath(rule.Field, i), m)
				}
			}
			out[rule.Field] = uploads
		default:
			if m, ok := v.checkTag(rule.Field, val, rule.Tag); !ok {
				errs.add(rule.Field, m)
				continue
			}
			out[rule.Field] = val
		}
	}

	return out, errs
}

func (v *Validator) requiredMessage(rule Rule) string {
	if rule.Kind == Images {
		return v.t(i18n.KeyValidationImagesEmpty)
	}
	return v.t(i18n.KeyValidationRequired, rule.Field)
}

// coerce returns the typed value, whether it is present, and a message when it cannot be
// coerced at all.
func (v *Validator) coerce(rule Rule, raw any, label string) (any, bool, string) {
	switch rule.Kind {
	case Text, Reference, Enum:
		s, ok := CoerceText(raw)
		return s, ok, ""
	case Number:
		f, err := CoerceNumber(raw)
		if err != nil {
			return nil, false, v.t(i18n.KeyValidationNotNumber, label)
		}
		if f == nil {
			return nil, false, ""
		}
		return *f, true, ""
	case Integer:
		n, err := CoerceInteger(raw)
		if err == errNotInteger {
			return nil, false, v.t(i18n.KeyValidationNotInteger, label)
		}
		if err != nil {
			return nil, false, v.t(i18n.KeyValidationNotNumber, label)
		}
		if n == nil {
			return nil, false, ""
		}
		return *n, true, ""
	case Flag:
		b := CoerceBool(raw)
		if b == nil {
			return nil, false, ""
		}
		return *b, true, ""
	case Rows:
		rows, ok, err := CoerceRows(raw)
		if err != nil {
			return nil, false, v.t(i18n.KeyValidationRows, label)
		}
		return rows, ok, ""
	case Image:
		uploads, err := CoerceUploads(raw)
		if err != nil || len(uploads) > 1 {
			return nil, false, v.t(i18n.KeyValidationInvalid, label)
		}
		if len(uploads) == 0 {
			return nil, false, ""
		}
		return uploads[0], true, ""
	case Images:
		uploads, err := CoerceUploads(raw)
		if err != nil {
			return nil, false, v.t(i18n.KeyValidationInvalid, label)
		}
		return uploads, len(uploads) > 0, ""
	}
	return nil, false, v.t(i18n.KeyValidationInvalid, label)
}

// applyRows validates each row with rowRules; every field of an existing row is required.
func (v *Validator) applyRows(field string, rows []rawRow) ([]models.SizeRow, FieldErrors) {
	out := make([]models.SizeRow, 0, len(rows))
	errs := FieldErrors{}

	for i, row := range rows {
		var sr models.SizeRow
		for _, rule := range rowRules {
			path := rowPath(field, i, rule.Field)
			val, present, msg := v.coerce(rule, row[rule.Field], rule.Field)
			if msg != "" {
				errs.add(path, msg)
				continue
			}
			if !present {
				errs.add(path, v.t(i18n.KeyValidationRequired, rule.Field))
				continue
			}
			if m, ok := v.checkTag(rule.Field, val, rule.Tag); !ok {
				errs.add(path, m)
				continue
			}
			switch rule.Field {
			case "taille":
				sr.Taille = val.(string)
			case "quantite":
				sr.Quantite = val.(int)
			case "prix":
				sr.Prix = val.(float64)
			}
		}
		out = append(out, sr)
	}

	return out, errs
}
